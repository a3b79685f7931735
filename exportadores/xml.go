package exportadores

import (
	"encoding/xml"
	"strconv"

	"geodatabr/modelos/lugares"

	"github.com/pkg/errors"
)

// ExportadorXml grava a visão tabular no layout plano do dataset
// original: database > table > row > field, com os nomes em atributos.
type ExportadorXml struct{}

func (ExportadorXml) Nome() string { return "xml" }

type xmlCampo struct {
	Nome  string `xml:"name,attr"`
	Valor string `xml:",chardata"`
}

type xmlLinha struct {
	Campos []xmlCampo `xml:"field"`
}

type xmlTabela struct {
	Nome   string     `xml:"name,attr"`
	Linhas []xmlLinha `xml:"row"`
}

type xmlBase struct {
	XMLName xml.Name    `xml:"database"`
	Nome    string      `xml:"name,attr"`
	Tabelas []xmlTabela `xml:"table"`
}

func (e ExportadorXml) Exportar(b *lugares.Base, saida string) ([]Artefato, error) {
	documento := xmlBase{Nome: "dataset"}

	for _, tabela := range b.Tabelas() {
		xt := xmlTabela{Nome: tabela.Nome}
		for _, linha := range tabela.Linhas {
			xl := xmlLinha{Campos: make([]xmlCampo, 0, len(linha))}
			for i, valor := range linha {
				xl.Campos = append(xl.Campos, xmlCampo{
					Nome:  tabela.Colunas[i],
					Valor: valorTexto(valor),
				})
			}
			xt.Linhas = append(xt.Linhas, xl)
		}
		documento.Tabelas = append(documento.Tabelas, xt)
	}

	conteudo, err := xml.MarshalIndent(documento, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "falha em serializar o XML")
	}
	conteudo = append([]byte(xml.Header), conteudo...)

	return salvarEMedir(e.Nome(), saida, "dataset.xml", conteudo)
}

func valorTexto(valor any) string {
	switch v := valor.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	default:
		return ""
	}
}
