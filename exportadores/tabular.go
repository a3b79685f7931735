package exportadores

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"geodatabr/modelos/lugares"

	"github.com/pkg/errors"
)

// ExportadorTabular cobre CSV e TSV: um arquivo por tabela, com
// cabeçalho, dentro de uma subpasta com o nome do formato.
type ExportadorTabular struct {
	Formato   string
	Separador rune
}

func (e ExportadorTabular) Nome() string { return e.Formato }

func (e ExportadorTabular) Exportar(b *lugares.Base, saida string) ([]Artefato, error) {
	var artefatos []Artefato

	for _, tabela := range b.Tabelas() {
		var buffer bytes.Buffer
		escritor := csv.NewWriter(&buffer)
		escritor.Comma = e.Separador

		if err := escritor.Write(tabela.Colunas); err != nil {
			return nil, errors.Wrapf(err, "falha em escrever o cabeçalho de %s", tabela.Nome)
		}
		for _, linha := range tabela.Linhas {
			registro := make([]string, 0, len(linha))
			for _, valor := range linha {
				registro = append(registro, valorTexto(valor))
			}
			if err := escritor.Write(registro); err != nil {
				return nil, errors.Wrapf(err, "falha em escrever uma linha de %s", tabela.Nome)
			}
		}
		escritor.Flush()
		if err := escritor.Error(); err != nil {
			return nil, errors.Wrapf(err, "falha em finalizar a tabela %s", tabela.Nome)
		}

		relativo := filepath.Join(e.Formato, tabela.Nome+"."+e.Formato)
		lote, err := salvarEMedir(e.Formato, saida, relativo, buffer.Bytes())
		if err != nil {
			return nil, err
		}
		artefatos = append(artefatos, lote...)
	}

	return artefatos, nil
}

// ImportarTabular remonta a base a partir da subpasta de um formato
// tabular (csv ou tsv), rejeitando linhas órfãs e ids duplicados.
func ImportarTabular(pasta, formato string, separador rune) (*lugares.Base, error) {
	var planas lugares.TabelasPlanas

	alvos := []struct {
		tabela  string
		comPai  bool
		destino *[]lugares.LinhaPlana
	}{
		{"uf", false, &planas.Ufs},
		{"mesorregiao", true, &planas.Mesorregioes},
		{"microrregiao", true, &planas.Microrregioes},
		{"municipio", true, &planas.Municipios},
		{"distrito", true, &planas.Distritos},
		{"subdistrito", true, &planas.Subdistritos},
	}

	for _, alvo := range alvos {
		caminho := filepath.Join(pasta, alvo.tabela+"."+formato)
		linhas, err := lerTabela(caminho, separador, alvo.comPai)
		if err != nil {
			return nil, err
		}
		*alvo.destino = linhas
	}

	return lugares.MontarDeTabelas(planas)
}

func lerTabela(caminho string, separador rune, comPai bool) ([]lugares.LinhaPlana, error) {
	arquivo, err := os.Open(caminho)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em abrir %s", caminho)
	}
	defer arquivo.Close()

	leitor := csv.NewReader(arquivo)
	leitor.Comma = separador
	registros, err := leitor.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "falha em ler %s", caminho)
	}
	if len(registros) == 0 {
		return nil, errors.Errorf("%s sem cabeçalho", caminho)
	}

	colunas := 2
	if comPai {
		colunas = 3
	}

	linhas := make([]lugares.LinhaPlana, 0, len(registros)-1)
	for _, registro := range registros[1:] {
		if len(registro) != colunas {
			return nil, errors.Errorf("linha com %d colunas em %s, esperadas %d", len(registro), caminho, colunas)
		}

		var linha lugares.LinhaPlana
		linha.Id, err = strconv.ParseInt(registro[0], 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "id inválido em %s", caminho)
		}
		if comPai {
			linha.IdPai, err = strconv.ParseInt(registro[1], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "id do pai inválido em %s", caminho)
			}
		}
		linha.Nome = registro[colunas-1]
		linhas = append(linhas, linha)
	}

	return linhas, nil
}
