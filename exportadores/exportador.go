package exportadores

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"geodatabr/modelos/lugares"

	linq "github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
)

// Exportador é o contrato neutro de formato: uma transformação pura da
// base em um ou mais arquivos sob a pasta de saída. Os únicos caminhos
// de erro são destino não gravável e falhas de driver.
type Exportador interface {
	Nome() string
	Exportar(b *lugares.Base, saida string) ([]Artefato, error)
}

// Artefato descreve um arquivo produzido por um exportador, com os
// dados que vão para o manifesto.
type Artefato struct {
	Formato string `json:"formato"`
	Arquivo string `json:"arquivo"`
	Bytes   int64  `json:"bytes"`
	Sha256  string `json:"sha256"`
}

// Registro devolve o mapa de exportadores disponíveis, indexado pelo
// nome usado na linha de comando.
func Registro() map[string]Exportador {
	registro := make(map[string]Exportador)
	for _, e := range []Exportador{
		ExportadorJson{},
		ExportadorYaml{},
		ExportadorMsgpack{},
		ExportadorUbjson{},
		ExportadorPlist{},
		ExportadorXml{},
		ExportadorTabular{Formato: "csv", Separador: ','},
		ExportadorTabular{Formato: "tsv", Separador: '\t'},
		ExportadorSql{},
		ExportadorSqlite{},
		ExportadorPostgres{},
		ExportadorXlsx{},
		ExportadorOds{},
	} {
		registro[e.Nome()] = e
	}
	return registro
}

// NormalizarFormatos resolve a lista pedida na linha de comando:
// minúsculas, 'all' expande para todos os formatos registrados e nomes
// desconhecidos são rejeitados de uma vez.
func NormalizarFormatos(pedidos []string, registro map[string]Exportador) ([]string, error) {
	todos := make([]string, 0, len(registro))
	for nome := range registro {
		todos = append(todos, nome)
	}
	sort.Strings(todos)

	if len(pedidos) == 0 || pedidos[0] == "all" {
		return todos, nil
	}

	linq.From(pedidos).SelectT(func(formato string) string {
		return strings.ToLower(formato)
	}).Distinct().ToSlice(&pedidos)

	var invalidos []string
	linq.From(pedidos).WhereT(func(formato string) bool {
		return linq.From(todos).Contains(formato) == false
	}).ToSlice(&invalidos)

	if len(invalidos) > 0 {
		return nil, errors.Errorf("os formatos %v são inválidos", invalidos)
	}

	sort.Strings(pedidos)
	return pedidos, nil
}

func salvarArquivo(saida, relativo string, conteudo []byte) error {
	caminho := filepath.Join(saida, relativo)

	err := os.RemoveAll(caminho)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(caminho), 0750)
	if err != nil {
		return err
	}
	err = os.WriteFile(caminho, conteudo, 0666)
	if err != nil {
		return err
	}

	return nil
}

// artefatoDe mede e calcula o hash de um arquivo já gravado.
func artefatoDe(formato, saida, relativo string) (Artefato, error) {
	caminho := filepath.Join(saida, relativo)

	arquivo, err := os.Open(caminho)
	if err != nil {
		return Artefato{}, errors.Wrapf(err, "falha em abrir o artefato %s", relativo)
	}
	defer arquivo.Close()

	resumo := sha256.New()
	tamanho, err := io.Copy(resumo, arquivo)
	if err != nil {
		return Artefato{}, errors.Wrapf(err, "falha em calcular o hash do artefato %s", relativo)
	}

	return Artefato{
		Formato: formato,
		Arquivo: relativo,
		Bytes:   tamanho,
		Sha256:  hex.EncodeToString(resumo.Sum(nil)),
	}, nil
}

// salvarEMedir grava o conteúdo e devolve o artefato correspondente,
// o caminho comum dos exportadores de arquivo único.
func salvarEMedir(formato, saida, relativo string, conteudo []byte) ([]Artefato, error) {
	err := salvarArquivo(saida, relativo, conteudo)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em gravar %s", relativo)
	}
	artefato, err := artefatoDe(formato, saida, relativo)
	if err != nil {
		return nil, err
	}
	return []Artefato{artefato}, nil
}
