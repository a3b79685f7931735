package exportadores

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"geodatabr/modelos/lugares"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestIdaEVoltaDocumentos(t *testing.T) {
	original := amostra(t)

	casos := []struct {
		formato  string
		arquivo  string
		importar func(string) (*lugares.Base, error)
	}{
		{"json", "dataset.json", ImportarJson},
		{"json", "dataset.min.json", ImportarJson},
		{"yaml", "dataset.yaml", ImportarYaml},
		{"msgpack", "dataset.msgpack", ImportarMsgpack},
		{"ubjson", "dataset.ubj", ImportarUbjson},
		{"plist", "dataset.plist", ImportarPlist},
	}

	for _, caso := range casos {
		t.Run(caso.arquivo, func(t *testing.T) {
			saida := t.TempDir()

			_, err := Registro()[caso.formato].Exportar(original, saida)
			require.NoError(t, err)

			remontada, err := caso.importar(filepath.Join(saida, caso.arquivo))
			require.NoError(t, err)
			assert.Equal(t, original, remontada)
		})
	}
}

func TestIdaEVoltaTabular(t *testing.T) {
	original := amostra(t)

	casos := []struct {
		formato   string
		separador rune
	}{
		{"csv", ','},
		{"tsv", '\t'},
	}

	for _, caso := range casos {
		t.Run(caso.formato, func(t *testing.T) {
			saida := t.TempDir()

			artefatos, err := Registro()[caso.formato].Exportar(original, saida)
			require.NoError(t, err)
			assert.Len(t, artefatos, 6)

			remontada, err := ImportarTabular(filepath.Join(saida, caso.formato), caso.formato, caso.separador)
			require.NoError(t, err)
			assert.Equal(t, original, remontada)
		})
	}
}

func TestIdaEVoltaSqlite(t *testing.T) {
	original := amostra(t)
	saida := t.TempDir()

	artefatos, err := ExportadorSqlite{}.Exportar(original, saida)
	require.NoError(t, err)
	require.Len(t, artefatos, 1)
	assert.Equal(t, "dataset.sqlite3", artefatos[0].Arquivo)

	remontada, err := ImportarSqlite(filepath.Join(saida, "dataset.sqlite3"))
	require.NoError(t, err)
	assert.Equal(t, original, remontada)
}

func TestExportadorSql(t *testing.T) {
	saida := t.TempDir()

	_, err := ExportadorSql{}.Exportar(amostra(t), saida)
	require.NoError(t, err)

	conteudo, err := os.ReadFile(filepath.Join(saida, "dataset.sql"))
	require.NoError(t, err)
	dump := string(conteudo)

	assert.Contains(t, dump, "CREATE TABLE uf (")
	assert.Contains(t, dump, "id_microrregiao bigint NOT NULL REFERENCES microrregiao (id)")
	assert.Contains(t, dump, "INSERT INTO municipio (id, id_microrregiao, nome) VALUES (3205309, 32009, 'Vitória');")
}

func TestInsertLinhaEscapaAspas(t *testing.T) {
	tabela := lugares.Tabela{Nome: "municipio", Colunas: []string{"id", "id_microrregiao", "nome"}}
	linha := []any{int64(1), int64(2), "Santa Bárbara d'Oeste"}

	assert.Equal(t,
		"INSERT INTO municipio (id, id_microrregiao, nome) VALUES (1, 2, 'Santa Bárbara d''Oeste');\n",
		insertLinha(tabela, linha))
}

func TestExportadorXml(t *testing.T) {
	saida := t.TempDir()

	_, err := ExportadorXml{}.Exportar(amostra(t), saida)
	require.NoError(t, err)

	conteudo, err := os.ReadFile(filepath.Join(saida, "dataset.xml"))
	require.NoError(t, err)

	var documento xmlBase
	require.NoError(t, xml.Unmarshal(conteudo, &documento))

	require.Len(t, documento.Tabelas, 6)
	assert.Equal(t, "uf", documento.Tabelas[0].Nome)
	assert.Len(t, documento.Tabelas[0].Linhas, 2)
	assert.Len(t, documento.Tabelas[3].Linhas, 5)

	primeira := documento.Tabelas[0].Linhas[0]
	require.Len(t, primeira.Campos, 2)
	assert.Equal(t, xmlCampo{Nome: "id", Valor: "32"}, primeira.Campos[0])
	assert.Equal(t, xmlCampo{Nome: "nome", Valor: "Espírito Santo"}, primeira.Campos[1])
}

func TestExportadorXlsx(t *testing.T) {
	saida := t.TempDir()

	_, err := ExportadorXlsx{}.Exportar(amostra(t), saida)
	require.NoError(t, err)

	pasta, err := excelize.OpenFile(filepath.Join(saida, "dataset.xlsx"))
	require.NoError(t, err)
	defer pasta.Close()

	assert.ElementsMatch(t,
		[]string{"uf", "mesorregiao", "microrregiao", "municipio", "distrito", "subdistrito"},
		pasta.GetSheetList())

	linhas, err := pasta.GetRows("uf")
	require.NoError(t, err)
	require.Len(t, linhas, 3)
	assert.Equal(t, []string{"id", "nome"}, linhas[0])
	assert.Equal(t, []string{"32", "Espírito Santo"}, linhas[1])
}

func TestExportadorOds(t *testing.T) {
	saida := t.TempDir()

	_, err := ExportadorOds{}.Exportar(amostra(t), saida)
	require.NoError(t, err)

	pacote, err := zip.OpenReader(filepath.Join(saida, "dataset.ods"))
	require.NoError(t, err)
	defer pacote.Close()

	require.NotEmpty(t, pacote.File)
	// O mimetype precisa ser a primeira entrada, sem compressão.
	assert.Equal(t, "mimetype", pacote.File[0].Name)
	assert.Equal(t, zip.Store, pacote.File[0].Method)

	var conteudo string
	for _, arquivo := range pacote.File {
		if arquivo.Name != "content.xml" {
			continue
		}
		leitor, err := arquivo.Open()
		require.NoError(t, err)
		bruto := new(strings.Builder)
		_, err = io.Copy(bruto, leitor)
		require.NoError(t, err)
		require.NoError(t, leitor.Close())
		conteudo = bruto.String()
	}

	require.NotEmpty(t, conteudo)
	assert.Contains(t, conteudo, `<table:table table:name="municipio">`)
	assert.Contains(t, conteudo, `office:value="3205309"`)
}
