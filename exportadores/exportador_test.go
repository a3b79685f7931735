package exportadores

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"geodatabr/base"
	"geodatabr/jsonHelpers"
	"geodatabr/modelos/lugares"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amostra(t *testing.T) *lugares.Base {
	t.Helper()
	b, err := base.CarregarAmostra()
	require.NoError(t, err)
	return b
}

func TestRegistro(t *testing.T) {
	registro := Registro()

	nomes := make([]string, 0, len(registro))
	for nome := range registro {
		nomes = append(nomes, nome)
	}
	sort.Strings(nomes)

	assert.Equal(t, []string{
		"csv", "json", "msgpack", "ods", "plist", "postgres", "sql",
		"sqlite", "tsv", "ubjson", "xlsx", "xml", "yaml",
	}, nomes)

	for nome, exportador := range registro {
		assert.Equal(t, nome, exportador.Nome())
	}
}

func TestNormalizarFormatos(t *testing.T) {
	registro := Registro()

	t.Run("all expande para todos os formatos", func(t *testing.T) {
		formatos, err := NormalizarFormatos([]string{"all"}, registro)
		require.NoError(t, err)
		assert.Len(t, formatos, len(registro))
	})

	t.Run("nomes são normalizados e deduplicados", func(t *testing.T) {
		formatos, err := NormalizarFormatos([]string{"JSON", "yaml", "json"}, registro)
		require.NoError(t, err)
		assert.Equal(t, []string{"json", "yaml"}, formatos)
	})

	t.Run("nome desconhecido é rejeitado", func(t *testing.T) {
		_, err := NormalizarFormatos([]string{"json", "fdb"}, registro)
		assert.ErrorContains(t, err, "[fdb]")
	})
}

func TestExecutar(t *testing.T) {
	t.Run("exporta os formatos pedidos em paralelo", func(t *testing.T) {
		saida := t.TempDir()

		artefatos, err := Executar(amostra(t), []string{"json", "yaml", "csv"}, saida, 2)
		require.NoError(t, err)

		// json produz 2 artefatos, yaml 1 e csv um por tabela.
		assert.Len(t, artefatos, 9)
		for _, artefato := range artefatos {
			info, err := os.Stat(filepath.Join(saida, artefato.Arquivo))
			require.NoError(t, err)
			assert.Equal(t, artefato.Bytes, info.Size())
			assert.Len(t, artefato.Sha256, 64)
		}
	})

	t.Run("formato que falha não derruba os demais", func(t *testing.T) {
		t.Setenv("POSTGRES_DSN", "")
		saida := t.TempDir()

		artefatos, err := Executar(amostra(t), []string{"json", "postgres"}, saida, 2)
		assert.ErrorContains(t, err, "postgres")
		assert.Len(t, artefatos, 2)
		assert.FileExists(t, filepath.Join(saida, "dataset.json"))
	})
}

func TestEscreverManifesto(t *testing.T) {
	saida := t.TempDir()

	artefatos, err := Executar(amostra(t), []string{"json"}, saida, 1)
	require.NoError(t, err)
	require.NoError(t, EscreverManifesto(saida, artefatos))

	conteudo, err := os.ReadFile(filepath.Join(saida, "manifest.json"))
	require.NoError(t, err)

	lidos, err := jsonHelpers.DesserializarJson[[]Artefato](conteudo)
	require.NoError(t, err)
	assert.Equal(t, artefatos, lidos)
}

func TestComprimirSaida(t *testing.T) {
	saida := filepath.Join(t.TempDir(), "dist")

	_, err := Executar(amostra(t), []string{"json"}, saida, 1)
	require.NoError(t, err)

	alvo, err := ComprimirSaida(saida)
	require.NoError(t, err)
	assert.Equal(t, saida+".zip", alvo)
	assert.FileExists(t, alvo)
}
