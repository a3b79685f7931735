package base

import (
	"os"
	"path/filepath"
	"testing"

	"geodatabr/modelos/lugares"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarregarAmostra(t *testing.T) {
	b, err := CarregarAmostra()
	require.NoError(t, err)

	contagens := b.Contagens()
	assert.Equal(t, 2, contagens.Ufs)
	assert.Equal(t, 2, contagens.Mesorregioes)
	assert.Equal(t, 3, contagens.Microrregioes)
	assert.Equal(t, 5, contagens.Municipios)
	assert.Equal(t, 6, contagens.Distritos)
	assert.Equal(t, 3, contagens.Subdistritos)
}

func TestCarregar(t *testing.T) {
	t.Run("fonte canônica válida", func(t *testing.T) {
		caminho := filepath.Join(t.TempDir(), "fonte.json")
		require.NoError(t, os.WriteFile(caminho, amostraJson, 0666))

		b, err := Carregar(caminho)
		require.NoError(t, err)
		assert.Equal(t, 2, b.Contagens().Ufs)
	})

	t.Run("arquivo inexistente", func(t *testing.T) {
		_, err := Carregar(filepath.Join(t.TempDir(), "nao-existe.json"))
		assert.ErrorContains(t, err, "falha em ler")
	})

	t.Run("JSON inválido", func(t *testing.T) {
		caminho := filepath.Join(t.TempDir(), "fonte.json")
		require.NoError(t, os.WriteFile(caminho, []byte("isso não é json"), 0666))

		_, err := Carregar(caminho)
		assert.ErrorContains(t, err, "falha em desserializar")
	})
}

func TestValidar(t *testing.T) {
	t.Run("amostra é válida", func(t *testing.T) {
		b, err := CarregarAmostra()
		require.NoError(t, err)
		assert.NoError(t, Validar(b))
	})

	t.Run("detecta id duplicado no mesmo nível", func(t *testing.T) {
		b := &lugares.Base{Ufs: []lugares.Uf{
			{Id: 32, Nome: "Espírito Santo"},
			{Id: 32, Nome: "Espírito Santo de novo"},
		}}

		err := Validar(b)
		assert.ErrorContains(t, err, "ids duplicados na tabela uf")
	})

	t.Run("detecta nome vazio", func(t *testing.T) {
		b := &lugares.Base{Ufs: []lugares.Uf{{Id: 32, Nome: ""}}}

		err := Validar(b)
		assert.ErrorContains(t, err, "sem nome")
	})

	t.Run("ids iguais em níveis diferentes são permitidos", func(t *testing.T) {
		b := &lugares.Base{Ufs: []lugares.Uf{
			{Id: 32, Nome: "Espírito Santo", Mesorregioes: []lugares.Mesorregiao{
				{Id: 32, Nome: "Mesorregião com o mesmo código"},
			}},
		}}

		assert.NoError(t, Validar(b))
	})
}

func TestValidarContagens(t *testing.T) {
	t.Run("amostra diverge da carga oficial", func(t *testing.T) {
		b, err := CarregarAmostra()
		require.NoError(t, err)

		err = ValidarContagens(b)
		assert.ErrorContains(t, err, "contagens divergem")
	})
}
