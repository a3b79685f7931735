package lugares

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseDeTeste() *Base {
	return &Base{Ufs: []Uf{
		{Id: 32, Nome: "Espírito Santo", Mesorregioes: []Mesorregiao{
			{Id: 3202, Nome: "Central Espírito-Santense", Microrregioes: []Microrregiao{
				{Id: 32009, Nome: "Vitória", Municipios: []Municipio{
					{Id: 3205309, Nome: "Vitória", Distritos: []Distrito{
						{Id: 320530905, Nome: "Vitória", Subdistritos: []Subdistrito{
							{Id: 32053090512, Nome: "Centro"},
						}},
					}},
					{Id: 3205200, Nome: "Vila Velha", Distritos: []Distrito{
						{Id: 320520005, Nome: "Vila Velha"},
					}},
				}},
			}},
		}},
		{Id: 33, Nome: "Rio de Janeiro"},
	}}
}

func TestContagens(t *testing.T) {
	contagens := baseDeTeste().Contagens()

	assert.Equal(t, Contagens{
		Ufs:           2,
		Mesorregioes:  1,
		Microrregioes: 1,
		Municipios:    2,
		Distritos:     2,
		Subdistritos:  1,
	}, contagens)
}

func TestNormalizarEDesnormalizar(t *testing.T) {
	t.Run("ida e volta preserva a hierarquia", func(t *testing.T) {
		original := baseDeTeste()

		remontada, err := Desnormalizar(original.Normalizar())
		require.NoError(t, err)
		assert.Equal(t, original, remontada)
	})

	t.Run("aceita os tipos numéricos dos codecs", func(t *testing.T) {
		// JSON devolve float64, plist devolve uint64; ambos precisam
		// remontar o mesmo id.
		bruto := map[string]any{"ufs": []any{
			map[string]any{"id": float64(32), "nome": "Espírito Santo"},
			map[string]any{"id": uint64(33), "nome": "Rio de Janeiro"},
		}}

		remontada, err := Desnormalizar(bruto)
		require.NoError(t, err)
		require.Len(t, remontada.Ufs, 2)
		assert.Equal(t, int64(32), remontada.Ufs[0].Id)
		assert.Equal(t, int64(33), remontada.Ufs[1].Id)
	})

	t.Run("aceita mapas com chave genérica", func(t *testing.T) {
		bruto := map[any]any{"ufs": []any{
			map[any]any{"id": 32, "nome": "Espírito Santo"},
		}}

		remontada, err := Desnormalizar(bruto)
		require.NoError(t, err)
		require.Len(t, remontada.Ufs, 1)
		assert.Equal(t, "Espírito Santo", remontada.Ufs[0].Nome)
	})

	t.Run("rejeita id não numérico", func(t *testing.T) {
		bruto := map[string]any{"ufs": []any{
			map[string]any{"id": "trinta e dois", "nome": "Espírito Santo"},
		}}

		_, err := Desnormalizar(bruto)
		assert.ErrorContains(t, err, "campo 'id'")
	})

	t.Run("rejeita raiz que não é mapa", func(t *testing.T) {
		_, err := Desnormalizar([]any{})
		assert.ErrorContains(t, err, "raiz do dataset")
	})
}

func TestTabelas(t *testing.T) {
	tabelas := baseDeTeste().Tabelas()

	require.Len(t, tabelas, 6)
	assert.Equal(t, "uf", tabelas[0].Nome)
	assert.Equal(t, []string{"id", "nome"}, tabelas[0].Colunas)
	assert.Equal(t, []string{"id", "id_uf", "nome"}, tabelas[1].Colunas)
	assert.Equal(t, []string{"id", "id_distrito", "nome"}, tabelas[5].Colunas)

	assert.Len(t, tabelas[0].Linhas, 2)
	assert.Len(t, tabelas[3].Linhas, 2)

	// A linha do município carrega a FK da microrregião.
	assert.Equal(t, []any{int64(3205309), int64(32009), "Vitória"}, tabelas[3].Linhas[0])
}

func TestMontarDeTabelas(t *testing.T) {
	planasDe := func(b *Base) TabelasPlanas {
		tabelas := b.Tabelas()
		var planas TabelasPlanas
		destinos := []*[]LinhaPlana{
			&planas.Ufs, &planas.Mesorregioes, &planas.Microrregioes,
			&planas.Municipios, &planas.Distritos, &planas.Subdistritos,
		}
		for i, tabela := range tabelas {
			for _, linha := range tabela.Linhas {
				var plana LinhaPlana
				plana.Id = linha[0].(int64)
				if len(linha) == 3 {
					plana.IdPai = linha[1].(int64)
				}
				plana.Nome = linha[len(linha)-1].(string)
				*destinos[i] = append(*destinos[i], plana)
			}
		}
		return planas
	}

	t.Run("ida e volta pela visão tabular", func(t *testing.T) {
		original := baseDeTeste()

		remontada, err := MontarDeTabelas(planasDe(original))
		require.NoError(t, err)
		assert.Equal(t, original, remontada)
	})

	t.Run("rejeita linha órfã", func(t *testing.T) {
		planas := planasDe(baseDeTeste())
		planas.Municipios[0].IdPai = 99999

		_, err := MontarDeTabelas(planas)
		assert.ErrorContains(t, err, "órfão")
	})

	t.Run("rejeita id duplicado", func(t *testing.T) {
		planas := planasDe(baseDeTeste())
		planas.Ufs = append(planas.Ufs, LinhaPlana{Id: 32, Nome: "Duplicada"})

		_, err := MontarDeTabelas(planas)
		assert.ErrorContains(t, err, "duplicado")
	})
}
