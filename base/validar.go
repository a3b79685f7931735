package base

import (
	"geodatabr/modelos/lugares"

	linq "github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
)

// Validar confere as invariantes estruturais da base: ids únicos
// dentro de cada nível e nomes não vazios. A resolução dos pais é
// garantida pela própria forma aninhada.
func Validar(b *lugares.Base) error {
	for _, tabela := range b.Tabelas() {
		ids := make([]int64, 0, len(tabela.Linhas))
		for _, linha := range tabela.Linhas {
			id := linha[0].(int64)
			nome := linha[len(linha)-1].(string)
			if nome == "" {
				return errors.Errorf("%s %d sem nome", tabela.Nome, id)
			}
			ids = append(ids, id)
		}

		if duplicados := idsDuplicados(ids); len(duplicados) > 0 {
			return errors.Errorf("ids duplicados na tabela %s: %v", tabela.Nome, duplicados)
		}
	}
	return nil
}

// ValidarContagens confere as contagens da base contra as contagens
// oficiais da carga de referência (modo --verificar).
func ValidarContagens(b *lugares.Base) error {
	contagens := b.Contagens()
	if contagens != lugares.ContagensOficiais {
		return errors.Errorf(
			"contagens divergem das oficiais: obtido %+v, esperado %+v",
			contagens, lugares.ContagensOficiais)
	}
	return nil
}

func idsDuplicados(ids []int64) []int64 {
	var duplicados []int64

	linq.From(ids).GroupByT(
		func(id int64) int64 { return id },
		func(id int64) int64 { return id },
	).WhereT(func(grupo linq.Group) bool {
		return len(grupo.Group) > 1
	}).SelectT(func(grupo linq.Group) int64 {
		return grupo.Key.(int64)
	}).ToSlice(&duplicados)

	return duplicados
}
