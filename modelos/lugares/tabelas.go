package lugares

import (
	"github.com/pkg/errors"
)

// Visão tabular da base: seis tabelas planas com chaves estrangeiras
// para o nível acima, no esquema relacional do dataset original.

type Tabela struct {
	Nome    string
	Colunas []string
	Linhas  [][]any
}

// LinhaPlana é uma linha tabular já tipada, usada na remontagem da
// árvore a partir de formatos planos (CSV, SQLite). IdPai é zero para
// as UFs.
type LinhaPlana struct {
	Id    int64
	IdPai int64
	Nome  string
}

type TabelasPlanas struct {
	Ufs           []LinhaPlana
	Mesorregioes  []LinhaPlana
	Microrregioes []LinhaPlana
	Municipios    []LinhaPlana
	Distritos     []LinhaPlana
	Subdistritos  []LinhaPlana
}

func (b *Base) Tabelas() []Tabela {
	uf := Tabela{Nome: "uf", Colunas: []string{"id", "nome"}}
	meso := Tabela{Nome: "mesorregiao", Colunas: []string{"id", "id_uf", "nome"}}
	micro := Tabela{Nome: "microrregiao", Colunas: []string{"id", "id_mesorregiao", "nome"}}
	mun := Tabela{Nome: "municipio", Colunas: []string{"id", "id_microrregiao", "nome"}}
	dist := Tabela{Nome: "distrito", Colunas: []string{"id", "id_municipio", "nome"}}
	sub := Tabela{Nome: "subdistrito", Colunas: []string{"id", "id_distrito", "nome"}}

	for _, u := range b.Ufs {
		uf.Linhas = append(uf.Linhas, []any{u.Id, u.Nome})
		for _, me := range u.Mesorregioes {
			meso.Linhas = append(meso.Linhas, []any{me.Id, u.Id, me.Nome})
			for _, mi := range me.Microrregioes {
				micro.Linhas = append(micro.Linhas, []any{mi.Id, me.Id, mi.Nome})
				for _, m := range mi.Municipios {
					mun.Linhas = append(mun.Linhas, []any{m.Id, mi.Id, m.Nome})
					for _, d := range m.Distritos {
						dist.Linhas = append(dist.Linhas, []any{d.Id, m.Id, d.Nome})
						for _, s := range d.Subdistritos {
							sub.Linhas = append(sub.Linhas, []any{s.Id, d.Id, s.Nome})
						}
					}
				}
			}
		}
	}

	return []Tabela{uf, meso, micro, mun, dist, sub}
}

// MontarDeTabelas reconstrói a árvore a partir das tabelas planas,
// rejeitando ids duplicados e linhas órfãs (pai inexistente). Os nós
// são alocados individualmente e a montagem é feita de baixo para
// cima, preservando a ordem das linhas.
func MontarDeTabelas(planas TabelasPlanas) (*Base, error) {
	ufs := make(map[int64]*Uf, len(planas.Ufs))
	for _, linha := range planas.Ufs {
		if _, repetido := ufs[linha.Id]; repetido {
			return nil, errors.Errorf("uf com id duplicado: %d", linha.Id)
		}
		ufs[linha.Id] = &Uf{Id: linha.Id, Nome: linha.Nome}
	}

	mesos := make(map[int64]*Mesorregiao, len(planas.Mesorregioes))
	for _, linha := range planas.Mesorregioes {
		if _, repetido := mesos[linha.Id]; repetido {
			return nil, errors.Errorf("mesorregiao com id duplicado: %d", linha.Id)
		}
		if _, existe := ufs[linha.IdPai]; existe == false {
			return nil, errors.Errorf("mesorregiao %d órfã: uf %d inexistente", linha.Id, linha.IdPai)
		}
		mesos[linha.Id] = &Mesorregiao{Id: linha.Id, Nome: linha.Nome}
	}

	micros := make(map[int64]*Microrregiao, len(planas.Microrregioes))
	for _, linha := range planas.Microrregioes {
		if _, repetido := micros[linha.Id]; repetido {
			return nil, errors.Errorf("microrregiao com id duplicado: %d", linha.Id)
		}
		if _, existe := mesos[linha.IdPai]; existe == false {
			return nil, errors.Errorf("microrregiao %d órfã: mesorregiao %d inexistente", linha.Id, linha.IdPai)
		}
		micros[linha.Id] = &Microrregiao{Id: linha.Id, Nome: linha.Nome}
	}

	muns := make(map[int64]*Municipio, len(planas.Municipios))
	for _, linha := range planas.Municipios {
		if _, repetido := muns[linha.Id]; repetido {
			return nil, errors.Errorf("municipio com id duplicado: %d", linha.Id)
		}
		if _, existe := micros[linha.IdPai]; existe == false {
			return nil, errors.Errorf("municipio %d órfão: microrregiao %d inexistente", linha.Id, linha.IdPai)
		}
		muns[linha.Id] = &Municipio{Id: linha.Id, Nome: linha.Nome}
	}

	dists := make(map[int64]*Distrito, len(planas.Distritos))
	for _, linha := range planas.Distritos {
		if _, repetido := dists[linha.Id]; repetido {
			return nil, errors.Errorf("distrito com id duplicado: %d", linha.Id)
		}
		if _, existe := muns[linha.IdPai]; existe == false {
			return nil, errors.Errorf("distrito %d órfão: municipio %d inexistente", linha.Id, linha.IdPai)
		}
		dists[linha.Id] = &Distrito{Id: linha.Id, Nome: linha.Nome}
	}

	subs := make(map[int64]bool, len(planas.Subdistritos))
	for _, linha := range planas.Subdistritos {
		if subs[linha.Id] {
			return nil, errors.Errorf("subdistrito com id duplicado: %d", linha.Id)
		}
		pai, existe := dists[linha.IdPai]
		if existe == false {
			return nil, errors.Errorf("subdistrito %d órfão: distrito %d inexistente", linha.Id, linha.IdPai)
		}
		pai.Subdistritos = append(pai.Subdistritos, Subdistrito{Id: linha.Id, Nome: linha.Nome})
		subs[linha.Id] = true
	}

	for _, linha := range planas.Distritos {
		pai := muns[linha.IdPai]
		pai.Distritos = append(pai.Distritos, *dists[linha.Id])
	}
	for _, linha := range planas.Municipios {
		pai := micros[linha.IdPai]
		pai.Municipios = append(pai.Municipios, *muns[linha.Id])
	}
	for _, linha := range planas.Microrregioes {
		pai := mesos[linha.IdPai]
		pai.Microrregioes = append(pai.Microrregioes, *micros[linha.Id])
	}
	for _, linha := range planas.Mesorregioes {
		pai := ufs[linha.IdPai]
		pai.Mesorregioes = append(pai.Mesorregioes, *mesos[linha.Id])
	}

	base := &Base{Ufs: make([]Uf, 0, len(planas.Ufs))}
	for _, linha := range planas.Ufs {
		base.Ufs = append(base.Ufs, *ufs[linha.Id])
	}
	return base, nil
}
