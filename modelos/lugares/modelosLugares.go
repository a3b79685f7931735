package lugares

// Entidades da divisão territorial brasileira. A hierarquia é estrita:
// cada nível pertence a exatamente um pai do nível acima.

type Subdistrito struct {
	Id   int64  `json:"id" yaml:"id" msgpack:"id"`
	Nome string `json:"nome" yaml:"nome" msgpack:"nome"`
}

type Distrito struct {
	Id           int64         `json:"id" yaml:"id" msgpack:"id"`
	Nome         string        `json:"nome" yaml:"nome" msgpack:"nome"`
	Subdistritos []Subdistrito `json:"subdistritos,omitempty" yaml:"subdistritos,omitempty" msgpack:"subdistritos,omitempty"`
}

type Municipio struct {
	Id        int64      `json:"id" yaml:"id" msgpack:"id"`
	Nome      string     `json:"nome" yaml:"nome" msgpack:"nome"`
	Distritos []Distrito `json:"distritos,omitempty" yaml:"distritos,omitempty" msgpack:"distritos,omitempty"`
}

type Microrregiao struct {
	Id         int64       `json:"id" yaml:"id" msgpack:"id"`
	Nome       string      `json:"nome" yaml:"nome" msgpack:"nome"`
	Municipios []Municipio `json:"municipios,omitempty" yaml:"municipios,omitempty" msgpack:"municipios,omitempty"`
}

type Mesorregiao struct {
	Id            int64          `json:"id" yaml:"id" msgpack:"id"`
	Nome          string         `json:"nome" yaml:"nome" msgpack:"nome"`
	Microrregioes []Microrregiao `json:"microrregioes,omitempty" yaml:"microrregioes,omitempty" msgpack:"microrregioes,omitempty"`
}

type Uf struct {
	Id           int64         `json:"id" yaml:"id" msgpack:"id"`
	Nome         string        `json:"nome" yaml:"nome" msgpack:"nome"`
	Mesorregioes []Mesorregiao `json:"mesorregioes,omitempty" yaml:"mesorregioes,omitempty" msgpack:"mesorregioes,omitempty"`
}

type Base struct {
	Ufs []Uf `json:"ufs" yaml:"ufs" msgpack:"ufs"`
}

// Contagens de registros por nível da hierarquia.
type Contagens struct {
	Ufs           int `json:"ufs"`
	Mesorregioes  int `json:"mesorregioes"`
	Microrregioes int `json:"microrregioes"`
	Municipios    int `json:"municipios"`
	Distritos     int `json:"distritos"`
	Subdistritos  int `json:"subdistritos"`
}

// ContagensOficiais são as contagens da carga de referência do dataset.
var ContagensOficiais = Contagens{
	Ufs:           27,
	Mesorregioes:  137,
	Microrregioes: 558,
	Municipios:    5570,
	Distritos:     10302,
	Subdistritos:  662,
}

func (b *Base) Contagens() Contagens {
	var c Contagens
	c.Ufs = len(b.Ufs)
	for _, uf := range b.Ufs {
		c.Mesorregioes += len(uf.Mesorregioes)
		for _, meso := range uf.Mesorregioes {
			c.Microrregioes += len(meso.Microrregioes)
			for _, micro := range meso.Microrregioes {
				c.Municipios += len(micro.Municipios)
				for _, mun := range micro.Municipios {
					c.Distritos += len(mun.Distritos)
					for _, dist := range mun.Distritos {
						c.Subdistritos += len(dist.Subdistritos)
					}
				}
			}
		}
	}
	return c
}
