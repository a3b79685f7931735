package lugares

import (
	"github.com/pkg/errors"
)

// Normalizar converte a árvore em mapas e fatias genéricos para os
// codificadores que não leem tags de struct (UBJSON, plist).
func (b *Base) Normalizar() map[string]any {
	ufs := make([]any, 0, len(b.Ufs))
	for _, uf := range b.Ufs {
		mesos := make([]any, 0, len(uf.Mesorregioes))
		for _, meso := range uf.Mesorregioes {
			micros := make([]any, 0, len(meso.Microrregioes))
			for _, micro := range meso.Microrregioes {
				muns := make([]any, 0, len(micro.Municipios))
				for _, mun := range micro.Municipios {
					dists := make([]any, 0, len(mun.Distritos))
					for _, dist := range mun.Distritos {
						subs := make([]any, 0, len(dist.Subdistritos))
						for _, sub := range dist.Subdistritos {
							subs = append(subs, map[string]any{"id": sub.Id, "nome": sub.Nome})
						}
						dists = append(dists, map[string]any{"id": dist.Id, "nome": dist.Nome, "subdistritos": subs})
					}
					muns = append(muns, map[string]any{"id": mun.Id, "nome": mun.Nome, "distritos": dists})
				}
				micros = append(micros, map[string]any{"id": micro.Id, "nome": micro.Nome, "municipios": muns})
			}
			mesos = append(mesos, map[string]any{"id": meso.Id, "nome": meso.Nome, "microrregioes": micros})
		}
		ufs = append(ufs, map[string]any{"id": uf.Id, "nome": uf.Nome, "mesorregioes": mesos})
	}
	return map[string]any{"ufs": ufs}
}

// Desnormalizar remonta a árvore a partir de dados genéricos
// decodificados. Cada codificador devolve tipos numéricos e de mapa
// diferentes, então a conversão é tolerante.
func Desnormalizar(valor any) (*Base, error) {
	raiz, err := comoMapa(valor)
	if err != nil {
		return nil, errors.Wrap(err, "raiz do dataset")
	}

	ufs, err := comoLista(raiz["ufs"])
	if err != nil {
		return nil, errors.Wrap(err, "campo 'ufs'")
	}

	base := &Base{Ufs: make([]Uf, 0, len(ufs))}
	for _, vUf := range ufs {
		uf, err := desnormalizarUf(vUf)
		if err != nil {
			return nil, err
		}
		base.Ufs = append(base.Ufs, uf)
	}
	return base, nil
}

func desnormalizarUf(valor any) (Uf, error) {
	var uf Uf
	m, err := comoMapa(valor)
	if err != nil {
		return uf, errors.Wrap(err, "uf")
	}
	if uf.Id, uf.Nome, err = idENome(m); err != nil {
		return uf, errors.Wrap(err, "uf")
	}
	filhos, err := filhosDe(m, "mesorregioes")
	if err != nil {
		return uf, err
	}
	for _, vMeso := range filhos {
		meso, err := desnormalizarMesorregiao(vMeso)
		if err != nil {
			return uf, err
		}
		uf.Mesorregioes = append(uf.Mesorregioes, meso)
	}
	return uf, nil
}

func desnormalizarMesorregiao(valor any) (Mesorregiao, error) {
	var meso Mesorregiao
	m, err := comoMapa(valor)
	if err != nil {
		return meso, errors.Wrap(err, "mesorregiao")
	}
	if meso.Id, meso.Nome, err = idENome(m); err != nil {
		return meso, errors.Wrap(err, "mesorregiao")
	}
	filhos, err := filhosDe(m, "microrregioes")
	if err != nil {
		return meso, err
	}
	for _, vMicro := range filhos {
		micro, err := desnormalizarMicrorregiao(vMicro)
		if err != nil {
			return meso, err
		}
		meso.Microrregioes = append(meso.Microrregioes, micro)
	}
	return meso, nil
}

func desnormalizarMicrorregiao(valor any) (Microrregiao, error) {
	var micro Microrregiao
	m, err := comoMapa(valor)
	if err != nil {
		return micro, errors.Wrap(err, "microrregiao")
	}
	if micro.Id, micro.Nome, err = idENome(m); err != nil {
		return micro, errors.Wrap(err, "microrregiao")
	}
	filhos, err := filhosDe(m, "municipios")
	if err != nil {
		return micro, err
	}
	for _, vMun := range filhos {
		mun, err := desnormalizarMunicipio(vMun)
		if err != nil {
			return micro, err
		}
		micro.Municipios = append(micro.Municipios, mun)
	}
	return micro, nil
}

func desnormalizarMunicipio(valor any) (Municipio, error) {
	var mun Municipio
	m, err := comoMapa(valor)
	if err != nil {
		return mun, errors.Wrap(err, "municipio")
	}
	if mun.Id, mun.Nome, err = idENome(m); err != nil {
		return mun, errors.Wrap(err, "municipio")
	}
	filhos, err := filhosDe(m, "distritos")
	if err != nil {
		return mun, err
	}
	for _, vDist := range filhos {
		dist, err := desnormalizarDistrito(vDist)
		if err != nil {
			return mun, err
		}
		mun.Distritos = append(mun.Distritos, dist)
	}
	return mun, nil
}

func desnormalizarDistrito(valor any) (Distrito, error) {
	var dist Distrito
	m, err := comoMapa(valor)
	if err != nil {
		return dist, errors.Wrap(err, "distrito")
	}
	if dist.Id, dist.Nome, err = idENome(m); err != nil {
		return dist, errors.Wrap(err, "distrito")
	}
	filhos, err := filhosDe(m, "subdistritos")
	if err != nil {
		return dist, err
	}
	for _, vSub := range filhos {
		sm, err := comoMapa(vSub)
		if err != nil {
			return dist, errors.Wrap(err, "subdistrito")
		}
		var sub Subdistrito
		if sub.Id, sub.Nome, err = idENome(sm); err != nil {
			return dist, errors.Wrap(err, "subdistrito")
		}
		dist.Subdistritos = append(dist.Subdistritos, sub)
	}
	return dist, nil
}

func idENome(m map[string]any) (int64, string, error) {
	id, err := comoInt64(m["id"])
	if err != nil {
		return 0, "", errors.Wrap(err, "campo 'id'")
	}
	nome, ok := m["nome"].(string)
	if ok == false {
		return 0, "", errors.Errorf("campo 'nome' inválido: %v", m["nome"])
	}
	return id, nome, nil
}

func filhosDe(m map[string]any, chave string) ([]any, error) {
	valor, presente := m[chave]
	if presente == false || valor == nil {
		return nil, nil
	}
	filhos, err := comoLista(valor)
	if err != nil {
		return nil, errors.Wrapf(err, "campo '%s'", chave)
	}
	return filhos, nil
}

func comoMapa(valor any) (map[string]any, error) {
	switch m := valor.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		convertido := make(map[string]any, len(m))
		for chave, v := range m {
			texto, ok := chave.(string)
			if ok == false {
				return nil, errors.Errorf("chave de mapa não textual: %v", chave)
			}
			convertido[texto] = v
		}
		return convertido, nil
	default:
		return nil, errors.Errorf("esperado um mapa, recebido %T", valor)
	}
}

func comoLista(valor any) ([]any, error) {
	lista, ok := valor.([]any)
	if ok == false {
		return nil, errors.Errorf("esperada uma lista, recebido %T", valor)
	}
	return lista, nil
}

func comoInt64(valor any) (int64, error) {
	switch n := valor.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case uint:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float32:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, errors.Errorf("esperado um número, recebido %T", valor)
	}
}
