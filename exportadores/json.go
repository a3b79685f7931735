package exportadores

import (
	"os"

	"geodatabr/jsonHelpers"
	"geodatabr/modelos/lugares"

	"github.com/pkg/errors"
)

// ExportadorJson grava a árvore aninhada em dois artefatos: o JSON
// identado para leitura e o minificado para distribuição.
type ExportadorJson struct{}

func (ExportadorJson) Nome() string { return "json" }

func (e ExportadorJson) Exportar(b *lugares.Base, saida string) ([]Artefato, error) {
	identado, err := jsonHelpers.SerializarJsonIdentado(b)
	if err != nil {
		return nil, errors.Wrap(err, "falha em serializar o JSON identado")
	}
	minificado, err := jsonHelpers.SerializarJson(b)
	if err != nil {
		return nil, errors.Wrap(err, "falha em serializar o JSON minificado")
	}

	artefatos, err := salvarEMedir(e.Nome(), saida, "dataset.json", identado)
	if err != nil {
		return nil, err
	}
	minArtefatos, err := salvarEMedir(e.Nome(), saida, "dataset.min.json", minificado)
	if err != nil {
		return nil, err
	}

	return append(artefatos, minArtefatos...), nil
}

func ImportarJson(caminho string) (*lugares.Base, error) {
	bytesArq, err := os.ReadFile(caminho)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em ler %s", caminho)
	}
	b, err := jsonHelpers.DesserializarJson[lugares.Base](bytesArq)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em desserializar %s", caminho)
	}
	return &b, nil
}
