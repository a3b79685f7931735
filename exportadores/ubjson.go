package exportadores

import (
	"os"

	"geodatabr/modelos/lugares"

	"github.com/jmank88/ubjson"
	"github.com/pkg/errors"
)

// ExportadorUbjson codifica a visão normalizada (mapas genéricos), já
// que o codec UBJSON não lê as tags de struct dos modelos.
type ExportadorUbjson struct{}

func (ExportadorUbjson) Nome() string { return "ubjson" }

func (e ExportadorUbjson) Exportar(b *lugares.Base, saida string) ([]Artefato, error) {
	conteudo, err := ubjson.Marshal(b.Normalizar())
	if err != nil {
		return nil, errors.Wrap(err, "falha em serializar o UBJSON")
	}
	return salvarEMedir(e.Nome(), saida, "dataset.ubj", conteudo)
}

func ImportarUbjson(caminho string) (*lugares.Base, error) {
	bytesArq, err := os.ReadFile(caminho)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em ler %s", caminho)
	}
	var bruto map[string]any
	if err := ubjson.Unmarshal(bytesArq, &bruto); err != nil {
		return nil, errors.Wrapf(err, "falha em decodificar %s", caminho)
	}
	b, err := lugares.Desnormalizar(bruto)
	if err != nil {
		return nil, errors.Wrapf(err, "dados inválidos em %s", caminho)
	}
	return b, nil
}
