package exportadores

import (
	"os"

	"geodatabr/modelos/lugares"

	"github.com/pkg/errors"
	"howett.net/plist"
)

// ExportadorPlist grava a property list binária da Apple sobre a visão
// normalizada da base.
type ExportadorPlist struct{}

func (ExportadorPlist) Nome() string { return "plist" }

func (e ExportadorPlist) Exportar(b *lugares.Base, saida string) ([]Artefato, error) {
	conteudo, err := plist.Marshal(b.Normalizar(), plist.BinaryFormat)
	if err != nil {
		return nil, errors.Wrap(err, "falha em serializar a plist binária")
	}
	return salvarEMedir(e.Nome(), saida, "dataset.plist", conteudo)
}

func ImportarPlist(caminho string) (*lugares.Base, error) {
	bytesArq, err := os.ReadFile(caminho)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em ler %s", caminho)
	}
	var bruto map[string]any
	if _, err := plist.Unmarshal(bytesArq, &bruto); err != nil {
		return nil, errors.Wrapf(err, "falha em decodificar %s", caminho)
	}
	b, err := lugares.Desnormalizar(bruto)
	if err != nil {
		return nil, errors.Wrapf(err, "dados inválidos em %s", caminho)
	}
	return b, nil
}
