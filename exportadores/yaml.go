package exportadores

import (
	"os"

	"geodatabr/modelos/lugares"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type ExportadorYaml struct{}

func (ExportadorYaml) Nome() string { return "yaml" }

func (e ExportadorYaml) Exportar(b *lugares.Base, saida string) ([]Artefato, error) {
	conteudo, err := yaml.Marshal(b)
	if err != nil {
		return nil, errors.Wrap(err, "falha em serializar o YAML")
	}
	return salvarEMedir(e.Nome(), saida, "dataset.yaml", conteudo)
}

func ImportarYaml(caminho string) (*lugares.Base, error) {
	bytesArq, err := os.ReadFile(caminho)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em ler %s", caminho)
	}
	var b lugares.Base
	if err := yaml.Unmarshal(bytesArq, &b); err != nil {
		return nil, errors.Wrapf(err, "falha em desserializar %s", caminho)
	}
	return &b, nil
}
