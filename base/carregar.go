package base

import (
	_ "embed"
	"geodatabr/jsonHelpers"
	"geodatabr/modelos/lugares"
	"os"

	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

// Amostra reduzida da base, embutida no binário para execuções de
// demonstração e para os testes. A carga completa é fornecida pelo
// usuário via --entrada.
//
//go:embed amostra.json
var amostraJson []byte

// Carregar lê a fonte canônica (JSON aninhado) do caminho informado.
func Carregar(caminho string) (*lugares.Base, error) {
	bytesArq, err := os.ReadFile(caminho)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em ler a fonte canônica %s", caminho)
	}

	carregada, err := jsonHelpers.DesserializarJson[lugares.Base](bytesArq)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em desserializar a fonte canônica %s", caminho)
	}

	contagens := carregada.Contagens()
	logger.Infof(
		"Base carregada de %s: %d UFs, %d mesorregiões, %d microrregiões, %d municípios, %d distritos, %d subdistritos",
		caminho, contagens.Ufs, contagens.Mesorregioes, contagens.Microrregioes,
		contagens.Municipios, contagens.Distritos, contagens.Subdistritos)

	return &carregada, nil
}

// CarregarAmostra carrega a base de exemplo embutida.
func CarregarAmostra() (*lugares.Base, error) {
	carregada, err := jsonHelpers.DesserializarJson[lugares.Base](amostraJson)
	if err != nil {
		return nil, errors.Wrap(err, "falha em desserializar a amostra embutida")
	}
	return &carregada, nil
}
