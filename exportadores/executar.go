package exportadores

import (
	"sort"
	"strings"
	"sync"

	"geodatabr/helpers"
	"geodatabr/jsonHelpers"
	"geodatabr/modelos/lugares"

	"github.com/MisterKaiou/go-functional/result"
	linq "github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

const nomeManifesto = "manifest.json"

// Executar exporta a base para os formatos pedidos usando um pool de
// workers. Um formato que falha é registrado no log e no erro
// agregado, sem interromper os demais.
func Executar(b *lugares.Base, formatos []string, saida string, workers int) ([]Artefato, error) {
	registro := Registro()

	wg := sync.WaitGroup{}
	wg.Add(workers)

	formatosCh := make(chan Exportador)
	artefatosCh := make(chan []Artefato, len(formatos))
	errosCh := make(chan error, len(formatos))

	for i := 0; i < workers; i++ {
		go func(expCh <-chan Exportador, artCh chan<- []Artefato, errCh chan<- error) {
			for exportador := range expCh {
				logger.Infof("Exportando para [%s]...", exportador.Nome())

				res := result.FromTupleOf(exportador.Exportar(b, saida))
				if res.IsError() {
					errCh <- errors.Wrapf(res.UnwrapError(), "formato %s", exportador.Nome())
					continue
				}

				artefatos := res.Unwrap()
				var total int64
				for _, artefato := range artefatos {
					total += artefato.Bytes
				}
				logger.Infof(
					"Exportação para [%s] concluída. [%d] arquivo(s), total [%s]",
					exportador.Nome(), len(artefatos), helpers.TamanhoLegivel(total))
				artCh <- artefatos
			}
			wg.Done()
		}(formatosCh, artefatosCh, errosCh)
	}

	for _, formato := range formatos {
		exportador, registrado := registro[formato]
		if registrado == false {
			errosCh <- errors.Errorf("formato %s não registrado", formato)
			continue
		}
		formatosCh <- exportador
	}
	close(formatosCh)
	wg.Wait()
	close(artefatosCh)
	close(errosCh)

	var artefatos []Artefato
	for lote := range artefatosCh {
		artefatos = append(artefatos, lote...)
	}
	sort.Slice(artefatos, func(i, j int) bool {
		if artefatos[i].Formato != artefatos[j].Formato {
			return artefatos[i].Formato < artefatos[j].Formato
		}
		return strings.Compare(artefatos[i].Arquivo, artefatos[j].Arquivo) < 0
	})

	final := linq.FromChannelT(errosCh).AggregateT(func(currErr error, prox error) error {
		return errors.Wrap(currErr, prox.Error())
	})

	if final == nil {
		return artefatos, nil
	}

	return artefatos, final.(error)
}

// EscreverManifesto grava manifest.json na raiz da saída, com tamanho
// e SHA-256 de cada artefato produzido.
func EscreverManifesto(saida string, artefatos []Artefato) error {
	conteudo, err := jsonHelpers.SerializarJsonIdentado(artefatos)
	if err != nil {
		return errors.Wrap(err, "falha em serializar o manifesto")
	}
	return salvarArquivo(saida, nomeManifesto, conteudo)
}
