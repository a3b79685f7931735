package exportadores

import (
	"os"

	"geodatabr/modelos/lugares"

	"github.com/MisterKaiou/go-functional/result"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

type ExportadorMsgpack struct{}

func (ExportadorMsgpack) Nome() string { return "msgpack" }

func (e ExportadorMsgpack) Exportar(b *lugares.Base, saida string) ([]Artefato, error) {
	empacotado := result.FromTupleOf(msgpack.Marshal(b))
	artefatos := result.Bind(empacotado, func(conteudo []byte) result.Of[[]Artefato] {
		return result.FromTupleOf(salvarEMedir(e.Nome(), saida, "dataset.msgpack", conteudo))
	})

	if artefatos.IsError() {
		return nil, errors.Wrap(artefatos.UnwrapError(), "falha em exportar o MessagePack")
	}
	return artefatos.Unwrap(), nil
}

func ImportarMsgpack(caminho string) (*lugares.Base, error) {
	bytesArq, err := os.ReadFile(caminho)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em ler %s", caminho)
	}
	var b lugares.Base
	if err := msgpack.Unmarshal(bytesArq, &b); err != nil {
		return nil, errors.Wrapf(err, "falha em desempacotar %s", caminho)
	}
	return &b, nil
}
