package exportadores

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

// ComprimirSaida comprime a pasta de saída em <saida>.zip, mantendo a
// pasta original. Devolve o caminho do arquivo gerado.
func ComprimirSaida(saida string) (string, error) {
	fonte := filepath.Clean(saida)
	alvo := fonte + ".zip"

	logger.Warnf("Comprimindo a pasta de saída [%s]", fonte)

	err := os.RemoveAll(alvo)
	if err != nil {
		return "", errors.Wrapf(err, "falha em substituir %s", alvo)
	}

	arquivo, err := os.Create(alvo)
	if err != nil {
		return "", errors.Wrapf(err, "falha em criar %s", alvo)
	}

	escritor := zip.NewWriter(arquivo)

	err = filepath.Walk(fonte, func(caminho string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		cabecalho, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}

		cabecalho.Method = zip.Deflate

		cabecalho.Name, err = filepath.Rel(filepath.Dir(fonte), caminho)
		if err != nil {
			return err
		}
		if info.IsDir() {
			cabecalho.Name += "/"
		}

		entrada, err := escritor.CreateHeader(cabecalho)
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		f, err := os.Open(caminho)
		if err != nil {
			return err
		}

		_, err = io.Copy(entrada, f)
		if err != nil {
			return err
		}

		err = f.Close()

		return err
	})

	if err != nil {
		return "", errors.Wrapf(err, "falha em comprimir %s", fonte)
	}

	err = escritor.Close()
	if err != nil {
		return "", errors.Wrap(err, "falha em finalizar o zip")
	}

	err = arquivo.Close()
	if err != nil {
		return "", errors.Wrap(err, "falha em fechar o zip")
	}

	return alvo, nil
}
