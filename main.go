package main

import (
	"os"

	"geodatabr/base"
	"geodatabr/exportadores"
	"geodatabr/modelos"
	"geodatabr/modelos/lugares"

	"github.com/alexflint/go-arg"
	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
)

func main() {
	args := modelos.Parametros{Workers: 4, Verbosidade: logger.WarnLevel}
	arg.MustParse(&args)
	logger.SetLevel(args.Verbosidade)
	logger.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"component", "category"},
	})
	_ = godotenv.Load(".env")

	formatos, err := exportadores.NormalizarFormatos(args.Formatos, exportadores.Registro())
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("Os formatos %v serão exportados", formatos)

	b := carregarBase(args)

	err = base.Validar(b)
	sairSeErro(err)

	if args.Verificar {
		err = base.ValidarContagens(b)
		sairSeErro(err)
		logger.Info("Contagens conferem com a carga oficial")
	}

	artefatos, errExportacao := exportadores.Executar(b, formatos, args.Saida, args.Workers)
	if errExportacao != nil {
		logger.Error(errExportacao)
	}

	err = exportadores.EscreverManifesto(args.Saida, artefatos)
	sairSeErro(err)

	if args.Zip {
		alvo, err := exportadores.ComprimirSaida(args.Saida)
		sairSeErro(err)
		logger.Infof("Saída comprimida em %s", alvo)
	}

	logger.Infof("Exportação para os formatos %v finalizada. [%d] artefato(s)", formatos, len(artefatos))
	if errExportacao != nil {
		os.Exit(1)
	}
}

func carregarBase(args modelos.Parametros) *lugares.Base {
	if args.Amostra {
		logger.Warn("Usando a base de exemplo embutida")
		b, err := base.CarregarAmostra()
		sairSeErro(err)
		return b
	}

	if args.Entrada == "" {
		logger.Fatal("Informe a fonte canônica com --entrada ou use --amostra")
	}
	b, err := base.Carregar(args.Entrada)
	sairSeErro(err)
	return b
}

func sairSeErro(err error) {
	if err != nil {
		panic(err)
	}
}
