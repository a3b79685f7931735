package modelos

import "github.com/sirupsen/logrus"

type Parametros struct {
	Formatos    []string     `arg:"positional, required" help:"Os formatos para os quais a base será exportada, pelo menos um deve ser especificado ou 'all' para todos. Ex: json csv sqlite"`
	Entrada     string       `arg:"-e, --entrada" placeholder:"CAMINHO" help:"O arquivo JSON da fonte canônica da base. Obrigatório, a menos que --amostra seja usado"`
	Amostra     bool         `arg:"--amostra" help:"Usa a base de exemplo embutida no binário em vez de --entrada. Útil para experimentar os formatos"`
	Saida       string       `arg:"-s, --saida" default:"./dist/" placeholder:"CAMINHO" help:"A pasta raiz onde os artefatos serão gravados. Pode ser caminho absoluto ou relativo ao diretório de onde esse programa é executado"`
	Workers     int          `arg:"-w, --workers" placeholder:"N" help:"A quantidade de exportações simultâneas"`
	Verificar   bool         `arg:"--verificar" help:"Confere as contagens da base contra as contagens oficiais da carga de referência antes de exportar"`
	Zip         bool         `arg:"-z, --zip" help:"Se presente, o programa efetuará a compressão da pasta de saída ao final"`
	Verbosidade logrus.Level `arg:"-v, --verbosidade" placeholder:"NÍVEL" help:"Quantos logs devem ser exibidos. Em ordem de criticidade (0 à 6): panic > fatal > error > warn > info > debug > trace"`
}
