package exportadores

import (
	"geodatabr/modelos/lugares"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ExportadorXlsx grava a pasta de trabalho XLSX com uma planilha por
// tabela, cabeçalho na primeira linha.
type ExportadorXlsx struct{}

func (ExportadorXlsx) Nome() string { return "xlsx" }

func (e ExportadorXlsx) Exportar(b *lugares.Base, saida string) ([]Artefato, error) {
	pasta := excelize.NewFile()
	defer pasta.Close()

	for i, tabela := range b.Tabelas() {
		if i == 0 {
			if err := pasta.SetSheetName("Sheet1", tabela.Nome); err != nil {
				return nil, errors.Wrapf(err, "falha em renomear a planilha %s", tabela.Nome)
			}
		} else {
			if _, err := pasta.NewSheet(tabela.Nome); err != nil {
				return nil, errors.Wrapf(err, "falha em criar a planilha %s", tabela.Nome)
			}
		}

		cabecalho := make([]any, 0, len(tabela.Colunas))
		for _, coluna := range tabela.Colunas {
			cabecalho = append(cabecalho, coluna)
		}
		if err := pasta.SetSheetRow(tabela.Nome, "A1", &cabecalho); err != nil {
			return nil, errors.Wrapf(err, "falha em escrever o cabeçalho de %s", tabela.Nome)
		}

		for j, linha := range tabela.Linhas {
			celula, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return nil, errors.Wrapf(err, "falha em endereçar a linha %d de %s", j+2, tabela.Nome)
			}
			valores := linha
			if err := pasta.SetSheetRow(tabela.Nome, celula, &valores); err != nil {
				return nil, errors.Wrapf(err, "falha em escrever uma linha de %s", tabela.Nome)
			}
		}
	}

	buffer, err := pasta.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "falha em gerar o XLSX")
	}

	return salvarEMedir(e.Nome(), saida, "dataset.xlsx", buffer.Bytes())
}
