package exportadores

import (
	"fmt"
	"strings"

	"geodatabr/modelos/lugares"
)

// ExportadorSql gera o dump SQL portável: DDL das seis tabelas com
// chaves estrangeiras e um INSERT por linha.
type ExportadorSql struct{}

func (ExportadorSql) Nome() string { return "sql" }

// tabelaPai mapeia cada tabela filha para a tabela referenciada pela
// coluna id_<pai>.
var tabelaPai = map[string]string{
	"mesorregiao":  "uf",
	"microrregiao": "mesorregiao",
	"municipio":    "microrregiao",
	"distrito":     "municipio",
	"subdistrito":  "distrito",
}

func (e ExportadorSql) Exportar(b *lugares.Base, saida string) ([]Artefato, error) {
	var dump strings.Builder
	dump.WriteString("-- Divisão territorial brasileira\n")
	dump.WriteString("-- Gerado pelo geodatabr\n\n")

	tabelas := b.Tabelas()
	for _, tabela := range tabelas {
		dump.WriteString(ddlTabela(tabela))
		dump.WriteString("\n")
	}
	for _, tabela := range tabelas {
		for _, linha := range tabela.Linhas {
			dump.WriteString(insertLinha(tabela, linha))
		}
		dump.WriteString("\n")
	}

	return salvarEMedir(e.Nome(), saida, "dataset.sql", []byte(dump.String()))
}

func ddlTabela(tabela lugares.Tabela) string {
	var ddl strings.Builder
	fmt.Fprintf(&ddl, "CREATE TABLE %s (\n", tabela.Nome)
	fmt.Fprintf(&ddl, "  id bigint NOT NULL PRIMARY KEY,\n")
	if pai, temPai := tabelaPai[tabela.Nome]; temPai {
		fmt.Fprintf(&ddl, "  id_%s bigint NOT NULL REFERENCES %s (id),\n", pai, pai)
	}
	fmt.Fprintf(&ddl, "  nome varchar(64) NOT NULL\n);\n")
	return ddl.String()
}

func insertLinha(tabela lugares.Tabela, linha []any) string {
	valores := make([]string, 0, len(linha))
	for _, valor := range linha {
		switch v := valor.(type) {
		case string:
			valores = append(valores, "'"+strings.ReplaceAll(v, "'", "''")+"'")
		default:
			valores = append(valores, valorTexto(valor))
		}
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s);\n",
		tabela.Nome, strings.Join(tabela.Colunas, ", "), strings.Join(valores, ", "))
}
