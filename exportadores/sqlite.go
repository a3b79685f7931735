package exportadores

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"geodatabr/modelos/lugares"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// ExportadorSqlite materializa a visão tabular em um arquivo SQLite,
// com as mesmas chaves estrangeiras do dump SQL. As linhas ficam na
// ordem do id (chave primária INTEGER é o rowid do SQLite).
type ExportadorSqlite struct{}

func (ExportadorSqlite) Nome() string { return "sqlite" }

const arquivoSqlite = "dataset.sqlite3"

func (e ExportadorSqlite) Exportar(b *lugares.Base, saida string) ([]Artefato, error) {
	caminho := filepath.Join(saida, arquivoSqlite)
	if err := os.RemoveAll(caminho); err != nil {
		return nil, errors.Wrapf(err, "falha em substituir %s", caminho)
	}
	if err := os.MkdirAll(saida, 0750); err != nil {
		return nil, errors.Wrapf(err, "falha em criar a pasta %s", saida)
	}

	db, err := sql.Open("sqlite", caminho)
	if err != nil {
		return nil, errors.Wrap(err, "falha em abrir o SQLite")
	}
	defer db.Close()

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, errors.Wrap(err, "falha em habilitar as chaves estrangeiras")
	}

	tabelas := b.Tabelas()
	for _, tabela := range tabelas {
		if _, err := db.Exec(ddlSqlite(tabela)); err != nil {
			return nil, errors.Wrapf(err, "falha em criar a tabela %s", tabela.Nome)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, errors.Wrap(err, "falha em abrir a transação")
	}
	for _, tabela := range tabelas {
		comando, err := tx.Prepare(insertSqlite(tabela))
		if err != nil {
			_ = tx.Rollback()
			return nil, errors.Wrapf(err, "falha em preparar o insert de %s", tabela.Nome)
		}
		for _, linha := range tabela.Linhas {
			if _, err := comando.Exec(linha...); err != nil {
				_ = comando.Close()
				_ = tx.Rollback()
				return nil, errors.Wrapf(err, "falha em inserir em %s", tabela.Nome)
			}
		}
		_ = comando.Close()
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "falha em confirmar a transação")
	}
	if err := db.Close(); err != nil {
		return nil, errors.Wrap(err, "falha em fechar o SQLite")
	}

	artefato, err := artefatoDe(e.Nome(), saida, arquivoSqlite)
	if err != nil {
		return nil, err
	}
	return []Artefato{artefato}, nil
}

func ddlSqlite(tabela lugares.Tabela) string {
	if pai, temPai := tabelaPai[tabela.Nome]; temPai {
		return fmt.Sprintf(
			"CREATE TABLE %s (id INTEGER NOT NULL PRIMARY KEY, id_%s INTEGER NOT NULL REFERENCES %s (id), nome TEXT NOT NULL)",
			tabela.Nome, pai, pai)
	}
	return fmt.Sprintf("CREATE TABLE %s (id INTEGER NOT NULL PRIMARY KEY, nome TEXT NOT NULL)", tabela.Nome)
}

func insertSqlite(tabela lugares.Tabela) string {
	if len(tabela.Colunas) == 3 {
		return fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES (?, ?, ?)",
			tabela.Nome, tabela.Colunas[0], tabela.Colunas[1], tabela.Colunas[2])
	}
	return fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (?, ?)",
		tabela.Nome, tabela.Colunas[0], tabela.Colunas[1])
}

// ImportarSqlite remonta a base a partir de um arquivo gerado pelo
// exportador, na ordem do id.
func ImportarSqlite(caminho string) (*lugares.Base, error) {
	db, err := sql.Open("sqlite", caminho)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em abrir %s", caminho)
	}
	defer db.Close()

	var planas lugares.TabelasPlanas
	alvos := []struct {
		consulta string
		comPai   bool
		destino  *[]lugares.LinhaPlana
	}{
		{"SELECT id, nome FROM uf ORDER BY id", false, &planas.Ufs},
		{"SELECT id, id_uf, nome FROM mesorregiao ORDER BY id", true, &planas.Mesorregioes},
		{"SELECT id, id_mesorregiao, nome FROM microrregiao ORDER BY id", true, &planas.Microrregioes},
		{"SELECT id, id_microrregiao, nome FROM municipio ORDER BY id", true, &planas.Municipios},
		{"SELECT id, id_municipio, nome FROM distrito ORDER BY id", true, &planas.Distritos},
		{"SELECT id, id_distrito, nome FROM subdistrito ORDER BY id", true, &planas.Subdistritos},
	}

	for _, alvo := range alvos {
		linhas, err := consultarLinhas(db, alvo.consulta, alvo.comPai)
		if err != nil {
			return nil, err
		}
		*alvo.destino = linhas
	}

	return lugares.MontarDeTabelas(planas)
}

func consultarLinhas(db *sql.DB, consulta string, comPai bool) ([]lugares.LinhaPlana, error) {
	cursor, err := db.Query(consulta)
	if err != nil {
		return nil, errors.Wrapf(err, "falha em consultar: %s", consulta)
	}
	defer cursor.Close()

	var linhas []lugares.LinhaPlana
	for cursor.Next() {
		var linha lugares.LinhaPlana
		if comPai {
			err = cursor.Scan(&linha.Id, &linha.IdPai, &linha.Nome)
		} else {
			err = cursor.Scan(&linha.Id, &linha.Nome)
		}
		if err != nil {
			return nil, errors.Wrap(err, "falha em ler uma linha")
		}
		linhas = append(linhas, linha)
	}
	return linhas, cursor.Err()
}
