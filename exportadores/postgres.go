package exportadores

import (
	"database/sql"
	"os"

	"geodatabr/modelos/lugares"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

// ExportadorPostgres carrega a visão tabular em um banco PostgreSQL
// vivo via COPY. O destino vem de POSTGRES_DSN (.env ou ambiente); é
// um sink externo, então não entra no manifesto de artefatos.
type ExportadorPostgres struct{}

func (ExportadorPostgres) Nome() string { return "postgres" }

func (e ExportadorPostgres) Exportar(b *lugares.Base, _ string) ([]Artefato, error) {
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		return nil, errors.New("POSTGRES_DSN não definido; configure-o no ambiente ou no .env")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "falha em abrir a conexão")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "falha em alcançar o PostgreSQL")
	}

	tabelas := b.Tabelas()

	// Recria as tabelas na ordem inversa para respeitar as FKs.
	for i := len(tabelas) - 1; i >= 0; i-- {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + tabelas[i].Nome + " CASCADE"); err != nil {
			return nil, errors.Wrapf(err, "falha em descartar a tabela %s", tabelas[i].Nome)
		}
	}
	for _, tabela := range tabelas {
		if _, err := db.Exec(ddlTabela(tabela)); err != nil {
			return nil, errors.Wrapf(err, "falha em criar a tabela %s", tabela.Nome)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, errors.Wrap(err, "falha em abrir a transação")
	}
	for _, tabela := range tabelas {
		comando, err := tx.Prepare(pq.CopyIn(tabela.Nome, tabela.Colunas...))
		if err != nil {
			_ = tx.Rollback()
			return nil, errors.Wrapf(err, "falha em preparar o COPY de %s", tabela.Nome)
		}
		for _, linha := range tabela.Linhas {
			if _, err := comando.Exec(linha...); err != nil {
				_ = comando.Close()
				_ = tx.Rollback()
				return nil, errors.Wrapf(err, "falha em copiar para %s", tabela.Nome)
			}
		}
		if _, err := comando.Exec(); err != nil {
			_ = comando.Close()
			_ = tx.Rollback()
			return nil, errors.Wrapf(err, "falha em finalizar o COPY de %s", tabela.Nome)
		}
		if err := comando.Close(); err != nil {
			_ = tx.Rollback()
			return nil, errors.Wrapf(err, "falha em fechar o COPY de %s", tabela.Nome)
		}
		logger.Debugf("Tabela [%s] copiada: [%d] linha(s)", tabela.Nome, len(tabela.Linhas))
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "falha em confirmar a transação")
	}

	return nil, nil
}
