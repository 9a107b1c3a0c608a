package database

import (
	"context"
	"fmt"

	"github.com/vfg2006/ipc-quotation-monitor/pkg/log"
)

// As tabelas de base ficam normalizadas: uma linha por célula (linha × mês) da planilha.
// "linha" preserva a ordem das linhas e "ordem" a ordem das colunas de mês.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS controle_cotacoes (
		linha     INTEGER NOT NULL,
		uf        TEXT    NOT NULL,
		codigo    TEXT    NOT NULL,
		descricao TEXT    NOT NULL,
		ordem     INTEGER NOT NULL,
		data      TEXT    NOT NULL,
		valor     TEXT    NOT NULL DEFAULT '',
		PRIMARY KEY (linha, ordem)
	)`,
	`CREATE TABLE IF NOT EXISTS excecoes (
		posicao   INTEGER NOT NULL PRIMARY KEY,
		descricao TEXT    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS servicos (
		posicao   INTEGER NOT NULL PRIMARY KEY,
		descricao TEXT    NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ponderacoes (
		linha         INTEGER NOT NULL,
		capital       TEXT    NOT NULL,
		cod_estrutura TEXT    NOT NULL,
		descricao     TEXT    NOT NULL,
		ordem         INTEGER NOT NULL,
		data          TEXT    NOT NULL,
		valor         TEXT    NOT NULL DEFAULT '',
		PRIMARY KEY (linha, ordem)
	)`,
	`CREATE TABLE IF NOT EXISTS import_log (
		id          TEXT      NOT NULL PRIMARY KEY,
		tipo        TEXT      NOT NULL,
		arquivo     TEXT      NOT NULL,
		hash        TEXT      NOT NULL,
		linhas      INTEGER   NOT NULL,
		novos_meses TEXT      NOT NULL DEFAULT '',
		criado_em   TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_import_log_hash ON import_log (hash)`,
}

// Migrate cria as tabelas quando ainda não existem
func Migrate(ctx context.Context, conn Queryer) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}

	log.ForContext(ctx).Debug("database: schema verificado")
	return nil
}
