package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// insertChunkSize mantém cada INSERT abaixo do limite de parâmetros do sqlite (999)
const insertChunkSize = 100

// insertChunked insere as linhas em lotes dentro da transação
func insertChunked(
	ctx context.Context,
	tx *sql.Tx,
	builder squirrel.StatementBuilderType,
	table string,
	columns []string,
	rows [][]interface{},
) error {
	for start := 0; start < len(rows); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(rows) {
			end = len(rows)
		}

		insert := builder.Insert(table).Columns(columns...)
		for _, row := range rows[start:end] {
			insert = insert.Values(row...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir em %s: %w", table, err)
		}
	}
	return nil
}

// deleteAll remove todas as linhas da tabela dentro da transação
func deleteAll(ctx context.Context, tx *sql.Tx, builder squirrel.StatementBuilderType, table string) error {
	query, args, err := builder.Delete(table).ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao limpar %s: %w", table, err)
	}
	return nil
}
