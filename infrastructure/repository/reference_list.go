package repository

import (
	"context"
	"database/sql"

	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/database"
)

const (
	exceptionsTable = "excecoes"
	servicesTable   = "servicos"
)

//go:generate mockgen -source=reference_list.go -destination=mocks/reference_list.go -package=mocks

// ReferenceListRepository guarda as listas de itens de exceção e de serviços
type ReferenceListRepository interface {
	GetExceptions(ctx context.Context) ([]string, error)
	GetServices(ctx context.Context) ([]string, error)
	ReplaceExceptions(ctx context.Context, descriptions []string) error
	ReplaceServices(ctx context.Context, descriptions []string) error
}

type referenceListRepository struct {
	conn *database.Connection
}

func NewReferenceListRepository(conn *database.Connection) ReferenceListRepository {
	return &referenceListRepository{
		conn: conn,
	}
}

func (r *referenceListRepository) GetExceptions(ctx context.Context) ([]string, error) {
	return r.list(ctx, exceptionsTable)
}

func (r *referenceListRepository) GetServices(ctx context.Context) ([]string, error) {
	return r.list(ctx, servicesTable)
}

func (r *referenceListRepository) ReplaceExceptions(ctx context.Context, descriptions []string) error {
	return r.replace(ctx, exceptionsTable, descriptions)
}

func (r *referenceListRepository) ReplaceServices(ctx context.Context, descriptions []string) error {
	return r.replace(ctx, servicesTable, descriptions)
}

func (r *referenceListRepository) list(ctx context.Context, table string) ([]string, error) {
	query, args, err := r.conn.Builder().
		Select("descricao").
		From(table).
		OrderBy("posicao ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	descriptions := make([]string, 0)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		descriptions = append(descriptions, d)
	}

	return descriptions, rows.Err()
}

func (r *referenceListRepository) replace(ctx context.Context, table string, descriptions []string) error {
	builder := r.conn.Builder()

	values := make([][]interface{}, 0, len(descriptions))
	for i, d := range descriptions {
		values = append(values, []interface{}{i, d})
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx, builder, table); err != nil {
			return err
		}
		return insertChunked(ctx, tx, builder, table, []string{"posicao", "descricao"}, values)
	})
}
