package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/database"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

const importLogTable = "import_log"

//go:generate mockgen -source=import_log.go -destination=mocks/import_log.go -package=mocks

// ImportLogRepository registra as planilhas importadas
type ImportLogRepository interface {
	Exists(ctx context.Context, hash string) (bool, error)
	Save(ctx context.Context, record *domain.ImportRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.ImportRecord, error)
}

type importLogRepository struct {
	conn *database.Connection
}

func NewImportLogRepository(conn *database.Connection) ImportLogRepository {
	return &importLogRepository{
		conn: conn,
	}
}

// Exists indica se um arquivo com o mesmo hash já foi importado
func (r *importLogRepository) Exists(ctx context.Context, hash string) (bool, error) {
	query, args, err := r.conn.Builder().
		Select("COUNT(1)").
		From(importLogTable).
		Where(squirrel.Eq{"hash": hash}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *importLogRepository) Save(ctx context.Context, record *domain.ImportRecord) error {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := r.conn.Builder().
		Insert(importLogTable).
		Columns("id", "tipo", "arquivo", "hash", "linhas", "novos_meses", "criado_em").
		Values(record.ID, string(record.Kind), record.FileName, record.Hash, record.Rows, strings.Join(record.NewMonths, ","), createdAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

// ListRecent lista as importações mais recentes primeiro
func (r *importLogRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ImportRecord, error) {
	builder := r.conn.Builder().
		Select("id", "tipo", "arquivo", "hash", "linhas", "novos_meses", "criado_em").
		From(importLogTable).
		OrderBy("criado_em DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.ImportRecord, 0)
	for rows.Next() {
		record := &domain.ImportRecord{}
		var kind, newMonths string
		if err := rows.Scan(&record.ID, &kind, &record.FileName, &record.Hash, &record.Rows, &newMonths, &record.CreatedAt); err != nil {
			return nil, err
		}
		record.Kind = domain.ImportKind(kind)
		if newMonths != "" {
			record.NewMonths = strings.Split(newMonths, ",")
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
