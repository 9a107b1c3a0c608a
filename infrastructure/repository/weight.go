package repository

import (
	"context"
	"database/sql"

	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/database"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

const weightsTable = "ponderacoes"

var weightColumns = []string{"linha", "capital", "cod_estrutura", "descricao", "ordem", "data", "valor"}

//go:generate mockgen -source=weight.go -destination=mocks/weight.go -package=mocks

// WeightRepository guarda a base de ponderações como lida da planilha; o tratamento
// é feito a cada leitura.
type WeightRepository interface {
	GetAll(ctx context.Context) (*domain.RawWeightTable, error)
	Replace(ctx context.Context, table *domain.RawWeightTable) error
}

type weightRepository struct {
	conn *database.Connection
}

func NewWeightRepository(conn *database.Connection) WeightRepository {
	return &weightRepository{
		conn: conn,
	}
}

func (r *weightRepository) GetAll(ctx context.Context) (*domain.RawWeightTable, error) {
	query, args, err := r.conn.Builder().
		Select(weightColumns...).
		From(weightsTable).
		OrderBy("linha ASC", "ordem ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cells := make([]cellRow, 0)
	for rows.Next() {
		var c cellRow
		// capital e código de estrutura ocupam as posições de UF e código
		if err := rows.Scan(&c.line, &c.uf, &c.code, &c.description, &c.order, &c.month, &c.value); err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	months, lines := assembleCells(cells)

	table := &domain.RawWeightTable{Months: months, Records: make([]domain.RawWeightRecord, 0, len(lines))}
	for _, line := range lines {
		table.Records = append(table.Records, domain.RawWeightRecord{
			Capital:        line.first.uf,
			StructuralCode: line.first.code,
			Description:    line.first.description,
			Values:         line.values(len(months)),
		})
	}
	return table, nil
}

func (r *weightRepository) Replace(ctx context.Context, table *domain.RawWeightTable) error {
	builder := r.conn.Builder()

	values := make([][]interface{}, 0)
	if table != nil {
		for i, record := range table.Records {
			if len(table.Months) == 0 {
				values = append(values, []interface{}{i, record.Capital, record.StructuralCode, record.Description, noMonthOrder, "", ""})
				continue
			}
			for j, month := range table.Months {
				value := ""
				if j < len(record.Values) {
					value = record.Values[j]
				}
				values = append(values, []interface{}{i, record.Capital, record.StructuralCode, record.Description, j, month, value})
			}
		}
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx, builder, weightsTable); err != nil {
			return err
		}
		return insertChunked(ctx, tx, builder, weightsTable, weightColumns, values)
	})
}
