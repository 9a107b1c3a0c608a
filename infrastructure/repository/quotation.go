package repository

import (
	"context"
	"database/sql"
	"sort"

	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/database"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

const quotationsTable = "controle_cotacoes"

// noMonthOrder marca linhas gravadas sem nenhuma coluna de mês
const noMonthOrder = -1

var quotationColumns = []string{"linha", "uf", "codigo", "descricao", "ordem", "data", "valor"}

//go:generate mockgen -source=quotation.go -destination=mocks/quotation.go -package=mocks

type QuotationRepository interface {
	GetAll(ctx context.Context) (*domain.WideTable, error)
	Replace(ctx context.Context, table *domain.WideTable) error
}

type quotationRepository struct {
	conn *database.Connection
}

func NewQuotationRepository(conn *database.Connection) QuotationRepository {
	return &quotationRepository{
		conn: conn,
	}
}

// GetAll remonta a tabela larga a partir das células gravadas
func (r *quotationRepository) GetAll(ctx context.Context) (*domain.WideTable, error) {
	query, args, err := r.conn.Builder().
		Select(quotationColumns...).
		From(quotationsTable).
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
		if err := rows.Scan(&c.line, &c.uf, &c.code, &c.description, &c.order, &c.month, &c.value); err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	months, lines := assembleCells(cells)

	table := &domain.WideTable{Months: months, Records: make([]domain.QuotationRecord, 0, len(lines))}
	for _, line := range lines {
		table.Records = append(table.Records, domain.QuotationRecord{
			UF:          line.first.uf,
			Code:        line.first.code,
			Description: line.first.description,
			Values:      line.values(len(months)),
		})
	}
	return table, nil
}

// Replace substitui a tabela inteira em uma única transação
func (r *quotationRepository) Replace(ctx context.Context, table *domain.WideTable) error {
	builder := r.conn.Builder()

	values := make([][]interface{}, 0)
	if table != nil {
		for i, record := range table.Records {
			if len(table.Months) == 0 {
				values = append(values, []interface{}{i, record.UF, record.Code, record.Description, noMonthOrder, "", ""})
				continue
			}
			for j, month := range table.Months {
				values = append(values, []interface{}{i, record.UF, record.Code, record.Description, j, month, record.Value(j)})
			}
		}
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx, builder, quotationsTable); err != nil {
			return err
		}
		return insertChunked(ctx, tx, builder, quotationsTable, quotationColumns, values)
	})
}

// cellRow é uma célula gravada de uma planilha normalizada
type cellRow struct {
	line        int
	uf          string
	code        string
	description string
	order       int
	month       string
	value       string
}

type assembledLine struct {
	first        cellRow
	byPos        map[int]string
	indexByOrder map[int]int
}

func (l *assembledLine) values(size int) []string {
	out := make([]string, size)
	for order, v := range l.byPos {
		if idx, ok := l.indexByOrder[order]; ok && idx < size {
			out[idx] = v
		}
	}
	return out
}

// assembleCells agrupa as células por linha e devolve os meses na ordem das colunas
func assembleCells(cells []cellRow) ([]string, []*assembledLine) {
	monthByOrder := make(map[int]string)
	linesByID := make(map[int]*assembledLine)
	lineIDs := make([]int, 0)

	for _, c := range cells {
		line, ok := linesByID[c.line]
		if !ok {
			line = &assembledLine{first: c, byPos: make(map[int]string)}
			linesByID[c.line] = line
			lineIDs = append(lineIDs, c.line)
		}
		if c.order == noMonthOrder {
			continue
		}
		monthByOrder[c.order] = c.month
		line.byPos[c.order] = c.value
	}

	orders := make([]int, 0, len(monthByOrder))
	for o := range monthByOrder {
		orders = append(orders, o)
	}
	sort.Ints(orders)
	sort.Ints(lineIDs)

	months := make([]string, 0, len(orders))
	indexByOrder := make(map[int]int, len(orders))
	for i, o := range orders {
		months = append(months, monthByOrder[o])
		indexByOrder[o] = i
	}

	lines := make([]*assembledLine, 0, len(lineIDs))
	for _, id := range lineIDs {
		line := linesByID[id]
		line.indexByOrder = indexByOrder
		lines = append(lines, line)
	}
	return months, lines
}
