package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

const ConsolidatedSheet = "Tabela_Consolidada"

const (
	colKey = iota + 1
	colQuantity
	colWeight
	colPriority
	colShortfall
)

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// WriteConsolidated exporta a tabela consolidada com as quantidades coloridas pela
// criticidade. A coluna de ponderação fica oculta.
func (w *Writer) WriteConsolidated(view *domain.ConsolidatedView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ConsolidatedSheet); err != nil {
		return nil, errors.Wrap(err, "erro ao criar aba da tabela consolidada")
	}

	region := ""
	rows := []domain.ConsolidatedRow{}
	if view != nil {
		region = view.Region
		rows = view.Rows
	}

	headers := []string{"CodigoDescricao", region + "_qtd", region + "_pond", "Prioridade", "Falta p/ Cobertura Mínima"}
	for i, h := range headers {
		if err := setCell(f, i+1, 1, h); err != nil {
			return nil, err
		}
	}

	styles, err := newStyleSet(f)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		line := i + 2

		if err := setCell(f, colKey, line, row.CompositeKey); err != nil {
			return nil, err
		}
		if err := setCell(f, colQuantity, line, cellValue(row.Quantity)); err != nil {
			return nil, err
		}
		if err := setCell(f, colWeight, line, cellValue(row.Weight)); err != nil {
			return nil, err
		}
		if err := setCell(f, colPriority, line, string(row.Priority)); err != nil {
			return nil, err
		}

		var shortfall interface{} = domain.NoDataMarker
		if row.Shortfall != nil {
			shortfall = *row.Shortfall
		}
		if err := setCell(f, colShortfall, line, shortfall); err != nil {
			return nil, err
		}

		if style, ok := styles.forRow(row); ok {
			axis, _ := excelize.CoordinatesToCellName(colQuantity, line)
			if err := f.SetCellStyle(ConsolidatedSheet, axis, axis, style); err != nil {
				return nil, errors.Wrapf(err, "erro ao aplicar estilo na célula %s", axis)
			}
		}
	}

	weightCol, _ := excelize.ColumnNumberToName(colWeight)
	if err := f.SetColVisible(ConsolidatedSheet, weightCol, false); err != nil {
		return nil, errors.Wrap(err, "erro ao ocultar coluna de ponderação")
	}
	keyCol, _ := excelize.ColumnNumberToName(colKey)
	if err := f.SetColWidth(ConsolidatedSheet, keyCol, keyCol, 60); err != nil {
		return nil, errors.Wrap(err, "erro ao ajustar largura da coluna")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "erro ao gerar arquivo xlsx")
	}
	return buf.Bytes(), nil
}

type styleSet struct {
	byTier map[domain.Tier]int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	s := &styleSet{byTier: make(map[domain.Tier]int)}

	for _, tier := range []domain.Tier{
		domain.TierSuperCritical, domain.TierCritical, domain.TierAcceptable,
		domain.TierSufficient, domain.TierException, domain.TierService,
	} {
		color, _ := domain.ColorOf(tier)
		style := &excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		}
		if tier == domain.TierService {
			style.Font = &excelize.Font{Color: "#FFFFFF"}
		}

		id, err := f.NewStyle(style)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao criar estilo %s", tier)
		}
		s.byTier[tier] = id
	}
	return s, nil
}

// forRow escolhe o estilo da célula de quantidade: serviço, exceção ou faixa numérica
func (s *styleSet) forRow(row domain.ConsolidatedRow) (int, bool) {
	switch {
	case row.Service:
		return s.byTier[domain.TierService], true
	case row.Exception:
		return s.byTier[domain.TierException], true
	}

	tier, ok := domain.Classify(row.Quantity.Ptr())
	if !ok {
		return 0, false
	}
	return s.byTier[tier], true
}

func cellValue(c domain.PivotCell) interface{} {
	if !c.HasData {
		return domain.NoDataMarker
	}
	return c.Value
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(ConsolidatedSheet, axis, value); err != nil {
		return errors.Wrap(err, fmt.Sprintf("erro ao escrever célula %s", axis))
	}
	return nil
}
