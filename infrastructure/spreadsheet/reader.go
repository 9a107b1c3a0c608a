// Package spreadsheet lê e escreve as planilhas xlsx de cotações, exceções e ponderações
package spreadsheet

import (
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/utils"
)

const (
	ReferenceSheet = "itens com excessões"

	referenceExceptionColumn   = "excessão"
	referenceServiceColumn     = "serviços?"
	referenceDescriptionColumn = "DESCRIÇÃO"
	referenceServiceValue      = "Serviço"

	weightSeriesColumn      = "Cód.Série - Nr.Índice"
	weightStructuralColumn  = "Cód.Estrutura"
	weightDescriptionColumn = "Descrição"

	quotationCodeColumn        = "Código"
	quotationDescriptionColumn = "Descrição"

	// linha (1-based) do primeiro registro de ponderação: título, cabeçalho e a
	// primeira linha de dados descartada vêm antes
	firstWeightLine = 4
)

var (
	ErrSheetNotFound  = errors.New("aba não encontrada na planilha")
	ErrColumnNotFound = errors.New("coluna não encontrada na planilha")
	ErrEmptySheet     = errors.New("aba sem cabeçalho")

	quarterSuffix = regexp.MustCompile(`\s*\(Q.*\)`)
	leadingDots   = regexp.MustCompile(`^\.*`)
)

// Options são os parâmetros de leitura da planilha de cotações
type Options struct {
	QuotationSheets   []string
	QuotationSkipRows int
	QuotationMinYear  int
	Now               func() time.Time
}

type Reader struct {
	opts Options
}

func NewReader(opts Options) *Reader {
	if len(opts.QuotationSheets) == 0 {
		opts.QuotationSheets = []string{"SP", "RS", "RJ", "PE", "MG", "DF", "BA"}
	}
	if opts.QuotationSkipRows < 0 {
		opts.QuotationSkipRows = 0
	}
	if opts.QuotationMinYear == 0 {
		opts.QuotationMinYear = 2024
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Reader{opts: opts}
}

// ReadQuotations lê uma aba por UF e monta a tabela larga de cotações. Ficam apenas as
// colunas de mês a partir do ano mínimo e até o mês corrente, sem colunas totalmente vazias.
func (r *Reader) ReadQuotations(src io.Reader) (*domain.WideTable, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir planilha de cotações")
	}
	defer f.Close()

	now := r.opts.Now()
	months := make([]string, 0)
	monthPos := make(map[string]int)

	type sheetRow struct {
		uf, code, description string
		values                map[string]string
	}
	rows := make([]sheetRow, 0)

	for _, sheet := range r.opts.QuotationSheets {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			return nil, errors.Wrapf(ErrSheetNotFound, "%s", sheet)
		}

		headers, data, err := readTable(f, sheet, r.opts.QuotationSkipRows)
		if err != nil {
			return nil, err
		}

		for i := range headers {
			headers[i] = quarterSuffix.ReplaceAllString(headers[i], "")
		}

		codeIdx := findColumn(headers, quotationCodeColumn, 0)
		descIdx := findColumn(headers, quotationDescriptionColumn, 1)

		monthCols := make(map[int]string)
		for i, h := range headers {
			label, ok := domain.ExtractMonth(h)
			if !ok {
				continue
			}
			date := domain.ParseMonth(label)
			if date == nil || !utils.IsMonthWithin(*date, r.opts.QuotationMinYear, now) {
				continue
			}
			if _, seen := monthPos[label]; !seen {
				monthPos[label] = len(months)
				months = append(months, label)
			}
			monthCols[i] = label
		}

		for _, cells := range data {
			code := cellAt(cells, codeIdx)
			description := cellAt(cells, descIdx)
			if code == "" && description == "" {
				continue
			}

			row := sheetRow{uf: sheet, code: code, description: description, values: make(map[string]string)}
			for i, label := range monthCols {
				if _, set := row.values[label]; !set {
					row.values[label] = cellAt(cells, i)
				}
			}
			rows = append(rows, row)
		}
	}

	// colunas de mês sem nenhum valor são descartadas
	kept := make([]string, 0, len(months))
	for _, m := range months {
		for _, row := range rows {
			if row.values[m] != "" {
				kept = append(kept, m)
				break
			}
		}
	}

	table := &domain.WideTable{Months: kept, Records: make([]domain.QuotationRecord, 0, len(rows))}
	for _, row := range rows {
		values := make([]string, len(kept))
		for i, m := range kept {
			values[i] = row.values[m]
		}
		table.Records = append(table.Records, domain.QuotationRecord{
			UF:          row.uf,
			Code:        row.code,
			Description: row.description,
			Values:      values,
		})
	}

	return table, nil
}

// ReadReferenceLists lê a aba de itens com exceções. Exceções são as linhas com a
// coluna de exceção preenchida; serviços são as marcadas como serviço e sem exceção.
func (r *Reader) ReadReferenceLists(src io.Reader) (*domain.ReferenceLists, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir planilha de exceções")
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(ReferenceSheet); idx < 0 {
		return nil, errors.Wrapf(ErrSheetNotFound, "%s", ReferenceSheet)
	}

	headers, data, err := readTable(f, ReferenceSheet, 0)
	if err != nil {
		return nil, err
	}

	exceptionIdx := findColumn(headers, referenceExceptionColumn, -1)
	serviceIdx := findColumn(headers, referenceServiceColumn, -1)
	descIdx := findColumn(headers, referenceDescriptionColumn, -1)
	for name, idx := range map[string]int{
		referenceExceptionColumn:   exceptionIdx,
		referenceServiceColumn:     serviceIdx,
		referenceDescriptionColumn: descIdx,
	} {
		if idx < 0 {
			return nil, errors.Wrapf(ErrColumnNotFound, "%s", name)
		}
	}

	lists := &domain.ReferenceLists{Exceptions: []string{}, Services: []string{}}
	for _, cells := range data {
		description := cellAt(cells, descIdx)
		if description == "" {
			continue
		}
		exception := cellAt(cells, exceptionIdx)
		switch {
		case exception != "":
			lists.Exceptions = append(lists.Exceptions, description)
		case cellAt(cells, serviceIdx) == referenceServiceValue:
			lists.Services = append(lists.Services, description)
		}
	}

	return lists, nil
}

// ReadWeights lê todas as abas da planilha de ponderações (uma por capital)
func (r *Reader) ReadWeights(src io.Reader) (*domain.RawWeightTable, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir planilha de ponderações")
	}
	defer f.Close()

	months := make([]string, 0)
	monthPos := make(map[string]int)
	type sheetRecord struct {
		record domain.RawWeightRecord
		values map[string]string
	}
	records := make([]sheetRecord, 0)

	for _, sheet := range f.GetSheetList() {
		headers, data, err := readTable(f, sheet, 1)
		if err != nil {
			return nil, err
		}

		seriesIdx := findColumn(headers, weightSeriesColumn, -1)
		if seriesIdx < 0 {
			return nil, errors.Wrapf(ErrColumnNotFound, "%s na aba %s", weightSeriesColumn, sheet)
		}

		// Após descartar a coluna de série, todos os cabeçalhos exceto o primeiro
		// ficam só com a parte antes de " - "
		first := true
		for i := range headers {
			if i == seriesIdx {
				continue
			}
			if !first {
				headers[i], _, _ = strings.Cut(headers[i], domain.CompositeKeySeparator)
			}
			first = false
		}

		codeIdx := findColumn(headers, weightStructuralColumn, -1)
		descIdx := findColumn(headers, weightDescriptionColumn, -1)
		if codeIdx < 0 || descIdx < 0 {
			return nil, errors.Wrapf(ErrColumnNotFound, "%s/%s na aba %s", weightStructuralColumn, weightDescriptionColumn, sheet)
		}

		monthCols := make(map[int]string)
		for i, h := range headers {
			if i == seriesIdx {
				continue
			}
			label, ok := domain.ExtractMonth(h)
			if !ok {
				continue
			}
			if _, seen := monthPos[label]; !seen {
				monthPos[label] = len(months)
				months = append(months, label)
			}
			monthCols[i] = label
		}

		// a primeira linha de dados é descartada
		if len(data) > 0 {
			data = data[1:]
		}

		for lineIdx, cells := range data {
			code := cellAt(cells, codeIdx)
			if code == "" {
				continue
			}

			sr := sheetRecord{
				record: domain.RawWeightRecord{
					Capital:        sheet,
					StructuralCode: code,
					Description:    leadingDots.ReplaceAllString(cellAt(cells, descIdx), ""),
				},
				values: make(map[string]string),
			}
			for i, label := range monthCols {
				sr.values[label] = localeValue(f, sheet, i, lineIdx+firstWeightLine, cellAt(cells, i))
			}
			records = append(records, sr)
		}
	}

	table := &domain.RawWeightTable{Months: months, Records: make([]domain.RawWeightRecord, 0, len(records))}
	for _, sr := range records {
		sr.record.Values = make([]string, len(months))
		for i, m := range months {
			sr.record.Values[i] = sr.values[m]
		}
		table.Records = append(table.Records, sr.record)
	}

	return table, nil
}

// readTable devolve o cabeçalho (valores formatados) e as linhas de dados (valores
// brutos) da aba, ignorando as primeiras skip linhas.
func readTable(f *excelize.File, sheet string, skip int) ([]string, [][]string, error) {
	formatted, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao ler aba %s", sheet)
	}
	if len(formatted) <= skip {
		return nil, nil, errors.Wrapf(ErrEmptySheet, "%s", sheet)
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "erro ao ler aba %s", sheet)
	}

	headers := make([]string, len(formatted[skip]))
	for i, h := range formatted[skip] {
		headers[i] = strings.TrimSpace(h)
	}

	data := make([][]string, 0)
	if len(raw) > skip+1 {
		for _, cells := range raw[skip+1:] {
			row := make([]string, len(cells))
			for i, c := range cells {
				row[i] = strings.TrimSpace(c)
			}
			data = append(data, row)
		}
	}
	return headers, data, nil
}

// localeValue devolve o valor no formato brasileiro. Células numéricas do Excel vêm
// com ponto decimal e são convertidas; células de texto são mantidas.
func localeValue(f *excelize.File, sheet string, col, row int, value string) string {
	if value == "" {
		return value
	}

	axis, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return value
	}
	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return value
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return value
	}
	if utils.ParseNumber(value) == nil {
		return value
	}
	return strings.ReplaceAll(value, ".", ",")
}

func findColumn(headers []string, name string, fallback int) int {
	for i, h := range headers {
		if strings.EqualFold(h, name) {
			return i
		}
	}
	return fallback
}

func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
