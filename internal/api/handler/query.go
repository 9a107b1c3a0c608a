package handler

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		return domain.ParseMonth(fl.Field().String()) != nil
	})
	_ = v.RegisterValidation("criticality", func(fl validator.FieldLevel) bool {
		return domain.Tier(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		return domain.Priority(fl.Field().String()).IsValid()
	})

	return v
}

// consolidatedQuery são os parâmetros aceitos pela tabela consolidada
type consolidatedQuery struct {
	Month         string   `validate:"omitempty,month"`
	Regions       []string `validate:"dive,len=2,alpha"`
	Items         []string `validate:"dive,required"`
	Groups        []string `validate:"dive,required"`
	Criticalities []string `validate:"dive,criticality"`
	Priorities    []string `validate:"dive,priority"`
}

func parseConsolidatedQuery(r *http.Request) (consolidatedQuery, error) {
	q := consolidatedQuery{
		Month:         strings.TrimSpace(r.URL.Query().Get("month")),
		Regions:       upper(queryList(r, "uf")),
		Items:         queryList(r, "item"),
		Groups:        queryList(r, "group"),
		Criticalities: queryList(r, "criticality"),
		Priorities:    queryList(r, "priority"),
	}
	return q, validate.Struct(q)
}

func (q consolidatedQuery) filters() domain.ConsolidatedFilters {
	filters := domain.ConsolidatedFilters{
		Regions: q.Regions,
		Items:   q.Items,
		Groups:  q.Groups,
	}
	for _, c := range q.Criticalities {
		filters.Criticalities = append(filters.Criticalities, domain.Tier(c))
	}
	for _, p := range q.Priorities {
		filters.Priorities = append(filters.Priorities, domain.Priority(p))
	}
	return filters
}

type seriesQuery struct {
	Regions []string `validate:"required,min=1,dive,len=2,alpha"`
	Items   []string `validate:"required_without=Groups,dive,required"`
	Groups  []string `validate:"required_without=Items,dive,required"`
}

func parseSeriesQuery(r *http.Request) (seriesQuery, error) {
	q := seriesQuery{
		Regions: upper(queryList(r, "uf")),
		Items:   queryList(r, "item"),
		Groups:  queryList(r, "group"),
	}
	return q, validate.Struct(q)
}

func (q seriesQuery) filters() domain.SeriesFilters {
	return domain.SeriesFilters{Regions: q.Regions, Groups: q.Groups, Items: q.Items}
}

// queryList aceita o parâmetro repetido (?uf=SP&uf=RJ) ou separado por vírgula (?uf=SP,RJ).
// A descrição dos itens pode conter vírgula, por isso item só aceita a forma repetida.
func queryList(r *http.Request, name string) []string {
	var values []string
	for _, raw := range r.URL.Query()[name] {
		parts := []string{raw}
		if name != "item" {
			parts = strings.Split(raw, ",")
		}
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}

func upper(values []string) []string {
	for i, v := range values {
		values[i] = strings.ToUpper(v)
	}
	return values
}

// validationDetails lista os campos recusados pelo validator
func validationDetails(err error) any {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		fields[e.Field()] = e.Tag()
	}
	return fields
}
