package consolidating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ipc-quotation-monitor/pkg/apiErrors"
)

// Erros da montagem da tabela consolidada e da série histórica
var (
	// Erros estruturais: a sessão continua, apenas a visão solicitada falha
	ErrStructural             = errors.New("estrutura inesperada nas tabelas de quantidade e ponderação")
	ErrReferenceMonthNotFound = errors.New("mês de referência não encontrado")
	ErrDuplicateEntry         = errors.New("item repetido para a mesma UF")

	// Erros de seleção
	ErrSeriesRegionRequired = errors.New("selecione ao menos uma região")
	ErrSeriesItemRequired   = errors.New("selecione ao menos um item ou grupo")
)

// PipelineError é um erro com contexto adicional para as visões calculadas
type PipelineError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PipelineError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// NewStructuralError cria um erro estrutural a partir da causa informada
func NewStructuralError(cause error, details string) *PipelineError {
	err := ErrStructural
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrStructural, cause)
	}
	return &PipelineError{
		Err:     err,
		Code:    apiErrors.ErrStructural,
		Details: details,
	}
}

// IsStructuralError verifica se o erro impede a montagem da visão por causa da estrutura das tabelas
func IsStructuralError(err error) bool {
	return errors.Is(err, ErrStructural)
}

// IsSelectionError verifica se o erro é de seleção incompleta de filtros
func IsSelectionError(err error) bool {
	return errors.Is(err, ErrSeriesRegionRequired) || errors.Is(err, ErrSeriesItemRequired)
}
