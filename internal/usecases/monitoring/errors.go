package monitoring

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ipc-quotation-monitor/pkg/apiErrors"
)

var (
	ErrNoData             = errors.New("nenhuma base de cotações carregada")
	ErrAlreadyImported    = errors.New("planilha já importada")
	ErrInvalidSpreadsheet = errors.New("planilha inválida")
	ErrInvalidImportKind  = errors.New("tipo de importação desconhecido")
	ErrEmptyFile          = errors.New("arquivo vazio")
)

// ImportError é um erro de importação com o código da API
type ImportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func newImportError(base error, cause error, details string) *ImportError {
	err := base
	if cause != nil {
		err = fmt.Errorf("%w: %w", base, cause)
	}

	code := apiErrors.ErrUpload
	if errors.Is(base, ErrAlreadyImported) {
		code = apiErrors.ErrAlreadyImported
	}

	return &ImportError{Err: err, Code: code, Details: details}
}

// IsImportError indica se o erro é de uma planilha recusada
func IsImportError(err error) bool {
	return errors.Is(err, ErrInvalidSpreadsheet) ||
		errors.Is(err, ErrAlreadyImported) ||
		errors.Is(err, ErrInvalidImportKind) ||
		errors.Is(err, ErrEmptyFile)
}
