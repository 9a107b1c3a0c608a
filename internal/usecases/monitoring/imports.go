package monitoring

import (
	"bytes"
	"context"
	"fmt"

	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
	"github.com/vfg2006/ipc-quotation-monitor/internal/usecases/transforming"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/log"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/utils"
)

// Import lê a planilha do tipo informado, grava a base e troca o snapshot.
// Um arquivo com o mesmo sha256 de uma importação anterior é recusado.
func (s *Service) Import(ctx context.Context, kind domain.ImportKind, fileName string, data []byte) (*domain.ImportRecord, error) {
	if !kind.IsValid() {
		return nil, newImportError(ErrInvalidImportKind, nil, string(kind))
	}
	if len(data) == 0 {
		return nil, newImportError(ErrEmptyFile, nil, fileName)
	}

	s.importMu.Lock()
	defer s.importMu.Unlock()

	hash := utils.HashBytes(data)
	exists, err := s.repos.ImportLog.Exists(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar histórico de importações: %w", err)
	}
	if exists {
		return nil, newImportError(ErrAlreadyImported, nil, fileName)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}
	record := &domain.ImportRecord{
		ID:        id,
		Kind:      kind,
		FileName:  fileName,
		Hash:      hash,
		CreatedAt: s.now().UTC(),
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"import_id": id,
		"kind":      kind,
		"file":      fileName,
	})
	logger.Info("monitoring: importando planilha")

	var next *snapshot
	switch kind {
	case domain.ImportKindQuotations:
		next, err = s.importQuotations(ctx, data, record)
	case domain.ImportKindReferenceLists:
		next, err = s.importReferenceLists(ctx, data, record)
	case domain.ImportKindWeights:
		next, err = s.importWeights(ctx, data, record)
	}
	if err != nil {
		logger.WithError(err).Error("monitoring: erro ao importar planilha")
		return nil, err
	}

	if err := s.repos.ImportLog.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("erro ao registrar importação: %w", err)
	}
	s.swap(ctx, next)

	logger.WithFields(log.Fields{
		"rows":        record.Rows,
		"new_months":  record.NewMonths,
		"fingerprint": next.fingerprint,
	}).Info("monitoring: planilha importada")
	return record, nil
}

// importQuotations acrescenta apenas os meses novos à base de cotações
func (s *Service) importQuotations(ctx context.Context, data []byte, record *domain.ImportRecord) (*snapshot, error) {
	incoming, err := s.reader.ReadQuotations(bytes.NewReader(data))
	if err != nil {
		return nil, newImportError(ErrInvalidSpreadsheet, err, record.FileName)
	}

	current := s.current()
	merged, newMonths := transforming.MergeIncremental(current.tables.Quotations, incoming)
	record.Rows = len(incoming.Records)
	record.NewMonths = newMonths

	if len(newMonths) > 0 {
		if err := s.repos.Quotations.Replace(ctx, merged); err != nil {
			return nil, fmt.Errorf("erro ao gravar cotações: %w", err)
		}
	}

	return current.with(func(t *Tables) {
		t.Quotations = merged
	})
}

func (s *Service) importReferenceLists(ctx context.Context, data []byte, record *domain.ImportRecord) (*snapshot, error) {
	lists, err := s.reader.ReadReferenceLists(bytes.NewReader(data))
	if err != nil {
		return nil, newImportError(ErrInvalidSpreadsheet, err, record.FileName)
	}
	record.Rows = len(lists.Exceptions) + len(lists.Services)

	if err := s.repos.ReferenceLists.ReplaceExceptions(ctx, lists.Exceptions); err != nil {
		return nil, fmt.Errorf("erro ao gravar exceções: %w", err)
	}
	if err := s.repos.ReferenceLists.ReplaceServices(ctx, lists.Services); err != nil {
		return nil, fmt.Errorf("erro ao gravar serviços: %w", err)
	}

	return s.current().with(func(t *Tables) {
		t.Exceptions = lists.Exceptions
		t.Services = lists.Services
	})
}

func (s *Service) importWeights(ctx context.Context, data []byte, record *domain.ImportRecord) (*snapshot, error) {
	weights, err := s.reader.ReadWeights(bytes.NewReader(data))
	if err != nil {
		return nil, newImportError(ErrInvalidSpreadsheet, err, record.FileName)
	}
	record.Rows = len(weights.Records)

	if err := s.repos.Weights.Replace(ctx, weights); err != nil {
		return nil, fmt.Errorf("erro ao gravar ponderações: %w", err)
	}

	return s.current().with(func(t *Tables) {
		t.Weights = weights
	})
}

// ImportLog lista as importações mais recentes
func (s *Service) ImportLog(ctx context.Context, limit int) ([]*domain.ImportRecord, error) {
	records, err := s.repos.ImportLog.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*domain.ImportRecord{}
	}
	return records, nil
}
