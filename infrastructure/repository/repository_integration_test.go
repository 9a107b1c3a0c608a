package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/database"
	"github.com/vfg2006/ipc-quotation-monitor/infrastructure/repository"
	"github.com/vfg2006/ipc-quotation-monitor/internal/domain"
)

func setupTestDB(t *testing.T) *database.Connection {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// :memory: é por conexão
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	conn := database.NewWithDB(db, database.DriverSQLite)
	require.NoError(t, database.Migrate(context.Background(), conn))

	return conn
}

func TestQuotationRepository_ReplaceAndGetAll(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuotationRepository(setupTestDB(t))

	empty, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	table := &domain.WideTable{
		Months: []string{"01/2024", "02/2024"},
		Records: []domain.QuotationRecord{
			{UF: "SP", Code: "1101001", Description: "Arroz", Values: []string{"20", "abc"}},
			{UF: "RJ", Code: "1101001", Description: "Arroz", Values: []string{"80"}},
		},
	}
	require.NoError(t, repo.Replace(ctx, table))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)

	assert.Equal(t, table.Months, got.Months)
	require.Len(t, got.Records, 2)
	assert.Equal(t, []string{"20", "abc"}, got.Records[0].Values)
	assert.Equal(t, []string{"80", ""}, got.Records[1].Values)

	// nova substituição apaga a anterior
	require.NoError(t, repo.Replace(ctx, &domain.WideTable{
		Months:  []string{"03/2024"},
		Records: []domain.QuotationRecord{{UF: "MG", Code: "1", Description: "A", Values: []string{"1"}}},
	}))

	got, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"03/2024"}, got.Months)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "MG", got.Records[0].UF)
}

func TestQuotationRepository_LargeTable(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewQuotationRepository(setupTestDB(t))

	table := &domain.WideTable{Months: []string{"01/2024", "02/2024", "03/2024"}}
	for i := 0; i < 250; i++ {
		table.Records = append(table.Records, domain.QuotationRecord{
			UF: "SP", Code: "c", Description: "d", Values: []string{"1", "2", "3"},
		})
	}

	require.NoError(t, repo.Replace(ctx, table))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Records, 250)
}

func TestWeightRepository_ReplaceAndGetAll(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewWeightRepository(setupTestDB(t))

	table := &domain.RawWeightTable{
		Months: []string{"01/2024"},
		Records: []domain.RawWeightRecord{
			{Capital: "São Paulo", StructuralCode: "110101", Description: "Arroz", Values: []string{"1,25"}},
		},
	}
	require.NoError(t, repo.Replace(ctx, table))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestReferenceListRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewReferenceListRepository(setupTestDB(t))

	require.NoError(t, repo.ReplaceExceptions(ctx, []string{"Arroz", "Feijão"}))
	require.NoError(t, repo.ReplaceServices(ctx, []string{"Corte de cabelo"}))

	exceptions, err := repo.GetExceptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Arroz", "Feijão"}, exceptions)

	services, err := repo.GetServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Corte de cabelo"}, services)

	require.NoError(t, repo.ReplaceExceptions(ctx, nil))
	exceptions, err = repo.GetExceptions(ctx)
	require.NoError(t, err)
	assert.Empty(t, exceptions)
}

func TestImportLogRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewImportLogRepository(setupTestDB(t))

	exists, err := repo.Exists(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, exists)

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, &domain.ImportRecord{
		ID: "id1", Kind: domain.ImportKindQuotations, FileName: "cotacoes.xlsx", Hash: "abc",
		Rows: 10, NewMonths: []string{"02/2024", "03/2024"}, CreatedAt: base,
	}))
	require.NoError(t, repo.Save(ctx, &domain.ImportRecord{
		ID: "id2", Kind: domain.ImportKindWeights, FileName: "ponderacoes.xlsx", Hash: "def",
		Rows: 5, CreatedAt: base.Add(time.Hour),
	}))

	exists, err = repo.Exists(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, exists)

	records, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "id2", records[0].ID)
	assert.Equal(t, domain.ImportKindQuotations, records[1].Kind)
	assert.Equal(t, []string{"02/2024", "03/2024"}, records[1].NewMonths)
	assert.Nil(t, records[0].NewMonths)
}
