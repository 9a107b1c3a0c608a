package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/vfg2006/ipc-quotation-monitor/internal/config"
	"github.com/vfg2006/ipc-quotation-monitor/pkg/log"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	Builder() squirrel.StatementBuilderType
}

type Connection struct {
	*sql.DB
	driver string
}

// NewConnection abre a conexão com o banco configurado, tentando novamente enquanto
// o ping falhar.
func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("driver de banco não suportado: %s", driver)
	}

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = time.Second
	}

	var db *sql.DB
	err := backoff.Retry(
		func() error {
			var err error
			db, err = sql.Open(driver, cfg.DSN)
			if err != nil {
				return backoff.Permanent(err)
			}

			if err = db.PingContext(ctx); err != nil {
				log.ForContext(ctx).WithError(err).Warn("database: falha no ping, tentando novamente")
				_ = db.Close()
				return err
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), uint64(attempts-1)),
			ctx,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao banco após %d tentativas: %w", attempts, err)
	}

	if driver == DriverSQLite {
		// sqlite não permite escrita concorrente
		db.SetMaxOpenConns(1)
	}

	return &Connection{DB: db, driver: driver}, nil
}

// NewWithDB envolve uma conexão já aberta (usado nos testes com sqlite em memória)
func NewWithDB(db *sql.DB, driver string) *Connection {
	return &Connection{DB: db, driver: driver}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Driver retorna o driver em uso
func (c *Connection) Driver() string {
	return c.driver
}

// Builder retorna o construtor de SQL com o placeholder do driver
func (c *Connection) Builder() squirrel.StatementBuilderType {
	if c.driver == DriverPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
