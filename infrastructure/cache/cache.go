// Package cache guarda as visões calculadas a partir de um snapshot das bases
package cache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/singleflight"

	"github.com/vfg2006/ipc-quotation-monitor/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMiss indica que a chave não está no cache (ou expirou)
var ErrMiss = errors.New("chave não encontrada no cache")

// Cache guarda valores serializados em JSON por chave
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Close() error
}

// Flusher é implementado pelos backends que precisam ser esvaziados quando o
// snapshot muda. O Redis não implementa: as chaves antigas expiram pelo TTL.
type Flusher interface {
	Flush(ctx context.Context) error
}

type FetchFunc[T any] func(ctx context.Context) (T, error)

var group singleflight.Group

// FindOrCompute devolve o valor em cache ou o calcula com fn e o guarda.
// Erros de fn nunca são guardados; falhas do próprio cache só são registradas.
func FindOrCompute[T any](ctx context.Context, c Cache, key string, ttl time.Duration, fn FetchFunc[T]) (T, error) {
	var cached T
	err := c.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrMiss) {
		log.ForContext(ctx).WithError(err).WithField("key", key).Warn("cache: erro ao ler chave")
	}

	value, err, _ := group.Do(key, func() (any, error) {
		result, err := fn(ctx)
		if err != nil {
			return result, err
		}

		if err := c.Set(ctx, key, result, ttl); err != nil {
			log.ForContext(ctx).WithError(err).WithField("key", key).Warn("cache: erro ao gravar chave")
		}
		return result, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return value.(T), nil
}
