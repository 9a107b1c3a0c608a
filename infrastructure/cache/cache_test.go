package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Month string   `json:"month"`
	Rows  []string `json:"rows"`
}

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	var got payload
	assert.ErrorIs(t, m.Get(ctx, "status", &got), ErrMiss)

	require.NoError(t, m.Set(ctx, "status", payload{Month: "02/2024", Rows: []string{"SP"}}, time.Minute))
	require.NoError(t, m.Set(ctx, "sem-ttl", payload{Month: "01/2024"}, 0))

	require.NoError(t, m.Get(ctx, "status", &got))
	assert.Equal(t, payload{Month: "02/2024", Rows: []string{"SP"}}, got)

	now = now.Add(time.Minute)
	assert.ErrorIs(t, m.Get(ctx, "status", &got), ErrMiss)

	var noTTL payload
	require.NoError(t, m.Get(ctx, "sem-ttl", &noTTL))
	assert.Equal(t, "01/2024", noTTL.Month)
}

func TestMemory_Purge(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "a", 1, time.Second))
	require.NoError(t, m.Set(ctx, "b", 2, time.Hour))
	assert.Equal(t, 2, m.Len())

	now = now.Add(time.Minute)
	m.Purge()
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Close())
	assert.Equal(t, 0, m.Len())
}

func TestMemory_Flush(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for _, fingerprint := range []string{"aaaa", "bbbb", "cccc"} {
		for _, view := range []string{"status", "history", "filters"} {
			_, err := FindOrCompute(ctx, m, fingerprint+":"+view, time.Hour, func(ctx context.Context) (payload, error) {
				return payload{Month: view}, nil
			})
			require.NoError(t, err)
		}
		if fingerprint != "cccc" {
			require.NoError(t, m.Flush(ctx))
		}
	}
	assert.Equal(t, 3, m.Len())

	var c Cache = m
	_, ok := c.(Flusher)
	assert.True(t, ok)
}

func TestFindOrCompute(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	calls := 0
	fetch := func(ctx context.Context) (payload, error) {
		calls++
		return payload{Month: "02/2024"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := FindOrCompute(ctx, m, "fp:status", time.Minute, fetch)
		require.NoError(t, err)
		assert.Equal(t, "02/2024", got.Month)
	}
	assert.Equal(t, 1, calls)
}

func TestFindOrCompute_ErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	errFetch := errors.New("falha")

	calls := 0
	fetch := func(ctx context.Context) (payload, error) {
		calls++
		if calls == 1 {
			return payload{}, errFetch
		}
		return payload{Month: "03/2024"}, nil
	}

	_, err := FindOrCompute(ctx, m, "fp:series", time.Minute, fetch)
	assert.ErrorIs(t, err, errFetch)
	assert.Equal(t, 0, m.Len())

	got, err := FindOrCompute(ctx, m, "fp:series", time.Minute, fetch)
	require.NoError(t, err)
	assert.Equal(t, "03/2024", got.Month)
	assert.Equal(t, 2, calls)
}
