//go:build integration

package pipeline

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresSplitCacheStore(t *testing.T) (*PostgresSplitCacheStore, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15",
		postgres.WithDatabase("pipeline_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err, "failed to open connection pool")
	require.NoError(t, db.PingContext(ctx))

	store, err := NewPostgresSplitCacheStore(db)
	require.NoError(t, err, "failed to create postgres split cache store")

	cleanup := func() {
		_ = db.Close()
		_ = container.Terminate(ctx)
	}
	return store, cleanup
}

func TestPostgresSplitCacheStore_E2E_PutThenGet(t *testing.T) {
	store, cleanup := setupPostgresSplitCacheStore(t)
	defer cleanup()
	ctx := context.Background()

	err := store.Put(ctx, "a,b,c", ",", []string{"a", "b", "c"})
	require.NoError(t, err)

	parts, found, err := store.Get(ctx, "a,b,c", ",")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b", "c"}, parts)
}

func TestPostgresSplitCacheStore_E2E_MissReturnsNotFound(t *testing.T) {
	store, cleanup := setupPostgresSplitCacheStore(t)
	defer cleanup()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "never-stored", ",")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPostgresSplitCacheStore_E2E_PutOverwritesExistingKey(t *testing.T) {
	store, cleanup := setupPostgresSplitCacheStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "x|y", "|", []string{"x", "y"}))
	require.NoError(t, store.Put(ctx, "x|y", "|", []string{"x", "y", "z"}))

	parts, found, err := store.Get(ctx, "x|y", "|")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"x", "y", "z"}, parts)
}

func TestPostgresSplitCacheStore_E2E_WarmStartsInMemoryCache(t *testing.T) {
	store, cleanup := setupPostgresSplitCacheStore(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "warm,start,value", ",", []string{"warm", "start", "value"}))

	tmpl, err := Parse("{split:,:..|join:-}", WithSplitCacheStore(store))
	require.NoError(t, err)
	out, err := tmpl.Format("warm,start,value")
	require.NoError(t, err)
	assert.Equal(t, "warm-start-value", out)
}
