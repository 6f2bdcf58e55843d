package pipeline

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"
)

const splitCacheTableName = "splitcache_entries"

// PostgresSplitCacheStore is a durable backing for the process-wide split
// cache (SPEC_FULL §4.13), implementing internal.SplitCacheStore. Entries
// are keyed by a SHA-256 hash of haystack+separator rather than the raw
// strings themselves, so arbitrarily long haystacks stay index-friendly —
// mirroring the teacher's own "hash long natural keys before using them as a
// primary key" habit (prompty.storage.postgres.go's content-hash dedup).
type PostgresSplitCacheStore struct {
	db *sql.DB
}

// NewPostgresSplitCacheStore wraps an already-configured connection pool and
// ensures the splitcache_entries table exists. The caller owns db's
// lifecycle (including closing it); this store never closes it.
func NewPostgresSplitCacheStore(db *sql.DB) (*PostgresSplitCacheStore, error) {
	if db == nil {
		return nil, fmt.Errorf("pipeline: postgres split cache: nil *sql.DB")
	}
	store := &PostgresSplitCacheStore{db: db}
	if err := store.migrate(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *PostgresSplitCacheStore) migrate(ctx context.Context) error {
	stmt := `CREATE TABLE IF NOT EXISTS ` + splitCacheTableName + ` (
		key_hash   TEXT PRIMARY KEY,
		haystack   TEXT NOT NULL,
		separator  TEXT NOT NULL,
		parts      JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("pipeline: postgres split cache: migrate: %w", err)
	}
	return nil
}

func splitCacheKeyHash(haystack, sep string) string {
	h := sha256.New()
	h.Write([]byte(sep))
	h.Write([]byte{0})
	h.Write([]byte(haystack))
	return hex.EncodeToString(h.Sum(nil))
}

// Get implements internal.SplitCacheStore.
func (s *PostgresSplitCacheStore) Get(ctx context.Context, haystack, sep string) ([]string, bool, error) {
	query := `SELECT parts FROM ` + splitCacheTableName + ` WHERE key_hash = $1`
	var raw []byte
	err := s.db.QueryRowContext(ctx, query, splitCacheKeyHash(haystack, sep)).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("pipeline: postgres split cache: get: %w", err)
	}
	var parts []string
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil, false, fmt.Errorf("pipeline: postgres split cache: decode: %w", err)
	}
	return parts, true, nil
}

// Put implements internal.SplitCacheStore.
func (s *PostgresSplitCacheStore) Put(ctx context.Context, haystack, sep string, parts []string) error {
	raw, err := json.Marshal(parts)
	if err != nil {
		return fmt.Errorf("pipeline: postgres split cache: encode: %w", err)
	}
	query := `INSERT INTO ` + splitCacheTableName + ` (key_hash, haystack, separator, parts) VALUES ($1, $2, $3, $4)
		ON CONFLICT (key_hash) DO UPDATE SET parts = EXCLUDED.parts`
	if _, err := s.db.ExecContext(ctx, query, splitCacheKeyHash(haystack, sep), haystack, sep, raw); err != nil {
		return fmt.Errorf("pipeline: postgres split cache: put: %w", err)
	}
	return nil
}
