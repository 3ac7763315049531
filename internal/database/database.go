package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Store is the persistence contract: self-contained JSON documents addressed
// by key. There are no cross-document transactions; every document is written
// whole.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ErrKeyNotFound is returned by Store.Get when no document exists for a key.
var ErrKeyNotFound = errors.New("document not found")

// Document keys follow the browser build's localStorage key layout. Only the
// key names line up; the stored JSON shapes are this package's own.
const (
	keyUsers       = "caltrak_users"
	keyCurrentUser = "caltrak_current_user"
)

func goalsKey(username string) string { return "caltrak_" + username + "_goals" }
func todayKey(username string) string { return "caltrak_" + username + "_today" }

func historyKey(username string) string { return "caltrak_" + username + "_history" }

func recentMealsKey(username string) string { return "caltrak_" + username + "_recent_meals" }

// DB wraps a Store with the per-user repositories. It is the sole writer of
// ledger and cache documents for a user.
type DB struct {
	store Store
	now   func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New wraps an already-open store.
func New(store Store) *DB {
	return &DB{
		store: store,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// Connect opens the document store named by databaseURL.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		store, err := NewPostgresStore(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		return New(store), nil
	case databaseURL == "memory":
		return New(NewMemoryStore()), nil
	default:
		store, err := NewSQLiteStore(databaseURL)
		if err != nil {
			return nil, err
		}
		return New(store), nil
	}
}

// Close closes the underlying store.
func (db *DB) Close() error {
	return db.store.Close()
}

// userLock returns the mutex serializing read-modify-write sequences for one
// user. Ledger totals are maintained incrementally, so add, remove, and
// rollover must not interleave.
func (db *DB) userLock(username string) *sync.Mutex {
	db.mu.Lock()
	defer db.mu.Unlock()
	lock, ok := db.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		db.locks[username] = lock
	}
	return lock
}

func (db *DB) getJSON(ctx context.Context, key string, v interface{}) error {
	data, err := db.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", key, err)
	}
	return nil
}

func (db *DB) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", key, err)
	}
	return db.store.Set(ctx, key, data)
}
