package models

import (
	"database/sql"
	"errors"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/fenlinghub/trainerdex/utils"
)

var db *sql.DB

// ErrNoCachedCatalog is returned when the cache table holds no snapshot yet.
var ErrNoCachedCatalog = errors.New("no cached catalog")

// Initialize opens the sqlite database and creates the schema.
func Initialize(dataDirectory string) error {
	start := time.Now()
	defer utils.LogDuration("Initialize", start)

	databasePath := filepath.Join(dataDirectory, "trainerdex.db")

	var err error
	db, err = sql.Open("sqlite3", "file:"+databasePath)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS catalog_cache (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload BLOB NOT NULL,
		fetched_at INTEGER NOT NULL
	)`)
	return err
}

// Close closes the database connection.
func Close() error {
	start := time.Now()
	defer utils.LogDuration("Close", start)

	if db != nil {
		return db.Close()
	}
	return nil
}

// SaveCatalogCache stores the raw catalog document so the next start can
// serve something when the source file is unavailable. Mirrors the browser
// page's local-storage cache of the fetched JSON.
func SaveCatalogCache(payload []byte) error {
	start := time.Now()
	defer utils.LogDuration("SaveCatalogCache", start)

	query := `
	INSERT INTO catalog_cache (id, payload, fetched_at) VALUES (1, ?, ?)
	ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`

	_, err := db.Exec(query, payload, time.Now().Unix())
	return err
}

// LoadCatalogCache returns the last cached raw catalog and when it was
// fetched.
func LoadCatalogCache() ([]byte, time.Time, error) {
	start := time.Now()
	defer utils.LogDuration("LoadCatalogCache", start)

	var payload []byte
	var fetchedAt int64
	err := db.QueryRow(`SELECT payload, fetched_at FROM catalog_cache WHERE id = 1`).Scan(&payload, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, ErrNoCachedCatalog
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	return payload, time.Unix(fetchedAt, 0), nil
}
