// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tts

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const cacheDBFile = "audio-cache.db"

// Cache stores synthesized audio in a SQLite database keyed by language and
// text, so repeated synthesis of the same passage is served locally. A nil
// *Cache is valid and disables caching.
type Cache struct {
	db *sql.DB
}

// OpenCache opens or creates the audio cache database under dir.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, cacheDBFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS audio_cache (
		key        TEXT PRIMARY KEY,
		engine     TEXT NOT NULL,
		lang       TEXT NOT NULL,
		audio      BLOB NOT NULL,
		created_at TIMESTAMP NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

func cacheKey(text, lang string) string {
	sum := sha256.Sum256([]byte(lang + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached audio and the engine that produced it.
func (c *Cache) Get(text, lang string) (audio []byte, engine string, ok bool) {
	if c == nil {
		return nil, "", false
	}
	row := c.db.QueryRow(`SELECT engine, audio FROM audio_cache WHERE key = ?`, cacheKey(text, lang))
	if err := row.Scan(&engine, &audio); err != nil {
		return nil, "", false
	}
	return audio, engine, true
}

// Put stores audio for the text/language pair. Failures are swallowed; the
// cache is best-effort and never fails a synthesis that already succeeded.
func (c *Cache) Put(text, lang, engine string, audio []byte) {
	if c == nil || len(audio) == 0 {
		return
	}
	_, _ = c.db.Exec(
		`INSERT OR REPLACE INTO audio_cache (key, engine, lang, audio, created_at) VALUES (?, ?, ?, ?, ?)`,
		cacheKey(text, lang), engine, lang, audio, time.Now().UTC(),
	)
}
