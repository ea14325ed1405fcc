package inkwell

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite"
)

// BuildCache records a content fingerprint for every artifact the static
// builder writes, so unchanged pages are skipped on rebuild and artifacts
// whose source disappeared can be pruned from the output directory.
type BuildCache struct {
	db *sql.DB
}

// OpenBuildCache opens (or creates) the cache database at path, ensuring
// the parent directory exists and running schema setup.
func OpenBuildCache(path string) (*BuildCache, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL plus a busy timeout so a dev server rebuild and a manual build
	// can coexist; synchronous=NORMAL is safe with WAL and skips an fsync
	// per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(2)
	c := &BuildCache{db: db}
	if err := c.ensureSchema(); err != nil {
		return nil, err
	}
	return c, nil
}

// Close closes the underlying database connection.
func (c *BuildCache) Close() error {
	return c.db.Close()
}

func (c *BuildCache) ensureSchema() error {
	_, err := c.db.Exec(`
CREATE TABLE IF NOT EXISTS artifacts (
    path TEXT PRIMARY KEY,
    sum TEXT NOT NULL,
    built_at TEXT NOT NULL
);
`)
	return err
}

// Fingerprint returns the recorded checksum for an artifact path, or ""
// when the artifact has never been built.
func (c *BuildCache) Fingerprint(path string) (string, error) {
	var sum string
	err := c.db.QueryRow(`SELECT sum FROM artifacts WHERE path = ?`, path).Scan(&sum)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return sum, nil
}

// SetFingerprint upserts the checksum for an artifact path.
func (c *BuildCache) SetFingerprint(path, sum string) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO artifacts (path, sum, built_at) VALUES (?, ?, ?)`,
		path, sum, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Prune removes cache rows for artifacts absent from keep and returns
// their paths, sorted, so the builder can delete the stale output files.
func (c *BuildCache) Prune(keep map[string]bool) ([]string, error) {
	rows, err := c.db.Query(`SELECT path FROM artifacts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		if !keep[path] {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, path := range stale {
		if _, err := c.db.Exec(`DELETE FROM artifacts WHERE path = ?`, path); err != nil {
			return nil, err
		}
	}
	sort.Strings(stale)
	return stale, nil
}

// Checksum returns the hex SHA-256 of an artifact's content.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
