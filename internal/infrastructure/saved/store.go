// Package saved persists images the user saved, backed by SQLite.
package saved

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tesso57/imgsearch/internal/domain/gallery"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS saved_images (
    id          INTEGER PRIMARY KEY,
    tags        TEXT NOT NULL DEFAULT '',
    preview_url TEXT NOT NULL DEFAULT '',
    large_url   TEXT NOT NULL DEFAULT '',
    page_url    TEXT NOT NULL DEFAULT '',
    user_name   TEXT NOT NULL DEFAULT '',
    width       INTEGER NOT NULL DEFAULT 0,
    height      INTEGER NOT NULL DEFAULT 0,
    saved_at    INTEGER NOT NULL
)`

// Store is a SQLite-backed usecase.SavedRepository.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create saved images directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open saved images db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init saved images schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns saved images, newest first.
func (s *Store) List() ([]gallery.SavedImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT id, tags, preview_url, large_url, page_url, user_name, width, height, saved_at
        FROM saved_images ORDER BY saved_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []gallery.SavedImage
	for rows.Next() {
		var item gallery.SavedImage
		var savedAt int64
		if err := rows.Scan(&item.ID, &item.Tags, &item.PreviewURL, &item.LargeURL, &item.PageURL,
			&item.User, &item.Width, &item.Height, &savedAt); err != nil {
			return nil, err
		}
		item.SavedAt = time.Unix(0, savedAt).UTC()
		out = append(out, item)
	}
	return out, rows.Err()
}

// Contains reports whether id is saved.
func (s *Store) Contains(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM saved_images WHERE id = ?`, id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Save inserts or replaces img.
func (s *Store) Save(img gallery.SavedImage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO saved_images (id, tags, preview_url, large_url, page_url, user_name, width, height, saved_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            tags = excluded.tags,
            preview_url = excluded.preview_url,
            large_url = excluded.large_url,
            page_url = excluded.page_url,
            user_name = excluded.user_name,
            width = excluded.width,
            height = excluded.height,
            saved_at = excluded.saved_at`,
		img.ID, img.Tags, img.PreviewURL, img.LargeURL, img.PageURL, img.User, img.Width, img.Height,
		img.SavedAt.UnixNano())
	return err
}

// Delete removes id. Deleting a missing id is not an error.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM saved_images WHERE id = ?`, id)
	return err
}
