package sink

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"fmt"
	"image"
	"image/png"
	"strconv"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver
)

// packBatchSize is the number of frames buffered before flushing to the
// database.
const packBatchSize = 64

// Metadata describes a texture pack.
type Metadata struct {
	Name        string
	Description string
	Version     string
	TextureSize int
}

// ToMap converts metadata to the key/value rows stored in the pack.
func (m Metadata) ToMap() map[string]string {
	return map[string]string{
		"name":         m.Name,
		"description":  m.Description,
		"version":      m.Version,
		"texture_size": strconv.Itoa(m.TextureSize),
	}
}

type packEntry struct {
	name  string
	frame int
	data  []byte
}

// PackWriter stores frames as gzip-compressed PNG blobs in a SQLite texture
// pack. It implements Sink.
type PackWriter struct {
	db    *sql.DB
	path  string
	batch []packEntry
	mu    sync.Mutex
}

// NewPackWriter creates the pack database, initializes the schema, and
// writes the metadata rows.
func NewPackWriter(path string, metadata Metadata) (*PackWriter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	if err := createPackSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if err := insertPackMetadata(db, metadata); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to insert metadata: %w", err)
	}

	return &PackWriter{
		db:    db,
		path:  path,
		batch: make([]packEntry, 0, packBatchSize),
	}, nil
}

func createPackSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS metadata (
			name TEXT NOT NULL,
			value TEXT
		);

		CREATE TABLE IF NOT EXISTS textures (
			name TEXT NOT NULL,
			frame INTEGER NOT NULL,
			data BLOB NOT NULL
		);

		CREATE UNIQUE INDEX IF NOT EXISTS texture_index ON textures (name, frame);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

func insertPackMetadata(db *sql.DB, meta Metadata) error {
	if _, err := db.Exec("DELETE FROM metadata"); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}

	stmt, err := db.Prepare("INSERT INTO metadata (name, value) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare metadata insert: %w", err)
	}
	defer stmt.Close()

	for key, value := range meta.ToMap() {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("failed to insert metadata %q: %w", key, err)
		}
	}
	return nil
}

// Store encodes the frame as PNG and adds it to the batch. A full batch is
// flushed automatically. Static frames are stored with frame index -1.
func (w *PackWriter) Store(name string, frame int, img *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode texture %s: %w", SlotName(name, frame), err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if frame < 0 {
		frame = StaticFrame
	}
	w.batch = append(w.batch, packEntry{name: name, frame: frame, data: buf.Bytes()})

	if len(w.batch) >= packBatchSize {
		return w.flushLocked()
	}
	return nil
}

// Flush writes any buffered frames to the database.
func (w *PackWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.flushLocked()
}

func (w *PackWriter) flushLocked() error {
	if len(w.batch) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO textures (name, frame, data) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range w.batch {
		compressed, err := gzipCompress(e.data)
		if err != nil {
			return fmt.Errorf("failed to compress texture %s: %w", SlotName(e.name, e.frame), err)
		}
		if _, err := stmt.Exec(e.name, e.frame, compressed); err != nil {
			return fmt.Errorf("failed to insert texture %s: %w", SlotName(e.name, e.frame), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	w.batch = w.batch[:0]
	return nil
}

// Close flushes any remaining frames and closes the database.
func (w *PackWriter) Close() error {
	if err := w.Flush(); err != nil {
		w.db.Close()
		return err
	}
	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func gzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)

	if _, err := gw.Write(data); err != nil {
		gw.Close()
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
