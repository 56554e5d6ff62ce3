package sink

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"fmt"
	"io"
	"strconv"
)

// PackEntry identifies one stored frame.
type PackEntry struct {
	Name  string
	Frame int
}

// PackReader reads frames back out of a texture pack.
type PackReader struct {
	db   *sql.DB
	path string
}

// OpenPack opens a texture pack for reading.
func OpenPack(path string) (*PackReader, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='textures'").Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}
	if count == 0 {
		db.Close()
		return nil, fmt.Errorf("database does not contain a textures table")
	}

	return &PackReader{db: db, path: path}, nil
}

// ReadTexture returns the uncompressed PNG data of one frame. Use
// StaticFrame for textures without animation frames.
func (r *PackReader) ReadTexture(name string, frame int) ([]byte, error) {
	if frame < 0 {
		frame = StaticFrame
	}

	var compressed []byte
	err := r.db.QueryRow(
		"SELECT data FROM textures WHERE name=? AND frame=?",
		name, frame,
	).Scan(&compressed)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("texture not found: %s", SlotName(name, frame))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query texture: %w", err)
	}

	uncompressed, err := gzipDecompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress texture: %w", err)
	}
	return uncompressed, nil
}

// List returns every stored frame, ordered by name and frame index.
func (r *PackReader) List() ([]PackEntry, error) {
	rows, err := r.db.Query("SELECT name, frame FROM textures ORDER BY name, frame")
	if err != nil {
		return nil, fmt.Errorf("failed to query textures: %w", err)
	}
	defer rows.Close()

	var entries []PackEntry
	for rows.Next() {
		var e PackEntry
		if err := rows.Scan(&e.Name, &e.Frame); err != nil {
			return nil, fmt.Errorf("failed to scan texture row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating textures: %w", err)
	}
	return entries, nil
}

// Metadata reads the pack metadata rows.
func (r *PackReader) Metadata() (Metadata, error) {
	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	metaMap := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return Metadata{}, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		metaMap[name] = value
	}
	if err := rows.Err(); err != nil {
		return Metadata{}, fmt.Errorf("error iterating metadata: %w", err)
	}

	meta := Metadata{
		Name:        metaMap["name"],
		Description: metaMap["description"],
		Version:     metaMap["version"],
	}
	if v, ok := metaMap["texture_size"]; ok {
		if i, err := strconv.Atoi(v); err == nil {
			meta.TextureSize = i
		}
	}
	return meta, nil
}

// Close closes the database connection.
func (r *PackReader) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func gzipDecompress(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	return io.ReadAll(gr)
}
