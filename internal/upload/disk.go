package upload

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore writes uploads to a flat directory, served back under
// /uploads/. This is the default backend.
type DiskStore struct {
	dir      string
	maxBytes int64
}

func NewDiskStore(dir string, maxBytes int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, maxBytes: maxBytes}, nil
}

func (d *DiskStore) Dir() string {
	return d.dir
}

func (d *DiskStore) Save(ctx context.Context, filename, contentType, uploadedBy string, content io.Reader) (string, error) {
	buf, err := readCapped(content, d.maxBytes)
	if err != nil {
		return "", err
	}

	name, err := generateName(filename)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath.Join(d.dir, name), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("cannot store upload: %w", err)
	}

	return "/uploads/" + name, nil
}

// generateName keeps the original extension but replaces the name with
// random hex, so uploads never collide and never carry a caller-chosen path.
func generateName(filename string) (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw) + filepath.Ext(filepath.Base(filename)), nil
}
