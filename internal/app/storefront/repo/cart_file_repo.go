// Package repo provides the durable CartStorage implementations: a JSON
// document on disk (the default) and a single Redis value under a fixed
// key.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopeasy/storefront-service/internal/app/storefront/domain"
)

// FileCartRepo stores the whole cart as one JSON document on disk.
type FileCartRepo struct {
	path string
}

// NewFileCartRepo constructs a FileCartRepo writing to the given path.
func NewFileCartRepo(path string) *FileCartRepo {
	return &FileCartRepo{path: path}
}

// Save replaces the stored cart with the given lines.
func (r *FileCartRepo) Save(ctx context.Context, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}

// Load reads the stored cart. A missing file yields an empty cart; a
// malformed one yields an error.
func (r *FileCartRepo) Load(ctx context.Context) ([]domain.CartLine, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart file: %w", err)
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode cart file: %w", err)
	}
	return lines, nil
}
