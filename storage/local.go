package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage keeps images in a flat directory on disk. The router
// serves the directory under /static/images
type LocalStorage struct {
	dir string
}

func NewLocal(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory, %w", err)
	}

	return &LocalStorage{dir: dir}, nil
}

func (l *LocalStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	f, err := os.Create(filepath.Join(l.dir, key))
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, r)
	return err
}

func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(l.dir, key))
	if os.IsNotExist(err) {
		return nil
	}

	return err
}

func (l *LocalStorage) URL(key string) string {
	return "/static/images/" + key
}

func (l *LocalStorage) Dir() string {
	return l.dir
}
