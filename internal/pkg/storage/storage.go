package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage abstracts blob storage for uploaded assets (costume photos).
type Storage interface {
	// Save writes content to the given relative path, creating parent
	// directories as needed.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at the given relative path for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at the given relative path. Deleting a
	// missing file is not an error.
	Delete(ctx context.Context, path string) error
}

// LocalStorage keeps files on the local file system under a base directory.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

func (s *LocalStorage) Save(ctx context.Context, path string, content io.Reader) error {
	fullPath := filepath.Join(s.basePath, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return fmt.Errorf("failed to write file content: %w", err)
	}

	return nil
}

func (s *LocalStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(s.basePath, path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if err := os.Remove(filepath.Join(s.basePath, path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
