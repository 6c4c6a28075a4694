// Package storage stages uploaded certificate files on local disk. Staged
// files are part of the admission cleanup contract: every rejection path must
// remove them.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type FileStore interface {
	// Save copies src to a uniquely named file and returns its path.
	Save(src io.Reader, ext string) (string, error)

	// Remove deletes a staged file. Removing an already-deleted file is not
	// an error.
	Remove(path string) error
}

type LocalFileStore struct {
	dir string
}

func NewLocalFileStore(dir string) (*LocalFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalFileStore{dir: dir}, nil
}

func (s *LocalFileStore) Save(src io.Reader, ext string) (string, error) {
	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}

func (s *LocalFileStore) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
