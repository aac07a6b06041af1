package mylist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Storage is a minimal key-value store for small JSON documents.
type Storage interface {
	// Get returns the stored value, or nil and no error when the key is absent.
	Get(key string) ([]byte, error)
	// Set replaces the stored value.
	Set(key string, value []byte) error
}

// FileStorage keeps one <dir>/<key>.json file per key.
type FileStorage struct {
	fs  afero.Fs
	dir string
}

// NewFileStorage returns a Storage rooted at dir on fs.
func NewFileStorage(fs afero.Fs, dir string) *FileStorage {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileStorage{fs: fs, dir: dir}
}

// Get implements Storage.
func (s *FileStorage) Get(key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}

// Set implements Storage. The value is written to a temp file and renamed
// into place.
func (s *FileStorage) Set(key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, value, 0o600); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("rename tmp: %w", err)
	}
	return nil
}

// Path returns the file backing key.
func (s *FileStorage) Path(key string) string {
	path, _ := s.path(key)
	return path
}

func (s *FileStorage) path(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
