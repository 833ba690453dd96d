package storage

import (
	"context"       // Interface conformance
	"errors"        // Error matching
	"io"            // Upload streams
	"os"            // File system access
	"path/filepath" // Path handling
	"strings"       // Path prefix checks
)

// LocalStorage writes resumes below a directory on disk.
type LocalStorage struct {
	dir string
}

// NewLocalStorage constructs a disk backed store rooted at dir.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("upload dir is required")
	}
	return &LocalStorage{dir: dir}, nil
}

// EnsureBucket creates the upload directory.
func (l *LocalStorage) EnsureBucket(ctx context.Context) error {
	return os.MkdirAll(l.dir, 0o755)
}

// Put writes the object and returns its path on disk.
func (l *LocalStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	path, err := l.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

// Delete removes a file previously returned by Put. Missing files are ignored.
func (l *LocalStorage) Delete(ctx context.Context, path string) error {
	rel, err := filepath.Rel(l.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return errors.New("path outside upload dir")
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (l *LocalStorage) resolve(key string) (string, error) {
	path := filepath.Join(l.dir, filepath.FromSlash(key))
	rel, err := filepath.Rel(l.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", errors.New("key escapes upload dir")
	}
	return path, nil
}
