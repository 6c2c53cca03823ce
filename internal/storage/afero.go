package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/spf13/afero"
)

// AferoStore keeps files on an afero filesystem (disk for "local", memory for tests)
type AferoStore struct {
	fs     afero.Fs
	driver string
}

// NewLocalStore stores files under root on the OS filesystem
func NewLocalStore(root string) (*AferoStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &AferoStore{fs: afero.NewBasePathFs(afero.NewOsFs(), root), driver: "local"}, nil
}

// NewMemoryStore keeps files in memory
func NewMemoryStore() *AferoStore {
	return &AferoStore{fs: afero.NewMemMapFs(), driver: "memory"}
}

// NewAferoStore wraps an existing afero filesystem
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs, driver: "afero"}
}

// Fs exposes the underlying filesystem
func (s *AferoStore) Fs() afero.Fs {
	return s.fs
}

func (s *AferoStore) Driver() string {
	return s.driver
}

func (s *AferoStore) Put(ctx context.Context, namespace, name string, r io.Reader, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p, err := cleanPath(objectPath(namespace, name))
	if err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(path.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	f, err := s.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", p, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(p)
		return "", fmt.Errorf("write %s: %w", p, err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(p)
		return "", fmt.Errorf("close %s: %w", p, err)
	}
	return p, nil
}

func (s *AferoStore) Exists(ctx context.Context, p string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	cleaned, err := cleanPath(p)
	if err != nil {
		return false, err
	}
	return afero.Exists(s.fs, cleaned)
}

func (s *AferoStore) Open(ctx context.Context, p string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cleaned, err := cleanPath(p)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.Open(cleaned)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("open %s: %w", cleaned, err)
	}
	return f, nil
}

func (s *AferoStore) Delete(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cleaned, err := cleanPath(p)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(cleaned); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %s: %w", cleaned, err)
	}
	return nil
}

func (s *AferoStore) List(ctx context.Context, namespace string) ([]ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := afero.ReadDir(s.fs, namespace)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", namespace, err)
	}
	out := make([]ObjectInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out = append(out, ObjectInfo{
			Path:    objectPath(namespace, e.Name()),
			Size:    e.Size(),
			ModTime: e.ModTime(),
		})
	}
	return out, nil
}
