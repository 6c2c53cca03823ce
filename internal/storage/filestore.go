package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// InvoicesNamespace is where invoice documents are written
const InvoicesNamespace = "invoices"

// ErrNotExist is returned when a path has no stored object
var ErrNotExist = errors.New("stored file does not exist")

// ObjectInfo describes one stored object
type ObjectInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// FileStore is blob storage addressed by "<namespace>/<name>" paths
type FileStore interface {
	// Put writes r to namespace/name and returns the stored path.
	Put(ctx context.Context, namespace, name string, r io.Reader, contentType string) (string, error)
	Exists(ctx context.Context, p string) (bool, error)
	Open(ctx context.Context, p string) (io.ReadCloser, error)
	// Delete removes p; a missing object is not an error.
	Delete(ctx context.Context, p string) error
	List(ctx context.Context, namespace string) ([]ObjectInfo, error)
	Driver() string
}

// UniqueName prefixes the original file name with a time-based value so
// concurrent uploads of the same document never collide.
func UniqueName(original string, now time.Time) string {
	return fmt.Sprintf("%d_%s", now.UnixNano(), SanitizeName(original))
}

// OriginalName strips the uniqueness prefix from a stored path
func OriginalName(p string) string {
	base := path.Base(p)
	if i := strings.IndexByte(base, '_'); i > 0 {
		return base[i+1:]
	}
	return base
}

// SanitizeName reduces a client-supplied file name to a safe base name
func SanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == '/' || r == 0x7f {
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "file"
	}
	return name
}

func objectPath(namespace, name string) string {
	return path.Join(strings.Trim(namespace, "/"), name)
}

func cleanPath(p string) (string, error) {
	cleaned := path.Clean("/" + strings.TrimSpace(p))[1:]
	if cleaned == "" {
		return "", fmt.Errorf("invalid storage path %q", p)
	}
	return cleaned, nil
}
