package downloads

import (
	"context"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/gophauth/internal/filex"
)

// FileSaver writes into a local directory, creating it on first use.
type FileSaver struct {
	dir string
}

func NewFileSaver(dir string) *FileSaver {
	return &FileSaver{dir: dir}
}

func (s *FileSaver) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	n, err := cleanName(name)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs, err := filex.EnsureDir(s.dir)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(abs, n)
	if err := filex.WriteFileAtomic(dest, r); err != nil {
		return "", err
	}
	return dest, nil
}
