// Package downloads stores images fetched by the gallery, either in a local
// directory or in an S3-compatible bucket.
package downloads

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
)

var ErrInvalidName = errors.New("invalid file name")

// Saver persists one downloaded file and reports where it ended up.
type Saver interface {
	Save(ctx context.Context, name string, r io.Reader) (location string, err error)
}

// cleanName keeps only the last path element of name.
func cleanName(name string) (string, error) {
	n := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if n == "" || n == "." || n == "/" || n == ".." {
		return "", ErrInvalidName
	}
	return n, nil
}
