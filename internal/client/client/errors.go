package client

import "errors"

var (
	ErrUnavailable        = errors.New("store unavailable")
	ErrUnsupportedDriver  = errors.New("unsupported storage driver")
	ErrGalleryUnavailable = errors.New("gallery unavailable")
)
