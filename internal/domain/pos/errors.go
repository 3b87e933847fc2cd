package pos

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	ErrInUse    = errors.New("record is still referenced")
)
