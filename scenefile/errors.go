package scenefile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownReference is returned for a url(#id) or #id naming no
	// definition of the expected kind.
	ErrUnknownReference = errors.New("scenefile: unknown reference")

	// ErrCycle is returned when definitions or embedded scenes reference
	// themselves.
	ErrCycle = errors.New("scenefile: reference cycle")

	// ErrInvalidValue is returned for an attribute that cannot be parsed.
	ErrInvalidValue = errors.New("scenefile: invalid value")

	// ErrUnsupportedImage is returned for image files of an unknown or
	// non-image type.
	ErrUnsupportedImage = errors.New("scenefile: unsupported image")
)

// Error locates a decoding failure within the scene document.
type Error struct {
	// Path is the location of the failing element, for example
	// "children[2].children[0]" or "defs.masks[fade]".
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("scenefile: %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// wrapAt attaches path to err unless it already carries a location.
func wrapAt(path string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Path: path, Err: err}
}

func invalid(attr, value string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidValue, attr, value)
}
