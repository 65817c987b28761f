package form

import (
	"errors"
	"fmt"
)

// ErrEmptyForm indicates the document loaded fine but exposes no form
// widgets. Callers treat this as a signal for the fallback template, not
// as a failure.
var ErrEmptyForm = errors.New("document contains no form widgets")

// DocumentLoadError indicates the byte buffer could not be read as a
// fillable form document (corrupt, encrypted, or not a form).
type DocumentLoadError struct {
	Err error
}

func (e *DocumentLoadError) Error() string {
	return fmt.Sprintf("failed to load form document: %v", e.Err)
}

func (e *DocumentLoadError) Unwrap() error {
	return e.Err
}
