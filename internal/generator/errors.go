package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceDisabled indicates the generator feature is disabled.
	ErrServiceDisabled = errors.New("generator: service disabled")
	// ErrWriteFailed indicates a document could not be written to storage.
	ErrWriteFailed = errors.New("generator: write failed")

	errRendererRequired   = errors.New("generator: template renderer is required")
	errCurriculumRequired = errors.New("generator: curriculum service is required")
	errStorageRequired    = errors.New("generator: file store is required")
)

// WriteError reports a failed document write. The run aborts on the first
// occurrence; documents written before the failure stay on disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e == nil {
		return ErrWriteFailed.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: path=%s: %v", ErrWriteFailed.Error(), e.Path, e.Err)
	}
	return fmt.Sprintf("%s: path=%s", ErrWriteFailed.Error(), e.Path)
}

func (e *WriteError) Unwrap() error {
	return ErrWriteFailed
}
