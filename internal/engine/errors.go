package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCandidates means selection exhausted every fallback relaxation
	// and still found no eligible question. The engine never substitutes an
	// arbitrary question for this error.
	ErrNoCandidates = errors.New("no eligible questions available")

	// ErrNotFound means an unknown user, card, or question reference.
	ErrNotFound = errors.New("not found")

	// ErrInvalidConfig means an out-of-range weight or threshold value.
	ErrInvalidConfig = errors.New("invalid engine configuration")
)

// StorageError wraps a collaborator I/O failure. The failure itself is
// opaque to the engine; no retries happen here.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// errReviewConflict reports that a flashcard review kept losing the
// optimistic write race even after re-reading the state.
var errReviewConflict = errors.New("concurrent review conflict")
