package contract

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrMalformedId = errors.New("malformed identifier")
)

// MalformedId wraps ErrMalformedId with the offending identifier.
func MalformedId(id string) error {
	return fmt.Errorf("%w: %q", ErrMalformedId, id)
}

// StoreError reports a transport or decode failure against the backing store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
