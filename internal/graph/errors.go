package graph

import (
	"errors"
	"fmt"

	"notebook-query-be/internal/repository/contract"
)

const (
	CodeMalformedId    = "MALFORMED_ID"
	CodeNotFound       = "NOT_FOUND"
	CodeStoreError     = "STORE_ERROR"
	CodeNotImplemented = "NOT_IMPLEMENTED"
	CodeContextMissing = "CONTEXT_MISSING"
	CodeInternal       = "INTERNAL"
)

// FieldError is returned by resolvers. The runtime copies Extensions into the
// response so clients can branch on the code rather than the message.
type FieldError struct {
	Code    string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func (e *FieldError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

var errContextMissing = &FieldError{
	Code:    CodeContextMissing,
	Message: "request has no store context",
}

// fieldError maps a repository error for the entity kind/id being resolved.
// Store failures get a generic message; the cause stays on Err for logging.
func fieldError(kind, id string, err error) error {
	var storeErr *contract.StoreError
	switch {
	case errors.Is(err, contract.ErrMalformedId):
		return &FieldError{Code: CodeMalformedId, Message: fmt.Sprintf("malformed %s id %q", kind, id), Err: err}
	case errors.Is(err, contract.ErrNotFound):
		return &FieldError{Code: CodeNotFound, Message: fmt.Sprintf("%s %q not found", kind, id), Err: err}
	case errors.As(err, &storeErr):
		return &FieldError{Code: CodeStoreError, Message: "store unavailable", Err: err}
	default:
		return &FieldError{Code: CodeInternal, Message: "internal error", Err: err}
	}
}

// CodeOf returns the code carried by err, or "" when it is not a FieldError.
func CodeOf(err error) string {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}
