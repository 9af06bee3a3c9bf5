package graph

import (
	"context"
)

// CreateNotebook is declared so the mutation root exists, but writes are not
// supported: it never touches the store.
func (r *Resolver) CreateNotebook(ctx context.Context, args idArgs) (*NotebookResolver, error) {
	return nil, &FieldError{
		Code:    CodeNotImplemented,
		Message: "createNotebook is not implemented",
	}
}
