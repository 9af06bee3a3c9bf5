package contract

import (
	"context"

	"notebook-query-be/internal/entity"
)

// NotebookRepository reads notebooks from the backing store.
//
// FindById returns an error matching ErrMalformedId when id is not a valid
// identifier for the store, ErrNotFound when no notebook matches, and a
// *StoreError on transport or decode failure. FindAll makes no ordering
// promise.
type NotebookRepository interface {
	FindById(ctx context.Context, id string) (*entity.Notebook, error)
	FindAll(ctx context.Context) ([]*entity.Notebook, error)
}
