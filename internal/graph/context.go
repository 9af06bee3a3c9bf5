package graph

import (
	"context"

	"notebook-query-be/internal/repository/contract"
)

// Context is the dependency bundle every resolver works against. It is built
// once at startup and shared by all requests; its fields never change after
// construction.
type Context struct {
	notebooks  contract.NotebookRepository
	paragraphs contract.ParagraphRepository
}

func NewContext(notebooks contract.NotebookRepository, paragraphs contract.ParagraphRepository) *Context {
	return &Context{
		notebooks:  notebooks,
		paragraphs: paragraphs,
	}
}

func (c *Context) Notebooks() contract.NotebookRepository {
	return c.notebooks
}

func (c *Context) Paragraphs() contract.ParagraphRepository {
	return c.paragraphs
}

type contextKey struct{}

// WithContext attaches c to a request context.
func WithContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

func FromContext(ctx context.Context) (*Context, bool) {
	c, ok := ctx.Value(contextKey{}).(*Context)
	return c, ok && c != nil
}
