package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
)

const APIVersion = "1.0"

// Resolver is the root of both the Query and Mutation types. It holds no
// state; every field reads the store through the request's Context.
type Resolver struct{}

type idArgs struct {
	ID graphql.ID
}

func (r *Resolver) APIVersion() string {
	return APIVersion
}

func (r *Resolver) Notebooks(ctx context.Context) (*[]*NotebookResolver, error) {
	c, ok := FromContext(ctx)
	if !ok {
		return nil, errContextMissing
	}

	notebooks, err := c.Notebooks().FindAll(ctx)
	if err != nil {
		return nil, fieldError("notebook", "", err)
	}

	resolvers := make([]*NotebookResolver, len(notebooks))
	for i, n := range notebooks {
		resolvers[i] = &NotebookResolver{notebook: n}
	}
	return &resolvers, nil
}

func (r *Resolver) Notebook(ctx context.Context, args idArgs) (*NotebookResolver, error) {
	c, ok := FromContext(ctx)
	if !ok {
		return nil, errContextMissing
	}

	id := string(args.ID)
	notebook, err := c.Notebooks().FindById(ctx, id)
	if err != nil {
		return nil, fieldError("notebook", id, err)
	}
	return &NotebookResolver{notebook: notebook}, nil
}

func (r *Resolver) Paragraph(ctx context.Context, args idArgs) (*ParagraphResolver, error) {
	c, ok := FromContext(ctx)
	if !ok {
		return nil, errContextMissing
	}

	id := string(args.ID)
	paragraph, err := c.Paragraphs().FindById(ctx, id)
	if err != nil {
		return nil, fieldError("paragraph", id, err)
	}
	return &ParagraphResolver{paragraph: paragraph}, nil
}
