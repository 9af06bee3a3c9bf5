package graph

import (
	"notebook-query-be/internal/entity"

	graphql "github.com/graph-gophers/graphql-go"
)

type NotebookResolver struct {
	notebook *entity.Notebook
}

func (r *NotebookResolver) ID() graphql.ID {
	return graphql.ID(r.notebook.Id)
}

func (r *NotebookResolver) Name() string {
	return r.notebook.Name
}

func (r *NotebookResolver) Paragraphs() []graphql.ID {
	ids := make([]graphql.ID, len(r.notebook.Paragraphs))
	for i, id := range r.notebook.Paragraphs {
		ids[i] = graphql.ID(id)
	}
	return ids
}
