package graph

import (
	"notebook-query-be/internal/entity"

	graphql "github.com/graph-gophers/graphql-go"
)

type ParagraphResolver struct {
	paragraph *entity.Paragraph
}

func (r *ParagraphResolver) ID() graphql.ID {
	return graphql.ID(r.paragraph.Id)
}

func (r *ParagraphResolver) Code() string {
	return r.paragraph.Code
}

func (r *ParagraphResolver) Result() string {
	return r.paragraph.Result
}
