package contract

import (
	"context"

	"notebook-query-be/internal/entity"
)

// ParagraphRepository follows the same error contract as NotebookRepository.
type ParagraphRepository interface {
	FindById(ctx context.Context, id string) (*entity.Paragraph, error)
}
