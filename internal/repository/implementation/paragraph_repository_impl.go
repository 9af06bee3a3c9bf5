package implementation

import (
	"context"

	"notebook-query-be/internal/entity"
	"notebook-query-be/internal/mapper"
	"notebook-query-be/internal/model"
	"notebook-query-be/internal/repository/contract"
	"notebook-query-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ParagraphRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ParagraphMapper
}

func NewParagraphRepository(db *gorm.DB) contract.ParagraphRepository {
	return &ParagraphRepositoryImpl{
		db:     db,
		mapper: mapper.NewParagraphMapper(),
	}
}

func (r *ParagraphRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Paragraph, error) {
	if err := validateId(id); err != nil {
		return nil, err
	}

	var m model.Paragraph
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		return nil, findErr("find paragraph", err)
	}
	return r.mapper.ToEntity(&m), nil
}
