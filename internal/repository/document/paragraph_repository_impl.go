package document

import (
	"context"

	"notebook-query-be/internal/entity"
	"notebook-query-be/internal/mapper"
	"notebook-query-be/internal/model"
	"notebook-query-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

type ParagraphRepositoryImpl struct {
	coll   *mongo.Collection
	mapper *mapper.ParagraphMapper
}

func NewParagraphRepository(db *mongo.Database) contract.ParagraphRepository {
	return &ParagraphRepositoryImpl{
		coll:   db.Collection(ParagraphCollection),
		mapper: mapper.NewParagraphMapper(),
	}
}

func (r *ParagraphRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Paragraph, error) {
	oid, err := parseId(id)
	if err != nil {
		return nil, err
	}

	var doc model.ParagraphDocument
	if err := r.coll.FindOne(ctx, byId(oid)).Decode(&doc); err != nil {
		return nil, findErr("find paragraph", err)
	}
	return r.mapper.DocumentToEntity(&doc), nil
}
