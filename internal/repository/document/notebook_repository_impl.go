package document

import (
	"context"

	"notebook-query-be/internal/entity"
	"notebook-query-be/internal/mapper"
	"notebook-query-be/internal/model"
	"notebook-query-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type NotebookRepositoryImpl struct {
	coll   *mongo.Collection
	mapper *mapper.NotebookMapper
}

func NewNotebookRepository(db *mongo.Database) contract.NotebookRepository {
	return &NotebookRepositoryImpl{
		coll:   db.Collection(NotebookCollection),
		mapper: mapper.NewNotebookMapper(),
	}
}

func (r *NotebookRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Notebook, error) {
	oid, err := parseId(id)
	if err != nil {
		return nil, err
	}

	var doc model.NotebookDocument
	if err := r.coll.FindOne(ctx, byId(oid)).Decode(&doc); err != nil {
		return nil, findErr("find notebook", err)
	}
	return r.mapper.DocumentToEntity(&doc), nil
}

func (r *NotebookRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Notebook, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, contract.NewStoreError("find notebooks", err)
	}

	var docs []*model.NotebookDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, contract.NewStoreError("decode notebooks", err)
	}
	return r.mapper.DocumentsToEntities(docs), nil
}
