package implementation

import (
	"context"
	"errors"

	"notebook-query-be/internal/entity"
	"notebook-query-be/internal/mapper"
	"notebook-query-be/internal/model"
	"notebook-query-be/internal/repository/contract"
	"notebook-query-be/internal/repository/specification"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gorm.io/gorm"
)

type NotebookRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NotebookMapper
}

func NewNotebookRepository(db *gorm.DB) contract.NotebookRepository {
	return &NotebookRepositoryImpl{
		db:     db,
		mapper: mapper.NewNotebookMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NotebookRepositoryImpl) FindById(ctx context.Context, id string) (*entity.Notebook, error) {
	if err := validateId(id); err != nil {
		return nil, err
	}

	var m model.Notebook
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&m).Error; err != nil {
		return nil, findErr("find notebook", err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *NotebookRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Notebook, error) {
	var models []*model.Notebook
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, contract.NewStoreError("find notebooks", err)
	}
	return r.mapper.ToEntities(models), nil
}

// validateId keeps the relational store on the same identifier encoding as
// the document store so ids stay portable between drivers. Only the
// canonical lowercase hex form is accepted; ids are stored verbatim.
func validateId(id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil || oid.Hex() != id {
		return contract.MalformedId(id)
	}
	return nil
}

func findErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contract.ErrNotFound
	}
	return contract.NewStoreError(op, err)
}
