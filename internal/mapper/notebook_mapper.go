package mapper

import (
	"notebook-query-be/internal/entity"
	"notebook-query-be/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type NotebookMapper struct{}

func NewNotebookMapper() *NotebookMapper {
	return &NotebookMapper{}
}

func (m *NotebookMapper) DocumentToEntity(d *model.NotebookDocument) *entity.Notebook {
	if d == nil {
		return nil
	}
	return &entity.Notebook{
		Id:         d.Id.Hex(),
		Name:       d.Name,
		Paragraphs: paragraphIds(d.Paragraphs),
	}
}

func (m *NotebookMapper) DocumentsToEntities(docs []*model.NotebookDocument) []*entity.Notebook {
	entities := make([]*entity.Notebook, len(docs))
	for i, d := range docs {
		entities[i] = m.DocumentToEntity(d)
	}
	return entities
}

// ToDocument fails when the entity id is not a hex ObjectID.
func (m *NotebookMapper) ToDocument(n *entity.Notebook) (*model.NotebookDocument, error) {
	if n == nil {
		return nil, nil
	}
	oid, err := bson.ObjectIDFromHex(n.Id)
	if err != nil {
		return nil, err
	}
	return &model.NotebookDocument{
		Id:         oid,
		Name:       n.Name,
		Paragraphs: paragraphIds(n.Paragraphs),
	}, nil
}

func (m *NotebookMapper) ToEntity(n *model.Notebook) *entity.Notebook {
	if n == nil {
		return nil
	}
	return &entity.Notebook{
		Id:         n.Id,
		Name:       n.Name,
		Paragraphs: paragraphIds(n.Paragraphs),
	}
}

func (m *NotebookMapper) ToModel(n *entity.Notebook) *model.Notebook {
	if n == nil {
		return nil
	}
	return &model.Notebook{
		Id:         n.Id,
		Name:       n.Name,
		Paragraphs: paragraphIds(n.Paragraphs),
	}
}

func (m *NotebookMapper) ToEntities(notebooks []*model.Notebook) []*entity.Notebook {
	entities := make([]*entity.Notebook, len(notebooks))
	for i, n := range notebooks {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

// paragraphIds copies the id list so entities never alias storage buffers.
// A missing list becomes an empty one.
func paragraphIds(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
