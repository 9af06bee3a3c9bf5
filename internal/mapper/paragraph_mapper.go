package mapper

import (
	"notebook-query-be/internal/entity"
	"notebook-query-be/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ParagraphMapper struct{}

func NewParagraphMapper() *ParagraphMapper {
	return &ParagraphMapper{}
}

func (m *ParagraphMapper) DocumentToEntity(d *model.ParagraphDocument) *entity.Paragraph {
	if d == nil {
		return nil
	}
	return &entity.Paragraph{
		Id:     d.Id.Hex(),
		Code:   d.Code,
		Result: d.Result,
	}
}

func (m *ParagraphMapper) ToDocument(p *entity.Paragraph) (*model.ParagraphDocument, error) {
	if p == nil {
		return nil, nil
	}
	oid, err := bson.ObjectIDFromHex(p.Id)
	if err != nil {
		return nil, err
	}
	return &model.ParagraphDocument{
		Id:     oid,
		Code:   p.Code,
		Result: p.Result,
	}, nil
}

func (m *ParagraphMapper) ToEntity(p *model.Paragraph) *entity.Paragraph {
	if p == nil {
		return nil
	}
	return &entity.Paragraph{
		Id:     p.Id,
		Code:   p.Code,
		Result: p.Result,
	}
}

func (m *ParagraphMapper) ToModel(p *entity.Paragraph) *model.Paragraph {
	if p == nil {
		return nil
	}
	return &model.Paragraph{
		Id:     p.Id,
		Code:   p.Code,
		Result: p.Result,
	}
}
