package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"gorm.io/datatypes"
)

// NotebookDocument is the shape of a document in the "notebooks" collection.
type NotebookDocument struct {
	Id         bson.ObjectID `bson:"_id"`
	Name       string        `bson:"name"`
	Paragraphs []string      `bson:"paragraphs"`
}

type Notebook struct {
	Id         string                      `gorm:"type:char(24);primaryKey"`
	Name       string                      `gorm:"type:varchar(255);not null"`
	Paragraphs datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
