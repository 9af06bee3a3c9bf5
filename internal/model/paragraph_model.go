package model

import "go.mongodb.org/mongo-driver/v2/bson"

// ParagraphDocument is the shape of a document in the "paragraphs" collection.
type ParagraphDocument struct {
	Id     bson.ObjectID `bson:"_id"`
	Code   string        `bson:"code"`
	Result string        `bson:"result"`
}

type Paragraph struct {
	Id     string `gorm:"type:char(24);primaryKey"`
	Code   string `gorm:"type:text;not null"`
	Result string `gorm:"type:text;not null"`
}

func (Paragraph) TableName() string {
	return "paragraphs"
}
