// Package document implements the repository contracts on MongoDB.
package document

import (
	"errors"

	"notebook-query-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	NotebookCollection  = "notebooks"
	ParagraphCollection = "paragraphs"
)

// parseId converts a client supplied id into an ObjectID. Uppercase hex is
// rejected so the id rendered back to the client is the one it sent.
func parseId(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil || oid.Hex() != id {
		return bson.NilObjectID, contract.MalformedId(id)
	}
	return oid, nil
}

func byId(oid bson.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: oid}}
}

func findErr(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return contract.ErrNotFound
	}
	return contract.NewStoreError(op, err)
}
