package document

import (
	"errors"
	"testing"

	"notebook-query-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestParseId(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid hex", id: "64b7f0c2a1e4d3b2c1a09f8e"},
		{name: "too short", id: "abc123", wantErr: true},
		{name: "non hex", id: "zzzzzzzzzzzzzzzzzzzzzzzz", wantErr: true},
		{name: "empty", id: "", wantErr: true},
		{name: "uppercase hex", id: "64B7F0C2A1E4D3B2C1A09F8E", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oid, err := parseId(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, contract.ErrMalformedId)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, oid.Hex())
		})
	}
}

func TestFindErr(t *testing.T) {
	assert.ErrorIs(t, findErr("find notebook", mongo.ErrNoDocuments), contract.ErrNotFound)

	err := findErr("find notebook", errors.New("socket closed"))
	assert.True(t, contract.IsStoreError(err))
	assert.NotErrorIs(t, err, contract.ErrNotFound)
}
