package implementation

import (
	"context"
	"errors"
	"testing"

	"notebook-query-be/internal/model"
	"notebook-query-be/internal/repository/contract"
	"notebook-query-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost"}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	if err != nil {
		t.Skipf("postgres dialector unavailable: %v", err)
	}
	return db
}

func TestValidateId(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "lowercase hex", id: "64b7f0c2a1e4d3b2c1a09f8e"},
		{name: "uppercase hex", id: "64B7F0C2A1E4D3B2C1A09F8E", wantErr: true},
		{name: "mixed case hex", id: "64b7f0c2a1e4d3b2c1a09F8E", wantErr: true},
		{name: "too short", id: "abc123", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateId(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, contract.ErrMalformedId)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFindErrMapsRecordNotFound(t *testing.T) {
	assert.ErrorIs(t, findErr("find notebook", gorm.ErrRecordNotFound), contract.ErrNotFound)

	err := findErr("find notebook", errors.New("connection refused"))
	assert.True(t, contract.IsStoreError(err))
}

func TestApplySpecificationsOnParagraphs(t *testing.T) {
	db := dryRunDB(t)

	query := applySpecifications(db.Model(&model.Paragraph{}), specification.ByID{ID: "64b7f0c2a1e4d3b2c1a09f8e"})
	stmt := query.Find(&[]model.Paragraph{}).Statement

	assert.Contains(t, stmt.SQL.String(), `"paragraphs"`)
	assert.Contains(t, stmt.SQL.String(), "id = $1")
	assert.Equal(t, []interface{}{"64b7f0c2a1e4d3b2c1a09f8e"}, stmt.Vars)
}

func TestFindByIdRejectsNonCanonicalIds(t *testing.T) {
	db := dryRunDB(t)
	ctx := context.Background()

	notebooks := NewNotebookRepository(db)
	paragraphs := NewParagraphRepository(db)

	for _, id := range []string{"abc123", "64B7F0C2A1E4D3B2C1A09F8E"} {
		nb, err := notebooks.FindById(ctx, id)
		assert.Nil(t, nb)
		assert.ErrorIs(t, err, contract.ErrMalformedId)

		p, err := paragraphs.FindById(ctx, id)
		assert.Nil(t, p)
		require.Error(t, err)
		assert.ErrorIs(t, err, contract.ErrMalformedId)
	}
}
