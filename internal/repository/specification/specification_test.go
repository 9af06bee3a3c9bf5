package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type row struct {
	Id string
}

func TestByIDBuildsWhereClause(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost"}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	if err != nil {
		t.Skipf("postgres dialector unavailable: %v", err)
	}

	stmt := ByID{ID: "64b7f0c2a1e4d3b2c1a09f8e"}.Apply(db.Table("notebooks")).Find(&[]row{}).Statement

	assert.Contains(t, stmt.SQL.String(), "id = $1")
	assert.Equal(t, []interface{}{"64b7f0c2a1e4d3b2c1a09f8e"}, stmt.Vars)
}
