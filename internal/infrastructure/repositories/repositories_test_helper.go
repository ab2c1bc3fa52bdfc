package repositories

import (
	"fmt"
	"testing"
	"time"

	"captura-leads.backend/internal/domain/entities"
	"captura-leads.backend/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func newMigratedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := newTestDB(t)
	require.NoError(t, db.AutoMigrate(models.All()...), "migrate")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

// stamped returns an audit created at base+offset by actor
func stamped(actor uuid.UUID, base time.Time, offset time.Duration) entities.Audit {
	var a entities.Audit
	by := null.String{}
	if actor != uuid.Nil {
		by = null.StringFrom(actor.String())
	}
	a.StampCreated(by, base.Add(offset).UTC())
	return a
}

func newLead(name string, status entities.LeadStatus, audit entities.Audit) *entities.Lead {
	return &entities.Lead{
		ID:       uuid.New(),
		Name:     name,
		Email:    name + "@example.com",
		Phone:    "11987654321",
		Status:   status,
		IsActive: true,
		Audit:    audit,
	}
}
