package repository

import (
	"testing"

	"gorm.io/gorm"

	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/testutil"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.NewSQLiteDB(t)
}
