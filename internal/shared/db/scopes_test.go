package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type scopedRow struct {
	ID        int64 `gorm:"primaryKey"`
	UpdatedAt int64
}

func newScopeDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&scopedRow{}))
	rows := []scopedRow{{ID: 1, UpdatedAt: 10}, {ID: 2, UpdatedAt: 30}, {ID: 3, UpdatedAt: 30}, {ID: 4, UpdatedAt: 20}}
	require.NoError(t, db.Create(&rows).Error)
	return db
}

func ids(rows []scopedRow) []int64 {
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func TestNewestFirst(t *testing.T) {
	db := newScopeDB(t)

	var rows []scopedRow
	require.NoError(t, db.Scopes(NewestFirst()).Find(&rows).Error)
	assert.Equal(t, []int64{3, 2, 4, 1}, ids(rows))
}

func TestPaginate(t *testing.T) {
	db := newScopeDB(t)

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []int64
	}{
		{"first page", 2, 0, []int64{3, 2}},
		{"second page", 2, 2, []int64{4, 1}},
		{"past the end", 2, 10, []int64{}},
		{"unbounded", 0, 0, []int64{3, 2, 4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows []scopedRow
			require.NoError(t, db.Scopes(NewestFirst(), Paginate(tt.limit, tt.offset)).Find(&rows).Error)
			assert.Equal(t, tt.want, ids(rows))
		})
	}
}
