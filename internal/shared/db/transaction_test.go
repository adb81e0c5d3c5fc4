package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, tm *TransactionManager) int64 {
	t.Helper()
	var n int64
	require.NoError(t, tm.db.Model(&scopedRow{}).Count(&n).Error)
	return n
}

func TestRunInTransaction_CommitsAndRollsBack(t *testing.T) {
	tm := NewTransactionManager(newScopeDB(t))
	ctx := context.Background()

	err := tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		assert.True(t, InTransaction(txCtx))
		return GetTxFromContext(txCtx, tm.db).Create(&scopedRow{ID: 10, UpdatedAt: 1}).Error
	})
	require.NoError(t, err)
	assert.EqualValues(t, 5, countRows(t, tm))

	boom := errors.New("boom")
	err = tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		require.NoError(t, GetTxFromContext(txCtx, tm.db).Create(&scopedRow{ID: 11, UpdatedAt: 1}).Error)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 5, countRows(t, tm))
}

func TestRunInTransaction_NestedCallJoinsOuter(t *testing.T) {
	tm := NewTransactionManager(newScopeDB(t))
	boom := errors.New("boom")

	err := tm.RunInTransaction(context.Background(), func(outer context.Context) error {
		inner := tm.RunInTransaction(outer, func(txCtx context.Context) error {
			assert.Same(t, GetTxFromContext(outer, tm.db), GetTxFromContext(txCtx, tm.db))
			return GetTxFromContext(txCtx, tm.db).Create(&scopedRow{ID: 12, UpdatedAt: 1}).Error
		})
		require.NoError(t, inner)
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 4, countRows(t, tm), "inner insert must roll back with the outer transaction")
}

func TestInTransaction_PlainContext(t *testing.T) {
	assert.False(t, InTransaction(context.Background()))
}
