package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeDB struct {
	DBExecutor
}

func (fakeDB) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func TestGetExecutor(t *testing.T) {
	db := fakeDB{}
	tx := fakeTx{}

	ctx := context.Background()
	assert.Equal(t, DBExecutor(db), GetExecutor(ctx, db))
	assert.False(t, IsInTransaction(ctx))

	txCtx := WithTx(ctx, tx)
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, db))
	assert.True(t, IsInTransaction(txCtx))
}

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "SELECT", operationOf("select id from appointments"))
	assert.Equal(t, "INSERT", operationOf("\n  INSERT INTO sales (id) VALUES ($1)"))
	assert.Equal(t, "UNKNOWN", operationOf("   "))
}
