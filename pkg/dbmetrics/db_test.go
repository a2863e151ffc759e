package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("SELECT id FROM clients"))
	assert.Equal(t, "insert", operationOf("  INSERT INTO sent_reminders (id) VALUES ($1)"))
	assert.Equal(t, "unknown", operationOf(""))
}

func TestGetExecutor_WithoutTransaction(t *testing.T) {
	ctx := context.Background()
	db := &DB{}

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))
}

func TestGetExecutor_WithTransaction(t *testing.T) {
	tx := &Tx{}
	ctx := WithTx(context.Background(), tx)

	assert.True(t, IsInTransaction(ctx))
	assert.Same(t, tx, GetExecutor(ctx, &DB{}))
}
