package tx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopRunsInline(t *testing.T) {
	ctx := context.Background()
	called := false
	err := Noop{}.RunInTx(ctx, func(inner context.Context) error {
		called = true
		_, ok := From(inner)
		assert.False(t, ok)
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)

	boom := errors.New("boom")
	assert.ErrorIs(t, Noop{}.RunInTx(ctx, func(context.Context) error { return boom }), boom)
}

func TestWithTxNilIsIgnored(t *testing.T) {
	ctx := WithTx(context.Background(), nil)
	_, ok := From(ctx)
	assert.False(t, ok)
}

func TestRunnerFallsBackToDB(t *testing.T) {
	db := &sql.DB{}
	assert.Same(t, db, Runner(context.Background(), db))
}
