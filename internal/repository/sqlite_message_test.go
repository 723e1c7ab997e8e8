package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okonkwoa/ataraxia/internal/db"
	"github.com/okonkwoa/ataraxia/internal/domain"
	"github.com/okonkwoa/ataraxia/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepo_CreateAndList(t *testing.T) {
	repo := NewSQLiteMessageRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Minute)
	m1 := testutil.NewTestMessage(domain.RoleUser, "I feel overwhelmed", testutil.WithMessageCreatedAt(base))
	m2 := testutil.NewTestMessage(domain.RoleAssistant, "That sounds heavy.", testutil.WithMessageCreatedAt(base.Add(time.Second)))
	require.NoError(t, repo.Create(ctx, m1))
	require.NoError(t, repo.Create(ctx, m2))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.RoleUser, list[0].Role)
	assert.Equal(t, domain.RoleAssistant, list[1].Role)
}

func TestMessageRepo_ListRecent_ChronologicalWindow(t *testing.T) {
	repo := NewSQLiteMessageRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	texts := []string{"first", "second", "third", "fourth"}
	for i, txt := range texts {
		m := testutil.NewTestMessage(domain.RoleUser, txt, testutil.WithMessageCreatedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Create(ctx, m))
	}

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	// Last two messages, oldest first.
	assert.Equal(t, "third", recent[0].Text)
	assert.Equal(t, "fourth", recent[1].Text)
}

func TestMessageRepo_CreateBatch(t *testing.T) {
	repo := NewSQLiteMessageRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Now().UTC()
	msgs := []*domain.Message{
		testutil.NewTestMessage(domain.RoleUser, "hello", testutil.WithMessageCreatedAt(base)),
		testutil.NewTestMessage(domain.RoleAssistant, "hi there", testutil.WithMessageCreatedAt(base.Add(time.Second))),
	}
	require.NoError(t, repo.CreateBatch(ctx, msgs))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestMessageRepo_CreateBatch_RollsBackInsideUoW(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	base := time.Now().UTC()
	msgs := []*domain.Message{
		testutil.NewTestMessage(domain.RoleUser, "one", testutil.WithMessageCreatedAt(base)),
		testutil.NewTestMessage(domain.RoleAssistant, "two", testutil.WithMessageCreatedAt(base.Add(time.Second))),
	}

	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteMessageRepo(tx).CreateBatch(ctx, msgs)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, injected)

	list, err := NewSQLiteMessageRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "partial batch should be rolled back")
}
