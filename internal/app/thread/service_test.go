package thread

import (
	"context"
	"fmt"
	"testing"
	"time"

	"anonboard/internal/crypto"
	"anonboard/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(repo Repository) Service {
	return NewService(repo, nil, utils.NewEventBus(), zap.NewNop(), time.Minute)
}

func TestCreateThread(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.CreateThread(ctx, "b", "hello", "pw")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	stored, err := repo.Find(ctx, "b", created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "hello", stored.Text)
	assert.Equal(t, "b", stored.Board)
	assert.False(t, stored.Reported)
	assert.Empty(t, stored.Replies)
	assert.Equal(t, stored.CreatedOn, stored.BumpedOn)
	assert.True(t, crypto.CheckPassword("pw", stored.DeletePasswordHash))
	assert.False(t, crypto.CheckPassword("wrong", stored.DeletePasswordHash))
}

func TestCreateThreadValidation(t *testing.T) {
	svc := newTestService(newMemRepo())
	ctx := context.Background()

	_, err := svc.CreateThread(ctx, "b", "", "pw")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateThread(ctx, "b", "text", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListThreadsLimitAndOrder(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 13; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Insert(ctx, &Thread{
			ID:        uuid.New(),
			Board:     "b",
			Text:      fmt.Sprintf("thread %d", i),
			Replies:   []Reply{},
			CreatedOn: ts,
			BumpedOn:  ts,
		}))
	}

	items, err := svc.ListThreads(ctx, "b")
	require.NoError(t, err)
	require.Len(t, items, ListLimit)

	assert.Equal(t, "thread 12", items[0].Text)
	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].BumpedOn.After(items[i-1].BumpedOn),
			"listing must be ordered newest-bumped-first")
	}
}

func TestListThreadsReplyPreview(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.CreateThread(ctx, "b", "op", "pw")
	require.NoError(t, err)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		_, err := repo.AppendReply(ctx, "b", created.ID, &Reply{
			ID:                 uuid.New(),
			Text:               fmt.Sprintf("reply %d", i),
			DeletePasswordHash: "secret-hash",
			CreatedOn:          base.Add(time.Duration(i) * time.Second),
			BumpedOn:           base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	items, err := svc.ListThreads(ctx, "b")
	require.NoError(t, err)
	require.Len(t, items, 1)

	replies := items[0].Replies
	require.Len(t, replies, ReplyPreviewLimit)
	assert.Equal(t, "reply 4", replies[0].Text)
	assert.Equal(t, "reply 3", replies[1].Text)
	assert.Equal(t, "reply 2", replies[2].Text)
}

func TestListThreadsEmptyBoard(t *testing.T) {
	svc := newTestService(newMemRepo())

	items, err := svc.ListThreads(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestReportThread(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.CreateThread(ctx, "b", "op", "pw")
	require.NoError(t, err)
	other, err := svc.CreateThread(ctx, "b", "bystander", "pw")
	require.NoError(t, err)

	require.NoError(t, svc.ReportThread(ctx, "b", created.ID))

	stored, _ := repo.Find(ctx, "b", created.ID)
	assert.True(t, stored.Reported)
	untouched, _ := repo.Find(ctx, "b", other.ID)
	assert.False(t, untouched.Reported)

	// Reporting twice stays reported and stays successful.
	require.NoError(t, svc.ReportThread(ctx, "b", created.ID))
	stored, _ = repo.Find(ctx, "b", created.ID)
	assert.True(t, stored.Reported)
}

func TestReportThreadNotFound(t *testing.T) {
	svc := newTestService(newMemRepo())

	err := svc.ReportThread(context.Background(), "b", uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportThreadWrongBoard(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.CreateThread(ctx, "b", "op", "pw")
	require.NoError(t, err)

	err = svc.ReportThread(ctx, "other", created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteThread(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.CreateThread(ctx, "b", "op", "pw")
	require.NoError(t, err)

	err = svc.DeleteThread(ctx, "b", created.ID, "nope")
	assert.ErrorIs(t, err, ErrWrongPassword)
	stored, _ := repo.Find(ctx, "b", created.ID)
	require.NotNil(t, stored, "failed password check must not mutate state")

	require.NoError(t, svc.DeleteThread(ctx, "b", created.ID, "pw"))
	stored, _ = repo.Find(ctx, "b", created.ID)
	assert.Nil(t, stored)
}

func TestDeleteThreadNotFound(t *testing.T) {
	svc := newTestService(newMemRepo())

	err := svc.DeleteThread(context.Background(), "b", uuid.New(), "pw")
	assert.ErrorIs(t, err, ErrNotFound)
}
