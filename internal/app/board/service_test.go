package board

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	boards []*Summary
}

func (f *fakeRepo) GetAllBoards(_ context.Context) ([]*Summary, error) {
	return f.boards, nil
}

func (f *fakeRepo) GetBoard(_ context.Context, board string) (*Summary, error) {
	for _, b := range f.boards {
		if b.Board == board {
			return b, nil
		}
	}
	return nil, nil
}

func TestGetAllBoards(t *testing.T) {
	now := time.Now().UTC()
	svc := NewService(&fakeRepo{boards: []*Summary{
		{Board: "b", Threads: 3, BumpedOn: now},
		{Board: "prog", Threads: 1, BumpedOn: now},
	}})

	boards, err := svc.GetAllBoards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, "b", boards[0].Board)
	assert.EqualValues(t, 3, boards[0].Threads)
}

func TestGetBoard(t *testing.T) {
	svc := NewService(&fakeRepo{boards: []*Summary{
		{Board: "b", Threads: 3},
	}})

	summary, err := svc.GetBoard(context.Background(), "b")
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.EqualValues(t, 3, summary.Threads)

	summary, err = svc.GetBoard(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, summary)
}
