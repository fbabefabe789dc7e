package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niyagame/niya/board"
	"github.com/niyagame/niya/sample"
	"github.com/niyagame/niya/solve"
)

func testRecord(rank uint64, bestMove int) sample.Record {
	return sample.Record{
		Rank: rank,
		Result: solve.Result{
			IsP1Win:          true,
			IsDraw:           false,
			BestMove:         bestMove,
			Outcome:          board.Row,
			GameDepth:        4,
			BestMovePosition: "corner",
			P1WinsCount:      8,
			P2WinsCount:      3,
			DrawsCount:       1,
			P2Responses: []solve.P2Response{
				{P1Move: bestMove, P2BestMove: 5, IsP1Win: true, Outcome: board.Row},
			},
		},
	}
}

func TestInsertBatchAndCount(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "niya.db")

	s, err := New(path)
	require.NoError(t, err)

	err = s.InsertBatch(ctx, []sample.Record{testRecord(42, 0), testRecord(43, 3)})
	require.NoError(t, err)

	count, err := SolvedCount(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestInsertBatchIgnoresDuplicateRank(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "niya.db")

	s, err := New(path)
	require.NoError(t, err)

	rec := testRecord(7, 1)
	require.NoError(t, s.InsertBatch(ctx, []sample.Record{rec}))
	require.NoError(t, s.InsertBatch(ctx, []sample.Record{rec}))

	count, err := SolvedCount(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestInsertBatchEmptyIsNoop(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "niya.db")

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.InsertBatch(ctx, nil))

	count, err := SolvedCount(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSolvedCountMissingFileCreatesEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fresh.db")

	_, err := New(path)
	require.NoError(t, err)

	count, err := SolvedCount(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNewCreatesMissingParentDirectories(t *testing.T) {
	ctx := context.Background()
	nested := filepath.Join(t.TempDir(), "a", "b", "c", "niya.db")

	s, err := New(nested)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(nested))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, s.InsertBatch(ctx, []sample.Record{testRecord(1, 0)}))
	count, err := SolvedCount(ctx, nested)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
