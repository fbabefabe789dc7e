package solve

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niyagame/niya/board"
	"github.com/niyagame/niya/canon"
	"github.com/niyagame/niya/tile"
)

func randomCanonicalBoard(r *rand.Rand) board.Board {
	pool := tile.Pool()
	tiles := append([]tile.Tile(nil), pool[:]...)
	r.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })
	return canon.Canonicalize(board.FromSlice(tiles))
}

func TestSolveCountsSumToTwelve(t *testing.T) {
	r := rand.New(rand.NewSource(101))
	for i := 0; i < 20; i++ {
		b := randomCanonicalBoard(r)
		res := Solve(b, false)
		require.Len(t, res.P2Responses, 12)
		assert.Equal(t, 12, res.P1WinsCount+res.P2WinsCount+res.DrawsCount)
	}
}

func TestSolveBestMoveIsLegalOpening(t *testing.T) {
	r := rand.New(rand.NewSource(102))
	for i := 0; i < 20; i++ {
		b := randomCanonicalBoard(r)
		res := Solve(b, true)
		require.GreaterOrEqual(t, res.BestMove, 0)
		assert.Contains(t, board.OpeningCells[:], res.BestMove)
	}
}

func TestSolveOutcomeNeverDrawUnderFullDepth(t *testing.T) {
	r := rand.New(rand.NewSource(103))
	for i := 0; i < 20; i++ {
		b := randomCanonicalBoard(r)
		res := Solve(b, true)
		if res.GameDepth < board.NumCells {
			assert.NotEqual(t, board.Draw, res.Outcome)
		}
	}
}

func TestSolvePhase1Phase2Consistency(t *testing.T) {
	r := rand.New(rand.NewSource(104))
	for i := 0; i < 20; i++ {
		b := randomCanonicalBoard(r)
		res := Solve(b, false)

		var bestResponse *P2Response
		anyLoss := false
		for j := range res.P2Responses {
			pr := &res.P2Responses[j]
			if pr.P1Move == res.BestMove {
				bestResponse = pr
			}
			if !pr.IsP1Win {
				anyLoss = true
			}
		}
		require.NotNil(t, bestResponse)

		if res.IsP1Win {
			assert.True(t, bestResponse.IsP1Win)
		} else {
			assert.True(t, anyLoss)
		}
	}
}

func TestSolveCountsMatchResponses(t *testing.T) {
	r := rand.New(rand.NewSource(105))
	for i := 0; i < 20; i++ {
		b := randomCanonicalBoard(r)
		res := Solve(b, false)

		wins := 0
		for _, pr := range res.P2Responses {
			if pr.IsP1Win {
				wins++
			}
		}
		assert.Equal(t, res.P1WinsCount, wins)
	}
}

func TestAllIdenticalALayout(t *testing.T) {
	tiles := make([]tile.Tile, board.NumCells)
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			tiles[r*board.Dim+c] = tile.Tile{Plant: r, Poem: c}
		}
	}
	b := board.FromSlice(tiles)
	assert.Equal(t, b, canon.Canonicalize(b))

	res := Solve(b, false)
	assert.Equal(t, 12, res.P1WinsCount+res.P2WinsCount+res.DrawsCount)
	assert.Contains(t, board.OpeningCells[:], res.BestMove)
}

func TestSkipP2LeavesResponsesNil(t *testing.T) {
	r := rand.New(rand.NewSource(106))
	b := randomCanonicalBoard(r)
	res := Solve(b, true)
	assert.Nil(t, res.P2Responses)
	assert.Equal(t, 0, res.P1WinsCount+res.P2WinsCount+res.DrawsCount)
}

func TestSolveTraceMatchesSolveAndDumpsRootSearch(t *testing.T) {
	r := rand.New(rand.NewSource(107))
	b := randomCanonicalBoard(r)

	var buf bytes.Buffer
	traced := SolveTrace(b, false, &buf)
	plain := Solve(b, false)

	assert.Equal(t, plain.BestMove, traced.BestMove)
	assert.Equal(t, plain.IsP1Win, traced.IsP1Win)
	assert.Equal(t, plain.Outcome, traced.Outcome)

	out := buf.String()
	assert.Contains(t, out, "Starting Root Search (P1)")
	assert.Contains(t, out, "P1 exploring move")
	assert.Contains(t, out, "P1 evaluated move")
}

func TestSolveTraceNilWriterBehavesLikeSolve(t *testing.T) {
	r := rand.New(rand.NewSource(108))
	b := randomCanonicalBoard(r)
	assert.Equal(t, Solve(b, false), SolveTrace(b, false, nil))
}

// boardFromPairs builds a Board from 16 (Plant, Poem) pairs in row-major
// order.
func boardFromPairs(pairs [board.NumCells][2]int) board.Board {
	tiles := make([]tile.Tile, board.NumCells)
	for i, p := range pairs {
		tiles[i] = tile.Tile{Plant: p[0], Poem: p[1]}
	}
	return board.FromSlice(tiles)
}

// TestCheckerboardOfBReducesUnderVerticalFlip holds A constant per row
// and stripes B diagonally as (r+c) mod 4. The board is already
// lex-min, but its vertical-flip image is strictly greater and
// canonicalizes back down to the same representative.
func TestCheckerboardOfBReducesUnderVerticalFlip(t *testing.T) {
	tiles := make([]tile.Tile, board.NumCells)
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			tiles[r*board.Dim+c] = tile.Tile{Plant: r, Poem: (r + c) % tile.NumValues}
		}
	}
	b := board.FromSlice(tiles)
	require.Equal(t, b, canon.Canonicalize(b))

	flipped := canon.SpatialTransforms[5].Apply(b)
	require.NotEqual(t, b, flipped)
	assert.True(t, b.Less(flipped), "vertical-flip image must sort strictly after the canonical board")
	assert.Equal(t, canon.Canonicalize(b), canon.Canonicalize(flipped))

	res := Solve(b, true)
	assert.Contains(t, board.OpeningCells[:], res.BestMove)
}

// TestKnownP1WinBoardWinsByRow pins a board empirically known to
// produce a P1 win by completing a row, with an exact best_move and
// game_depth.
func TestKnownP1WinBoardWinsByRow(t *testing.T) {
	b := boardFromPairs([board.NumCells][2]int{
		{0, 0}, {0, 1}, {0, 2}, {1, 2},
		{2, 1}, {1, 0}, {3, 2}, {2, 3},
		{2, 0}, {3, 3}, {3, 1}, {2, 2},
		{1, 1}, {0, 3}, {1, 3}, {3, 0},
	})
	require.Equal(t, b, canon.Canonicalize(b))

	res := Solve(b, false)
	assert.True(t, res.IsP1Win)
	assert.False(t, res.IsDraw)
	assert.Equal(t, board.Row, res.Outcome)
	assert.Equal(t, 4, res.BestMove)
	assert.Equal(t, int8(9), res.GameDepth)
	assert.Equal(t, 2, res.P1WinsCount)
	assert.Equal(t, 2, res.P2WinsCount)
	assert.Equal(t, 8, res.DrawsCount)
}

// TestKnownDrawBoardFillsTheBoard pins a board where optimal play from
// P1's best opening exhausts all 16 cells with nobody completing a
// winning pattern.
func TestKnownDrawBoardFillsTheBoard(t *testing.T) {
	b := boardFromPairs([board.NumCells][2]int{
		{0, 0}, {0, 1}, {0, 2}, {1, 0},
		{1, 1}, {0, 3}, {2, 0}, {1, 3},
		{1, 2}, {2, 1}, {3, 3}, {3, 1},
		{3, 0}, {2, 3}, {3, 2}, {2, 2},
	})
	require.Equal(t, b, canon.Canonicalize(b))

	res := Solve(b, false)
	assert.False(t, res.IsP1Win)
	assert.True(t, res.IsDraw)
	assert.Equal(t, board.Draw, res.Outcome)
	assert.Equal(t, 0, res.BestMove)
	assert.Equal(t, int8(board.NumCells), res.GameDepth)
	assert.Equal(t, 0, res.P1WinsCount)
	assert.Equal(t, 2, res.P2WinsCount)
	assert.Equal(t, 10, res.DrawsCount)
}

// TestKnownBlockadeBoardStallsBeforeFullDepth pins a board where P1's
// best opening leads to P2 being blockaded before the board fills, so
// the game ends short of depth 16.
func TestKnownBlockadeBoardStallsBeforeFullDepth(t *testing.T) {
	b := boardFromPairs([board.NumCells][2]int{
		{0, 0}, {0, 1}, {0, 2}, {1, 3},
		{1, 2}, {2, 2}, {1, 0}, {3, 0},
		{2, 3}, {1, 1}, {2, 1}, {3, 2},
		{3, 3}, {0, 3}, {2, 0}, {3, 1},
	})
	require.Equal(t, b, canon.Canonicalize(b))

	res := Solve(b, false)
	assert.True(t, res.IsP1Win)
	assert.Equal(t, board.Blockade, res.Outcome)
	assert.Equal(t, 1, res.BestMove)
	assert.Equal(t, int8(13), res.GameDepth)
	assert.Less(t, res.GameDepth, int8(board.NumCells))
	assert.Equal(t, 4, res.P1WinsCount)
	assert.Equal(t, 3, res.P2WinsCount)
	assert.Equal(t, 5, res.DrawsCount)
}
