package canon

import (
	"github.com/niyagame/niya/board"
	"github.com/niyagame/niya/tile"
)

// relabel builds the board obtained from s by relabeling Plant through piA
// and Poem through piB, optionally swapping which attribute feeds which
// axis first (the attribute-swap element of the equivalence group).
func relabel(s board.Board, piA, piB Perm4, swap bool) board.Board {
	var out board.Board
	for i := 0; i < board.NumCells; i++ {
		t := s[i]
		if !swap {
			out[i] = tile.Tile{Plant: piA[t.Plant], Poem: piB[t.Poem]}
		} else {
			out[i] = tile.Tile{Plant: piA[t.Poem], Poem: piB[t.Plant]}
		}
	}
	return out
}

// Canonicalize returns the lexicographically-smallest image of b across
// the full 9,216-element equivalence group G: 8 spatial transforms × 24
// relabelings of Plant × 24 relabelings of Poem × the 2-element
// attribute-swap. This is the straightforward brute-force algorithm; see
// CanonicalizeFast for an accelerated variant that must agree with it
// byte-for-byte.
func Canonicalize(b board.Board) board.Board {
	best := b
	for _, t := range SpatialTransforms {
		s := t.Apply(b)
		for _, piA := range AttrPerms {
			for _, piB := range AttrPerms {
				if c := relabel(s, piA, piB, false); c.Less(best) {
					best = c
				}
				if c := relabel(s, piA, piB, true); c.Less(best) {
					best = c
				}
			}
		}
	}
	return best
}

// CanonicalizeFast computes the same result as Canonicalize but bails out
// of each candidate's construction as soon as a prefix comparison against
// the current best is decided, instead of always building and comparing
// full 16-tile sequences. It must return byte-for-byte identical boards to
// Canonicalize for every input; canon_test.go asserts this directly.
func CanonicalizeFast(b board.Board) board.Board {
	best := b
	for _, t := range SpatialTransforms {
		s := t.Apply(b)
		for _, piA := range AttrPerms {
			for _, piB := range AttrPerms {
				if c, ok := lessCandidate(s, piA, piB, false, best); ok {
					best = c
				}
				if c, ok := lessCandidate(s, piA, piB, true, best); ok {
					best = c
				}
			}
		}
	}
	return best
}

// lessCandidate builds the relabeled image of s under (piA, piB, swap)
// only as far as needed to decide whether it is strictly less than best;
// once a differing cell proves the comparison either way, the remaining
// cells are filled without further comparison (if the candidate is
// winning) or the function returns immediately (if it cannot win).
func lessCandidate(s board.Board, piA, piB Perm4, swap bool, best board.Board) (board.Board, bool) {
	var c board.Board
	cellAt := func(i int) tile.Tile {
		t := s[i]
		if !swap {
			return tile.Tile{Plant: piA[t.Plant], Poem: piB[t.Poem]}
		}
		return tile.Tile{Plant: piA[t.Poem], Poem: piB[t.Plant]}
	}
	for i := 0; i < board.NumCells; i++ {
		c[i] = cellAt(i)
		if c[i] == best[i] {
			continue
		}
		if !c[i].Less(best[i]) {
			// This candidate cannot beat best; no need to finish building it.
			return c, false
		}
		// c[i] < best[i]: the rest of the sequence is irrelevant to the
		// comparison, so finish filling it without further comparisons.
		for j := i + 1; j < board.NumCells; j++ {
			c[j] = cellAt(j)
		}
		return c, true
	}
	return c, false // identical to best
}

// IsCanonical8 checks the cheap, symmetry-only necessary (not sufficient)
// condition: whether b is the lex-min among its 8 spatial images. This is
// weaker than full Canonicalize (which also ranges over the 576 attribute
// relabelings and the attribute swap); use it only to detect non-canonical
// forms quickly, never as a substitute for Canonicalize when a unique
// representative is required.
func IsCanonical8(b board.Board) bool {
	for _, t := range SpatialTransforms {
		if s := t.Apply(b); s.Less(b) {
			return false
		}
	}
	return true
}
