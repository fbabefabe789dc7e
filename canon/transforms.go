// Package canon implements the equivalence-group canonicalizer and the
// permutation rank/unrank bijection used to index the 16! board layouts.
package canon

import "github.com/niyagame/niya/board"

// Transform is a fixed permutation of the 16 cell indices: applying it to
// a board B yields S where S[i] = B[Transform[i]].
type Transform [board.NumCells]int

func idx(r, c int) int { return r*board.Dim + c }

// SpatialTransforms are the 8 elements of the dihedral group of the
// square D₄, precomputed once: identity, rotate 90/180/270 clockwise,
// horizontal flip, vertical flip, main-diagonal transpose, anti-diagonal
// transpose.
var SpatialTransforms = buildSpatialTransforms()

func buildSpatialTransforms() [8]Transform {
	var ts [8]Transform
	for r := 0; r < board.Dim; r++ {
		for c := 0; c < board.Dim; c++ {
			n := board.Dim - 1
			ts[0][idx(r, c)] = idx(r, c)               // identity
			ts[1][idx(r, c)] = idx(n-c, r)             // rotate 90 CW
			ts[2][idx(r, c)] = idx(n-r, n-c)           // rotate 180
			ts[3][idx(r, c)] = idx(c, n-r)             // rotate 270 CW
			ts[4][idx(r, c)] = idx(n-r, c)             // horizontal flip (top-bottom mirror)
			ts[5][idx(r, c)] = idx(r, n-c)             // vertical flip (left-right mirror)
			ts[6][idx(r, c)] = idx(c, r)               // main-diagonal transpose
			ts[7][idx(r, c)] = idx(n-c, n-r)           // anti-diagonal transpose
		}
	}
	return ts
}

// Apply returns the board obtained by applying t to b: result[i] = b[t[i]].
func (t Transform) Apply(b board.Board) board.Board {
	var out board.Board
	for i := 0; i < board.NumCells; i++ {
		out[i] = b[t[i]]
	}
	return out
}
