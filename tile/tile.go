// Package tile defines the Niya tile pool: the 16 distinct (plant, poem)
// pairs drawn from two independent 4-valued attributes.
package tile

import "fmt"

// NumValues is the number of distinct values each attribute can take.
const NumValues = 4

// PoolSize is the number of distinct tiles in the pool (NumValues²).
const PoolSize = NumValues * NumValues

// Tile is an unordered-by-construction pair (Plant, Poem); each axis is
// independent of the other, and every (Plant, Poem) combination appears
// exactly once in the pool.
type Tile struct {
	Plant int
	Poem  int
}

// Less reports whether t sorts strictly before o: by Plant, then by Poem.
func (t Tile) Less(o Tile) bool {
	if t.Plant != o.Plant {
		return t.Plant < o.Plant
	}
	return t.Poem < o.Poem
}

// Compatible reports whether two tiles may be played in sequence: they
// share a Plant value or a Poem value.
func (t Tile) Compatible(o Tile) bool {
	return t.Plant == o.Plant || t.Poem == o.Poem
}

// Plants and Poems are short display labels for the two attributes. They
// carry no semantics beyond display; any 4+4 short label set suffices.
var (
	Plants = [NumValues]string{"MAPL", "CHRY", "PINE", "IRIS"}
	Poems  = [NumValues]string{"SUN ", "BIRD", "RAIN", "CLD "}
)

// String renders a tile as "MAPL:SUN ".
func (t Tile) String() string {
	return fmt.Sprintf("%s:%s", Plants[t.Plant], Poems[t.Poem])
}

// Pool returns the 16 distinct tiles in ascending (Plant, Poem) order, i.e.
// the lexicographically-sorted pool used as rank/unrank's base sequence.
func Pool() [PoolSize]Tile {
	var pool [PoolSize]Tile
	i := 0
	for p := 0; p < NumValues; p++ {
		for s := 0; s < NumValues; s++ {
			pool[i] = Tile{Plant: p, Poem: s}
			i++
		}
	}
	return pool
}
