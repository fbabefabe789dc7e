package solve

import "github.com/niyagame/niya/board"

// ttKey is the transposition-table key: the two players' placement masks,
// the previous move's cell index, and whose turn it is. The board layout
// itself is not part of the key — a TranspositionTable is scoped to a
// single top-level solve over one fixed board, recreated fresh per solve.
type ttKey struct {
	p1Mask uint16
	p2Mask uint16
	last   int8
	p1Move bool
}

// ttValue is the cached (score, outcome, depth) triple for a node.
type ttValue struct {
	score   int8
	outcome board.Outcome
	depth   int8
}

// TranspositionTable memoizes minimax node values keyed by (p1Mask, p2Mask,
// last, p1ToMove). Only exact values are ever stored — entries that were
// the product of an alpha-beta cutoff, or whose score fell at or outside
// the node's entry window (a bound, not the true value), are never
// cached, so every lookup
// hit is trustworthy regardless of the window it's reused under (see
// DESIGN.md for the rationale).
type TranspositionTable struct {
	entries map[ttKey]ttValue
	hits    uint64
	lookups uint64
}

// NewTranspositionTable creates an empty table, sized for a typical
// single-board solve's reachable-state count.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[ttKey]ttValue, 4096)}
}

func (t *TranspositionTable) lookup(k ttKey) (ttValue, bool) {
	t.lookups++
	v, ok := t.entries[k]
	if ok {
		t.hits++
	}
	return v, ok
}

func (t *TranspositionTable) store(k ttKey, v ttValue) {
	t.entries[k] = v
}

// Stats returns lookup/hit counters, useful for diagnostics logging.
func (t *TranspositionTable) Stats() (lookups, hits uint64) {
	return t.lookups, t.hits
}
