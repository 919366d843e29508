package model

import (
	"sort"

	"github.com/google/uuid"
)

// Position arithmetic for collection entries. The repository runs these on
// row-locked snapshots inside a transaction; keeping them pure makes the
// ordering invariant directly testable.

// SortByPosition orders entries ascending by position. Legacy zero
// positions sort first; ties fall back to insertion time so the order is
// deterministic even on unrepaired data.
func SortByPosition(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Position != entries[j].Position {
			return entries[i].Position < entries[j].Position
		}
		return entries[i].AddedAt.Before(entries[j].AddedAt)
	})
}

// PositionUpdate is a single position write derived from a reorder or
// renumber.
type PositionUpdate struct {
	BookID   uuid.UUID
	Position int
}

// AdjacentSwap computes the two position writes that move bookID one step in
// the given direction within a position-sorted sequence. Returns ok=false
// for a boundary move (topmost up, bottommost down) or an unknown book;
// both are no-ops for the caller.
func AdjacentSwap(sorted []Entry, bookID uuid.UUID, direction MoveDirection) (a, b PositionUpdate, ok bool) {
	idx := -1
	for i, e := range sorted {
		if e.BookID == bookID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return PositionUpdate{}, PositionUpdate{}, false
	}

	target := idx - 1
	if direction == MoveDown {
		target = idx + 1
	}
	if target < 0 || target >= len(sorted) {
		return PositionUpdate{}, PositionUpdate{}, false
	}

	a = PositionUpdate{BookID: sorted[idx].BookID, Position: sorted[target].Position}
	b = PositionUpdate{BookID: sorted[target].BookID, Position: sorted[idx].Position}
	return a, b, true
}

// Renumber assigns dense positions 1..N to a position-sorted sequence,
// returning only the writes for entries whose position actually changes.
// This both closes the gap a removal leaves and repairs legacy zero
// positions.
func Renumber(sorted []Entry) []PositionUpdate {
	var updates []PositionUpdate
	for i, e := range sorted {
		want := i + 1
		if e.Position != want {
			updates = append(updates, PositionUpdate{BookID: e.BookID, Position: want})
		}
	}
	return updates
}

// NextPosition is the append slot for a new entry: current max + 1.
func NextPosition(entries []Entry) int {
	max := 0
	for _, e := range entries {
		if e.Position > max {
			max = e.Position
		}
	}
	return max + 1
}
