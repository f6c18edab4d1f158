package engine

// History is the append-only-with-truncation log of played moves. The cursor
// current counts plies currently on the board; max is the high water mark of
// the line, so current <= max always holds. Redo is a single pending slot:
// it is armed by Undo, consumed by one Redo and invalidated by any Record.
//
// The engine owns two of these: the played-game log and a separate scratch
// log for the selector's search bookkeeping. The two never share storage.
type History struct {
	moves   []Move
	current int
	max     int
	pending bool
}

func NewHistory() *History {
	return &History{}
}

// Clear empties the log.
func (h *History) Clear() {
	h.moves = h.moves[:0]
	h.current = 0
	h.max = 0
	h.pending = false
}

// Record appends a played move at the cursor, truncating any undone tail.
func (h *History) Record(m Move) {
	h.moves = append(h.moves[:h.current], m)
	h.current++
	h.max = h.current
	h.pending = false
}

// Undo steps the cursor back one ply and returns the move to be inverted.
// ok is false at ply zero.
func (h *History) Undo() (Move, bool) {
	if h.current == 0 {
		return MoveNone, false
	}
	h.current--
	h.pending = true
	return h.moves[h.current], true
}

// Redo re-applies the most recently undone move. Only one redo is pending at
// a time: it must immediately follow an Undo, and any Record discards it.
func (h *History) Redo() (Move, bool) {
	if !h.pending || h.current >= h.max {
		return MoveNone, false
	}
	m := h.moves[h.current]
	h.current++
	h.pending = false
	return m, true
}

// ReadAt returns the move at the given ply without moving the cursor.
// ok is false outside [0, PlyCount).
func (h *History) ReadAt(ply int) (Move, bool) {
	if ply < 0 || ply >= h.current {
		return MoveNone, false
	}
	return h.moves[ply], true
}

// PlyCount returns the number of plies currently on the board.
func (h *History) PlyCount() int {
	return h.current
}

// MaxPly returns the length of the line including undone moves.
func (h *History) MaxPly() int {
	return h.max
}

// ColorToMove derives the side to move from ply parity; white moves on even
// plies.
func (h *History) ColorToMove() Color {
	if h.current%2 == 0 {
		return White
	}
	return Black
}
