package engine

// Engine ties the board, the played-game history and the move selector
// together behind the command surface a host drives: NewGame, SelectSquare,
// Move, Undo, Redo, RequestAutoMove and Tick. All state is in memory and is
// owned by the Engine instance; nothing here is shared or global.
//
// The Engine is not safe for concurrent use. Board mutation, history append
// and evaluation are strictly sequential, so a caller serializing access
// (the tcell event loop, a match goroutine) never observes a half-applied
// move.
type Engine struct {
	board   *Board
	history *History

	// searchLog is the selector's scratch store: candidate moves pushed
	// during a scan. It is deliberately a second History instance so
	// hypothetical bookkeeping can never disturb the played-game log.
	searchLog *History

	sel selector
}

func New() *Engine {
	return &Engine{
		board:     NewBoard(),
		history:   NewHistory(),
		searchLog: NewHistory(),
	}
}

// NewGame resets to the standard starting position, clears the history and
// invalidates any scan in progress.
func (e *Engine) NewGame() {
	e.board.Reset()
	e.history.Clear()
	e.searchLog.Clear()
	e.sel.reset()
}

// Board returns the engine's board for read access by renderers.
func (e *Engine) Board() *Board {
	return e.board
}

// History returns the played-game log for read access (move list display).
func (e *Engine) History() *History {
	return e.history
}

// PieceAt reads the piece at (row, col).
func (e *Engine) PieceAt(row, col int) Piece {
	return e.board.AtCoords(row, col)
}

// Score returns the current evaluation, positive favoring white.
func (e *Engine) Score() int {
	return e.board.Score()
}

// PlyCount returns the number of plies on the board.
func (e *Engine) PlyCount() int {
	return e.history.PlyCount()
}

// ColorToMove returns the side to move.
func (e *Engine) ColorToMove() Color {
	return e.history.ColorToMove()
}

// MoveAt returns the played move at the given ply for display.
func (e *Engine) MoveAt(ply int) (Move, bool) {
	return e.history.ReadAt(ply)
}

// LastMove returns the most recently played move, if any.
func (e *Engine) LastMove() (Move, bool) {
	return e.history.ReadAt(e.history.PlyCount() - 1)
}

// Move plays from-to for the side to move after checking it against the
// scanner's destinations for the origin square. It reports whether the move
// was legal and applied. Promotion is chosen by the scanner (queen).
func (e *Engine) Move(from, to Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	p := e.board.At(from)
	if p.Empty() || p.Color != e.history.ColorToMove() {
		return false
	}
	sc := NewTargetScan(e.board, from)
	for {
		m, ok := sc.Next()
		if !ok {
			return false
		}
		if m.To == to {
			e.play(m)
			return true
		}
	}
}

// Undo takes back the last played move. It reports false at ply zero.
func (e *Engine) Undo() bool {
	m, ok := e.history.Undo()
	if !ok {
		return false
	}
	e.board.Undo(m)
	e.sel.reset()
	return true
}

// Redo re-applies the move taken back by the immediately preceding Undo.
func (e *Engine) Redo() bool {
	m, ok := e.history.Redo()
	if !ok {
		return false
	}
	e.board.Apply(m)
	e.sel.reset()
	return true
}

// play applies a scanner-validated move and records it.
func (e *Engine) play(m Move) {
	m = e.board.Apply(m)
	e.history.Record(m)
	e.sel.reset()
}
