package engine

// selector is the scan driver: IDLE until a search or targets request
// arrives, SCANNING while ticks advance the oracle, back to IDLE on
// completion. Search mode stops at the first legal move found and plays it;
// targets mode runs its single origin square to exhaustion and accumulates
// the destination mask.
type selector struct {
	state   selectorState
	scan    *Scanner
	origin  Square
	targets uint64
}

type selectorState int

const (
	selIdle selectorState = iota
	selSearching
	selTargeting
)

func (s *selector) reset() {
	s.state = selIdle
	s.scan = nil
	s.origin = SquareNone
	s.targets = 0
}

// RequestAutoMove starts a one-ply search for the given color. The first
// legal move the scan yields is played; if the scan completes without a
// yield the engine returns to idle with no move (no stalemate detection).
func (e *Engine) RequestAutoMove(c Color) {
	e.sel.reset()
	e.searchLog.Clear()
	e.sel.state = selSearching
	e.sel.scan = NewScan(e.board, c)
}

// SelectSquare starts a targets query for the piece on sq: a fixed-origin
// scan whose legal destinations are accumulated into the targets mask.
func (e *Engine) SelectSquare(sq Square) {
	e.sel.reset()
	e.searchLog.Clear()
	e.sel.state = selTargeting
	e.sel.origin = sq
	e.sel.scan = NewTargetScan(e.board, sq)
}

// Busy reports whether a scan is in progress. The host keeps ticking while
// the engine is busy.
func (e *Engine) Busy() bool {
	return e.sel.state != selIdle
}

// Targets returns the destination mask of the most recent SelectSquare
// query. It is transient: any applied move or new query invalidates it.
func (e *Engine) Targets() uint64 {
	return e.sel.targets
}

// TargetOrigin returns the origin square of the current targets mask, or
// SquareNone.
func (e *Engine) TargetOrigin() Square {
	return e.sel.origin
}

// Tick advances the active scan by exactly one micro-step and reports
// whether the engine is still busy. Idle ticks are no-ops, so a host may
// drive Tick from a timer unconditionally.
func (e *Engine) Tick() bool {
	switch e.sel.state {
	case selSearching:
		m, ok := e.sel.scan.Step()
		if ok {
			e.searchLog.Record(m)
			e.play(m)
			return false
		}
		if e.sel.scan.Done() {
			e.sel.state = selIdle
			e.sel.scan = nil
		}
	case selTargeting:
		m, ok := e.sel.scan.Step()
		if ok {
			// Hypothetical push/pop on the scratch log; a deeper
			// search would examine the position between the two.
			e.searchLog.Record(m)
			e.searchLog.Undo()
			e.sel.targets |= m.To.Bit()
		}
		if e.sel.scan.Done() {
			e.sel.state = selIdle
			e.sel.scan = nil
		}
	}
	return e.sel.state != selIdle
}

// RunToIdle ticks until the engine goes idle. Hosts that animate thinking
// use Tick; synchronous callers (tests, the network match) use this.
func (e *Engine) RunToIdle() {
	for e.Tick() {
	}
}
