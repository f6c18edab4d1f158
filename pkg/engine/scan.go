package engine

// Scanner enumerates pseudo-legal (from, to) pairs one candidate at a time.
// It is a resumable generator, not a move list: every Step call does bounded
// work, examining at most one candidate destination, and the caller decides
// when to call again. The scanner only ever reads the board, so an
// unfinished scan can be abandoned by dropping it.
//
// Squares are visited in row-major order and each piece's candidates in a
// fixed per-kind order (see the tables below). Search mode's first-move-wins
// policy depends on this order, so it must not change.
type Scanner struct {
	board *Board
	color Color

	sq    Square // scan square; scanDone when the scan is complete
	fixed bool   // targets mode: scan exactly one origin square

	kind Kind // kind of the accepted piece on sq; None before acceptance
	step int  // candidate index for pawn, knight and king
	ray  int  // ray index for sliding pieces
	dist int  // distance along the current ray, starting at 1
}

// scanDone is the 65th scan state signalling completion.
const scanDone = Square(NumSquares)

// Candidate orders. Offsets and rays are (row, col) deltas; rays run right,
// left, up, down and then the diagonals in the same spirit.
var (
	knightOffsets = [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets = [8][2]int{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	rookRays   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopRays = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenRays  = [8][2]int{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
)

// NewScan starts a whole-board scan for one color, from square 0.
func NewScan(b *Board, color Color) *Scanner {
	return &Scanner{board: b, color: color, dist: 1}
}

// NewTargetScan starts a scan fixed to a single origin square, used to
// collect every legal destination of one selected piece. The piece's own
// color is used; scanning an empty square completes immediately.
func NewTargetScan(b *Board, origin Square) *Scanner {
	return &Scanner{board: b, sq: origin, fixed: true, dist: 1}
}

// Done reports whether the scan has visited everything.
func (s *Scanner) Done() bool {
	return s.sq == scanDone
}

// Step advances the scan by one micro-step. It yields at most one legal
// move; ok is false both for non-yielding steps and after completion, so
// callers loop on Done (or use Next) to distinguish the two.
func (s *Scanner) Step() (Move, bool) {
	if s.sq == scanDone {
		return MoveNone, false
	}

	if s.kind == None {
		p := s.board.At(s.sq)
		if p.Empty() || (!s.fixed && p.Color != s.color) {
			s.advanceSquare()
			return MoveNone, false
		}
		s.kind = p.Kind
		s.color = p.Color
	}

	switch s.kind {
	case Pawn:
		return s.stepPawn()
	case Knight:
		return s.stepOffsets(knightOffsets[:])
	case King:
		return s.stepOffsets(kingOffsets[:])
	case Rook:
		return s.stepRays(rookRays[:])
	case Bishop:
		return s.stepRays(bishopRays[:])
	case Queen:
		return s.stepRays(queenRays[:])
	}
	s.advanceSquare()
	return MoveNone, false
}

// Next runs micro-steps until a move is yielded or the scan completes.
// It is the whole-list view of the generator used by synchronous callers;
// tick-driven callers use Step directly.
func (s *Scanner) Next() (Move, bool) {
	for !s.Done() {
		if m, ok := s.Step(); ok {
			return m, true
		}
	}
	return MoveNone, false
}

// stepPawn tries, in order: single push, the two diagonal captures, then
// the initial double push. Each candidate is validated against the board at
// examination time, never precomputed.
func (s *Scanner) stepPawn() (Move, bool) {
	row, col := s.sq.Row(), s.sq.Col()
	dir, home := 1, 1
	if s.color == Black {
		dir, home = -1, 6
	}

	for s.step < 4 {
		i := s.step
		s.step++
		switch i {
		case 0: // single push
			to := offsetSquare(row, col, dir, 0)
			if to != SquareNone && s.board.At(to).Empty() {
				return s.yieldPawn(to), true
			}
		case 1, 2: // captures
			dc := -1
			if i == 2 {
				dc = 1
			}
			to := offsetSquare(row, col, dir, dc)
			if to != SquareNone {
				if p := s.board.At(to); p.Occupied && p.Color != s.color {
					return s.yieldPawn(to), true
				}
			}
		case 3: // double push from the home row
			if row != home {
				continue
			}
			mid := offsetSquare(row, col, dir, 0)
			to := offsetSquare(row, col, 2*dir, 0)
			if mid != SquareNone && to != SquareNone &&
				s.board.At(mid).Empty() && s.board.At(to).Empty() {
				return s.yieldPawn(to), true
			}
		}
	}
	s.advanceSquare()
	return MoveNone, false
}

// yieldPawn builds the pawn move, promoting (always to a queen; choosing
// among promotion pieces is left to a deeper search) on back-rank arrival.
func (s *Scanner) yieldPawn(to Square) Move {
	promo := None
	if to.Row() == 7 || to.Row() == 0 {
		promo = Queen
	}
	return Move{From: s.sq, To: to, Captured: s.board.At(to), Promotion: promo}
}

// stepOffsets cycles knight or king offsets in their fixed order, each
// bounds-checked with row/col arithmetic.
func (s *Scanner) stepOffsets(offsets [][2]int) (Move, bool) {
	row, col := s.sq.Row(), s.sq.Col()
	for s.step < len(offsets) {
		o := offsets[s.step]
		s.step++
		to := offsetSquare(row, col, o[0], o[1])
		if to == SquareNone {
			continue
		}
		if p := s.board.At(to); p.Empty() || p.Color != s.color {
			return Move{From: s.sq, To: to, Captured: p}, true
		}
	}
	s.advanceSquare()
	return MoveNone, false
}

// stepRays walks one ray at a time. A ray continues only while the
// previously examined cell on it was empty, which is what dist encodes:
// after a non-empty cell the scan moves to the next ray, so intermediate
// blockers never need a separate check.
func (s *Scanner) stepRays(rays [][2]int) (Move, bool) {
	row, col := s.sq.Row(), s.sq.Col()
	for s.ray < len(rays) {
		r := rays[s.ray]
		to := offsetSquare(row, col, r[0]*s.dist, r[1]*s.dist)
		if to == SquareNone {
			s.ray++
			s.dist = 1
			continue
		}
		p := s.board.At(to)
		switch {
		case p.Empty():
			s.dist++
			return Move{From: s.sq, To: to}, true
		case p.Color != s.color:
			s.ray++
			s.dist = 1
			return Move{From: s.sq, To: to, Captured: p}, true
		default:
			s.ray++
			s.dist = 1
			return MoveNone, false
		}
	}
	s.advanceSquare()
	return MoveNone, false
}

// advanceSquare moves the scan to the next origin square, or to the done
// sentinel for a fixed-origin scan.
func (s *Scanner) advanceSquare() {
	s.kind = None
	s.step = 0
	s.ray = 0
	s.dist = 1
	if s.fixed {
		s.sq = scanDone
		return
	}
	s.sq++
}

// offsetSquare returns the square at (row+dr, col+dc), or SquareNone when
// the offset leaves the board. Edges are detected on row and col separately
// so a file wrap can never alias a valid square.
func offsetSquare(row, col, dr, dc int) Square {
	r, c := row+dr, col+dc
	if r < 0 || r > 7 || c < 0 || c > 7 {
		return SquareNone
	}
	return MakeSquare(r, c)
}
