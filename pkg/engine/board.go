package engine

// Board holds the 64-cell position and a cached evaluation score. Every
// square always holds exactly one Piece value; empty squares hold NoPiece.
// The board is mutated only by ApplyMove and UndoMove and is reset in place
// by Reset, never reallocated.
type Board struct {
	cells [NumSquares]Piece
	score int
}

// backRank is the piece order of each side's first row in the standard
// starting position.
var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns a board set up with the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset restores the standard starting position in place.
func (b *Board) Reset() {
	for sq := range b.cells {
		b.cells[sq] = NoPiece
	}
	for col := 0; col < 8; col++ {
		b.cells[MakeSquare(0, col)] = MakePiece(White, backRank[col])
		b.cells[MakeSquare(1, col)] = MakePiece(White, Pawn)
		b.cells[MakeSquare(6, col)] = MakePiece(Black, Pawn)
		b.cells[MakeSquare(7, col)] = MakePiece(Black, backRank[col])
	}
	b.score = b.evaluate()
}

// At returns the piece on sq. Out of range squares are a caller bug and
// panic via the array bounds check.
func (b *Board) At(sq Square) Piece {
	return b.cells[sq]
}

// AtCoords returns the piece at (row, col), for renderers that walk the
// board by rank and file.
func (b *Board) AtCoords(row, col int) Piece {
	return b.cells[MakeSquare(row, col)]
}

// Score returns the cached evaluation of the current position. Positive
// favors white.
func (b *Board) Score() int {
	return b.score
}

// ApplyMove moves the piece on from to to and returns whatever was captured
// there (NoPiece if the destination was empty). If promotion is not None the
// promoted piece is written to the destination instead of the moving pawn.
// No legality checking happens here: move legality is the scanner's job and
// this operation trusts its caller.
func (b *Board) ApplyMove(from, to Square, promotion Kind) Piece {
	moving := b.cells[from]
	captured := b.cells[to]
	if promotion != None {
		b.cells[to] = MakePiece(moving.Color, promotion)
	} else {
		b.cells[to] = moving
	}
	b.cells[from] = NoPiece
	b.score = b.evaluate()
	return captured
}

// UndoMove is the exact inverse of ApplyMove: captured is restored on to and
// the piece that moved returns to from, demoted back to a pawn if the move
// was a promotion.
func (b *Board) UndoMove(from, to Square, captured Piece, promotion Kind) {
	moved := b.cells[to]
	if promotion != None {
		moved = MakePiece(moved.Color, Pawn)
	}
	b.cells[from] = moved
	b.cells[to] = captured
	b.score = b.evaluate()
}

// Apply is ApplyMove for a Move value. The returned move carries the
// captured piece so it can be recorded and later undone.
func (b *Board) Apply(m Move) Move {
	m.Captured = b.ApplyMove(m.From, m.To, m.Promotion)
	return m
}

// Undo reverts a move previously returned by Apply.
func (b *Board) Undo(m Move) {
	b.UndoMove(m.From, m.To, m.Captured, m.Promotion)
}
