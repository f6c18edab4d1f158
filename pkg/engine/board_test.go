package engine

import "testing"

func boardsEqual(a, b *Board) bool {
	for sq := Square(0); sq < NumSquares; sq++ {
		if a.At(sq) != b.At(sq) {
			return false
		}
	}
	return a.Score() == b.Score()
}

func TestInitialPosition(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		sq   Square
		want Piece
	}{
		{0, MakePiece(White, Rook)},
		{1, MakePiece(White, Knight)},
		{2, MakePiece(White, Bishop)},
		{3, MakePiece(White, Queen)},
		{4, MakePiece(White, King)},
		{7, MakePiece(White, Rook)},
		{8, MakePiece(White, Pawn)},
		{15, MakePiece(White, Pawn)},
		{27, NoPiece},
		{36, NoPiece},
		{48, MakePiece(Black, Pawn)},
		{56, MakePiece(Black, Rook)},
		{59, MakePiece(Black, Queen)},
		{60, MakePiece(Black, King)},
		{63, MakePiece(Black, Rook)},
	}
	for _, tt := range tests {
		if got := b.At(tt.sq); got != tt.want {
			t.Errorf("square %v: got %q, want %q", tt.sq, got, tt.want)
		}
	}

	for sq := Square(16); sq < 48; sq++ {
		if !b.At(sq).Empty() {
			t.Errorf("square %v: want empty, got %q", sq, b.At(sq))
		}
	}

	if b.Score() != 0 {
		t.Errorf("initial score = %d, want 0", b.Score())
	}
}

func TestApplyUndoRoundTrip(t *testing.T) {
	b := NewBoard()
	before := *b

	sc := NewScan(b, White)
	n := 0
	for {
		m, ok := sc.Next()
		if !ok {
			break
		}
		n++
		applied := b.Apply(m)
		b.Undo(applied)
		if !boardsEqual(b, &before) {
			t.Fatalf("apply/undo of %v did not restore the position", m)
		}
	}
	if n == 0 {
		t.Fatal("no moves generated from the initial position")
	}
}

func TestApplyMoveCapture(t *testing.T) {
	b, _, err := ParseFEN("8/8/8/8/8/2p5/8/3Q4 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	captured := b.ApplyMove(3, 18, None) // d1xc3
	if captured != MakePiece(Black, Pawn) {
		t.Errorf("captured = %q, want black pawn", captured)
	}
	if b.At(18) != MakePiece(White, Queen) {
		t.Errorf("destination = %q, want white queen", b.At(18))
	}
	if !b.At(3).Empty() {
		t.Errorf("origin still occupied by %q", b.At(3))
	}

	b.UndoMove(3, 18, captured, None)
	if b.At(3) != MakePiece(White, Queen) || b.At(18) != MakePiece(Black, Pawn) {
		t.Error("undo did not restore queen and pawn")
	}
}

func TestPromotionApplyUndo(t *testing.T) {
	b, _, err := ParseFEN("8/P7/8/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	from, to := MakeSquare(6, 0), MakeSquare(7, 0)
	scoreBefore := b.Score()

	b.ApplyMove(from, to, Queen)
	if b.At(to) != MakePiece(White, Queen) {
		t.Errorf("promoted square = %q, want white queen", b.At(to))
	}

	b.UndoMove(from, to, NoPiece, Queen)
	if b.At(from) != MakePiece(White, Pawn) {
		t.Errorf("after undo origin = %q, want white pawn", b.At(from))
	}
	if !b.At(to).Empty() {
		t.Errorf("after undo destination = %q, want empty", b.At(to))
	}
	if b.Score() != scoreBefore {
		t.Errorf("after undo score = %d, want %d", b.Score(), scoreBefore)
	}
}

func TestResetAfterMoves(t *testing.T) {
	b := NewBoard()
	b.ApplyMove(8, 24, None)
	b.ApplyMove(1, 18, None)
	b.Reset()
	if !boardsEqual(b, NewBoard()) {
		t.Error("reset did not restore the starting position")
	}
}
