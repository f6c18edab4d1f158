package engine

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"initial position", InitialFEN, 0},
		{"lone white pawn", "8/8/8/8/8/8/P7/8 w - - 0 1", 11},
		{"lone black pawn", "8/8/8/8/8/8/p7/8 w - - 0 1", -11},
		// Two pawns on one file count the file once.
		{"doubled white pawns", "8/P7/8/8/8/8/P7/8 w - - 0 1", 21},
		{"white pawns on two files", "8/8/8/8/8/8/PP6/8 w - - 0 1", 22},
		{"queen for rook", "8/8/8/8/8/8/8/Q2r4 w - - 0 1", 20},
		{"kings only", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
	}
	for _, tt := range tests {
		b, _, err := ParseFEN(tt.fen)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got := b.Score(); got != tt.want {
			t.Errorf("%s: score = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestEvaluateTracksMutation(t *testing.T) {
	b, _, err := ParseFEN("8/8/8/8/8/1p6/Q7/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	// Queen 70 vs pawn 10 plus the pawn's file term.
	if got := b.Score(); got != 70-10-1 {
		t.Fatalf("score before capture = %d, want 59", got)
	}
	captured := b.ApplyMove(MakeSquare(1, 0), MakeSquare(2, 1), None)
	if got := b.Score(); got != 70 {
		t.Errorf("score after capture = %d, want 70", got)
	}
	b.UndoMove(MakeSquare(1, 0), MakeSquare(2, 1), captured, None)
	if got := b.Score(); got != 59 {
		t.Errorf("score after undo = %d, want 59", got)
	}
}
