package engine

import (
	"sort"
	"testing"
)

// collectTargets runs a fixed-origin scan to completion and returns the
// destination mask.
func collectTargets(b *Board, origin Square) uint64 {
	var mask uint64
	sc := NewTargetScan(b, origin)
	for {
		m, ok := sc.Next()
		if !ok {
			return mask
		}
		mask |= m.To.Bit()
	}
}

func maskOf(squares ...Square) uint64 {
	var mask uint64
	for _, sq := range squares {
		mask |= sq.Bit()
	}
	return mask
}

func popcount(mask uint64) int {
	n := 0
	for mask != 0 {
		mask &= mask - 1
		n++
	}
	return n
}

func TestPawnTargetsOpening(t *testing.T) {
	b := NewBoard()
	// a2: single and double push only.
	got := collectTargets(b, 8)
	want := maskOf(16, 24)
	if got != want {
		t.Errorf("a2 targets = %064b, want %064b", got, want)
	}
	if popcount(got) != 2 {
		t.Errorf("a2 target count = %d, want 2", popcount(got))
	}
}

func TestKnightTargetsOpening(t *testing.T) {
	b := NewBoard()
	got := collectTargets(b, 1) // b1
	want := maskOf(16, 18)     // a3, c3
	if got != want {
		t.Errorf("b1 targets = %064b, want %064b", got, want)
	}
}

func TestBlockedPiecesOpening(t *testing.T) {
	b := NewBoard()
	for _, sq := range []Square{0, 2, 3, 4, 5, 7} { // Ra1 Bc1 Qd1 Ke1 Bf1 Rh1
		if got := collectTargets(b, sq); got != 0 {
			t.Errorf("square %v targets = %064b, want none", sq, got)
		}
	}
}

func TestRookBlocking(t *testing.T) {
	// White rook a1, black rook d1: two quiet squares and one capture
	// along the rank, nothing beyond the blocker, the full a-file above.
	b, _, err := ParseFEN("8/8/8/8/8/8/8/R2r4 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	got := collectTargets(b, 0)
	want := maskOf(1, 2, 3, 8, 16, 24, 32, 40, 48, 56)
	if got != want {
		t.Errorf("rook targets = %064b, want %064b", got, want)
	}

	// Same rank blocked by a friendly piece: no capture square.
	b2, _, err := ParseFEN("8/8/8/8/8/8/8/R2R4 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	got2 := collectTargets(b2, 0)
	want2 := maskOf(1, 2, 8, 16, 24, 32, 40, 48, 56)
	if got2 != want2 {
		t.Errorf("rook targets = %064b, want %064b", got2, want2)
	}
}

func TestPawnCaptures(t *testing.T) {
	// White pawn d4 with black pieces on c5 and e5 and a blocker on d5.
	b, _, err := ParseFEN("8/8/8/2pPp3/3P4/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	got := collectTargets(b, MakeSquare(3, 3))
	want := maskOf(MakeSquare(4, 2), MakeSquare(4, 4))
	if got != want {
		t.Errorf("pawn targets = %064b, want %064b", got, want)
	}
}

func TestBlackPawnDirection(t *testing.T) {
	b := NewBoard()
	got := collectTargets(b, 48) // a7
	want := maskOf(40, 32)       // a6, a5
	if got != want {
		t.Errorf("a7 targets = %064b, want %064b", got, want)
	}
}

func TestPromotionCandidate(t *testing.T) {
	b, _, err := ParseFEN("8/P7/8/8/8/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	sc := NewTargetScan(b, MakeSquare(6, 0))
	m, ok := sc.Next()
	if !ok {
		t.Fatal("no move for promoting pawn")
	}
	if m.To != MakeSquare(7, 0) || m.Promotion != Queen {
		t.Errorf("promotion move = %v promo %v, want a8 queen", m, m.Promotion)
	}
}

func TestQueenTargetsCenter(t *testing.T) {
	b, _, err := ParseFEN("8/8/8/8/3Q4/8/8/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	got := collectTargets(b, MakeSquare(3, 3))
	if popcount(got) != 27 {
		t.Errorf("queen on empty board has %d targets, want 27", popcount(got))
	}
}

func TestKingTargetsCorner(t *testing.T) {
	b, _, err := ParseFEN("8/8/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	got := collectTargets(b, 0)
	want := maskOf(1, 8, 9)
	if got != want {
		t.Errorf("king targets = %064b, want %064b", got, want)
	}
}

func TestEmptySquareScanCompletes(t *testing.T) {
	b := NewBoard()
	sc := NewTargetScan(b, MakeSquare(3, 3))
	if _, ok := sc.Next(); ok {
		t.Error("empty origin yielded a move")
	}
	if !sc.Done() {
		t.Error("empty origin scan not done")
	}
}

// TestScanOrder locks down the order contract: squares row major from a1,
// per-piece candidates in their fixed sequence. First-move-wins search
// depends on this order.
func TestScanOrder(t *testing.T) {
	b := NewBoard()
	sc := NewScan(b, White)

	var first []string
	for len(first) < 6 {
		m, ok := sc.Next()
		if !ok {
			break
		}
		first = append(first, m.String())
	}
	// The knights yield before any pawn; each knight's first offset is
	// (+2,+1), and a2's single push precedes its double push.
	want := []string{"b1c3", "b1a3", "g1h3", "g1f3", "a2a3", "a2a4"}
	for i := range want {
		if first[i] != want[i] {
			t.Fatalf("move %d = %s, want %s (order %v)", i, first[i], want[i], first)
		}
	}
}

func TestOpeningMoveCount(t *testing.T) {
	b := NewBoard()
	for _, c := range []Color{White, Black} {
		var moves []string
		sc := NewScan(b, c)
		for {
			m, ok := sc.Next()
			if !ok {
				break
			}
			moves = append(moves, m.String())
		}
		if len(moves) != 20 {
			sort.Strings(moves)
			t.Errorf("%v has %d opening moves, want 20: %v", c, len(moves), moves)
		}
	}
}

// TestStepIsResumable checks that interleaving unrelated board reads with
// micro-steps does not disturb the scan, and that a scan can be abandoned
// and restarted cleanly.
func TestStepIsResumable(t *testing.T) {
	b := NewBoard()
	sc := NewScan(b, White)

	var stepped []string
	for !sc.Done() {
		m, ok := sc.Step()
		_ = b.At(27)
		if ok {
			stepped = append(stepped, m.String())
		}
	}

	var direct []string
	sc2 := NewScan(b, White)
	for {
		m, ok := sc2.Next()
		if !ok {
			break
		}
		direct = append(direct, m.String())
	}

	if len(stepped) != len(direct) {
		t.Fatalf("stepped scan found %d moves, direct %d", len(stepped), len(direct))
	}
	for i := range direct {
		if stepped[i] != direct[i] {
			t.Errorf("move %d: stepped %s, direct %s", i, stepped[i], direct[i])
		}
	}
}
