package engine

import "testing"

func TestEngineAutoMove(t *testing.T) {
	e := New()
	e.RequestAutoMove(White)
	if !e.Busy() {
		t.Fatal("engine not busy after auto move request")
	}
	e.RunToIdle()

	if e.PlyCount() != 1 {
		t.Fatalf("ply count = %d, want 1", e.PlyCount())
	}
	m, ok := e.LastMove()
	if !ok || m.String() != "b1c3" {
		t.Errorf("first auto move = %v, want b1c3", m)
	}
	if e.ColorToMove() != Black {
		t.Error("black not to move after white's auto move")
	}

	// Black's scan also starts at square zero, so the a7 pawn is reached
	// before either knight.
	e.RequestAutoMove(Black)
	e.RunToIdle()
	m, ok = e.LastMove()
	if !ok || m.String() != "a7a6" {
		t.Errorf("black auto move = %v, want a7a6", m)
	}
}

func TestEngineTickBounded(t *testing.T) {
	e := New()
	e.RequestAutoMove(White)
	// A full-board scan is bounded, so the search must settle well within
	// 64 squares times a small constant of candidates.
	for i := 0; i < 4096; i++ {
		if !e.Tick() {
			break
		}
	}
	if e.Busy() {
		t.Fatal("search did not terminate within the tick bound")
	}
}

func TestEngineTargetsQuery(t *testing.T) {
	e := New()
	e.SelectSquare(8)
	e.RunToIdle()
	if got, want := e.Targets(), maskOf(16, 24); got != want {
		t.Errorf("targets = %064b, want %064b", got, want)
	}
	if e.TargetOrigin() != 8 {
		t.Errorf("target origin = %v, want a2", e.TargetOrigin())
	}
}

func TestEngineManualMove(t *testing.T) {
	e := New()
	if !e.Move(12, 28) { // e2e4
		t.Fatal("e2e4 rejected")
	}
	if e.Move(28, 36) { // white piece again, black to move
		t.Error("out of turn move accepted")
	}
	if e.Move(50, 45) { // c7 pawn cannot reach f6
		t.Error("illegal pawn move accepted")
	}
	if !e.Move(51, 35) { // d7d5
		t.Fatal("d7d5 rejected")
	}
	if e.PlyCount() != 2 {
		t.Errorf("ply count = %d, want 2", e.PlyCount())
	}
}

func TestEngineUndoRedo(t *testing.T) {
	e := New()
	start := *e.Board()

	e.Move(12, 28)
	e.Move(52, 36)
	scoreAfter := e.Score()

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if e.PlyCount() != 1 || e.ColorToMove() != Black {
		t.Errorf("after undo: ply=%d toMove=%v", e.PlyCount(), e.ColorToMove())
	}
	if !e.Redo() {
		t.Fatal("redo failed")
	}
	if e.PlyCount() != 2 || e.Score() != scoreAfter {
		t.Errorf("after redo: ply=%d score=%d want score %d", e.PlyCount(), e.Score(), scoreAfter)
	}

	e.Undo()
	e.Undo()
	if !boardsEqual(e.Board(), &start) {
		t.Error("two undos did not restore the starting position")
	}
	if e.Undo() {
		t.Error("undo past ply zero succeeded")
	}
}

func TestEngineMoveInvalidatesTargets(t *testing.T) {
	e := New()
	e.SelectSquare(8)
	e.RunToIdle()
	if e.Targets() == 0 {
		t.Fatal("no targets for a2")
	}
	e.Move(12, 28)
	if e.Targets() != 0 {
		t.Error("targets mask survived a played move")
	}
}

func TestEngineNewGame(t *testing.T) {
	e := New()
	e.Move(12, 28)
	e.SelectSquare(1)
	e.NewGame()
	if e.Busy() || e.PlyCount() != 0 || e.Targets() != 0 {
		t.Error("NewGame left state behind")
	}
	if !boardsEqual(e.Board(), NewBoard()) {
		t.Error("NewGame did not reset the board")
	}
}

func TestEngineNoMoveAvailable(t *testing.T) {
	// A black pawn on the first rank has nowhere to go; the scan for
	// black finds nothing and the engine goes idle without a move.
	b, _, err := ParseFEN("8/8/8/8/8/8/8/p7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	e := New()
	e.board = b
	e.RequestAutoMove(Black)
	e.RunToIdle()
	if e.PlyCount() != 0 {
		t.Errorf("ply count = %d, want 0 (no legal move)", e.PlyCount())
	}
}
