package gui

import "testing"

func TestInput(t *testing.T) {
	in := NewInput()
	for _, r := range "e2e4" {
		in.Append(r)
	}
	if in.Current() != "e2e4" || in.Length() != 4 {
		t.Errorf("got %q (%d)", in.Current(), in.Length())
	}

	in.Backspace()
	if in.Current() != "e2e" {
		t.Errorf("after backspace: %q", in.Current())
	}

	if got := in.Pop(); got != "e2e" {
		t.Errorf("Pop() = %q", got)
	}
	if in.Length() != 0 {
		t.Error("Pop should clear the input")
	}

	in.Backspace() // empty input is fine
}
