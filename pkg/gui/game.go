package gui

import (
	"github.com/gdamore/tcell/v2"

	"stepchess/pkg/engine"
)

// GameState encapsulates everything needed to run the game
type GameState struct {
	S        tcell.Screen   // Screen
	Input    *Input         // Input prompt
	Eng      *engine.Engine // Engine owning board, history and selector
	Theme    Theme          // Theme
	Msg      string         // Message line under the prompt
	Thinking bool           // An auto move search is in progress
}

// NewGameState wires a fresh engine to a screen with the default theme.
func NewGameState(s tcell.Screen) *GameState {
	return &GameState{
		S:     s,
		Input: NewInput(),
		Eng:   engine.New(),
		Theme: ThemeBasic,
	}
}
