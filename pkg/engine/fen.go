package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// FEN renders the position in Forsyth-Edwards notation with the given side
// to move. Castling and en passant are outside this engine's rules, so those
// fields are always "-".
func (b *Board) FEN(toMove Color) string {
	var sb strings.Builder

	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.AtCoords(row, col)
			if p.Empty() {
				empty++
				continue
			}
			if empty != 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(p.Rune())
		}
		if empty != 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row != 0 {
			sb.WriteByte('/')
		}
	}

	if toMove == White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

// FEN renders the engine's position, deriving the side to move from the
// history.
func (e *Engine) FEN() string {
	return e.board.FEN(e.history.ColorToMove())
}

// ParseFEN builds a board from the first two FEN fields. The remaining
// fields are accepted and ignored.
func ParseFEN(fen string) (*Board, Color, error) {
	tokens := strings.Split(fen, " ")
	if len(tokens) < 2 {
		return nil, White, fmt.Errorf("parse fen failed: %q", fen)
	}

	b := &Board{}
	row, col := 7, 0
	for _, ch := range tokens[0] {
		switch {
		case ch == '/':
			if col != 8 {
				return nil, White, fmt.Errorf("parse fen failed: short rank in %q", fen)
			}
			row--
			col = 0
		case unicode.IsDigit(ch):
			col += int(ch - '0')
		default:
			p, ok := pieceFromRune(ch)
			if !ok || row < 0 || col > 7 {
				return nil, White, fmt.Errorf("parse fen failed: %q", fen)
			}
			b.cells[MakeSquare(row, col)] = p
			col++
		}
	}
	if row != 0 || col != 8 {
		return nil, White, fmt.Errorf("parse fen failed: %q", fen)
	}

	var toMove Color
	switch tokens[1] {
	case "w":
		toMove = White
	case "b":
		toMove = Black
	default:
		return nil, White, fmt.Errorf("parse fen failed: side %q", tokens[1])
	}

	b.score = b.evaluate()
	return b, toMove, nil
}
