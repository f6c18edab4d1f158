package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"stepchess/pkg/engine"
)

const (
	leftMargin        = 4
	topMargin         = 4
	numOfSquaresInRow = 8
)

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// pieceRune maps a piece to its chess glyph
func pieceRune(p engine.Piece) rune {
	white := [...]rune{engine.Pawn: '♙', engine.Knight: '♘', engine.Bishop: '♗',
		engine.Rook: '♖', engine.Queen: '♕', engine.King: '♔'}
	black := [...]rune{engine.Pawn: '♟', engine.Knight: '♞', engine.Bishop: '♝',
		engine.Rook: '♜', engine.Queen: '♛', engine.King: '♚'}
	if p.Color == engine.White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// stylePiece applies the theme's style to a piece based upon its color
func stylePiece(p engine.Piece, sqBg tcell.Color, t Theme) tcell.Style {
	pieceStyle := tcell.StyleDefault.Background(sqBg)
	if p.Color == engine.White {
		return pieceStyle.Foreground(t.White)
	}
	return pieceStyle.Foreground(t.Black)
}

// squareBg returns the theme's color corresponding to the square
func squareBg(sq engine.Square, t Theme) tcell.Color {
	if (sq.Row()+sq.Col())%2 == 0 {
		return t.SquareDark
	}
	return t.SquareLight
}

// drawSquare draws a board square and its corresponding piece
func drawSquare(s tcell.Screen, col, row int, p engine.Piece, sqBg tcell.Color, t Theme) {
	if p.Empty() {
		// Fill two columns wide to make it square
		s.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(sqBg))
		s.SetContent(col+1, row, ' ', nil, tcell.StyleDefault.Background(sqBg))
	} else {
		pieceStyle := stylePiece(p, sqBg, t)
		s.SetContent(col, row, pieceRune(p), nil, pieceStyle)
		s.SetContent(col+1, row, ' ', nil, tcell.StyleDefault.Background(sqBg))
	}
}

// drawMoveLabel displays the side to move above the board
func drawMoveLabel(s tcell.Screen, eng *engine.Engine, thinking bool, t Theme) {
	label := " White to Move "
	if eng.ColorToMove() == engine.Black {
		label = " Black to Move "
	}
	if thinking {
		label = " Thinking ...  "
	}
	labelStyle := tcell.StyleDefault.Background(t.MoveLabelBg).Foreground(t.MoveLabelFg)
	drawText(s, leftMargin+2, topMargin-2, labelStyle, label)
}

// DrawMsgLabel displays the current message from the command
func DrawMsgLabel(s tcell.Screen, msg string, t Theme) {
	topMargin := topMargin + 12
	labelStyle := tcell.StyleDefault.Foreground(t.Msg)
	drawText(s, leftMargin, topMargin, labelStyle, msg)
}

// drawBoard draws the board on the screen
func drawBoard(s tcell.Screen, eng *engine.Engine, t Theme) {
	targets := eng.Targets()
	origin := eng.TargetOrigin()
	last, hasLast := eng.LastMove()

	row := topMargin
	// Step through the ranks starting with the top row
	for r := 7; r >= 0; r-- {
		col := leftMargin
		// Rank indicator to the left of the squares
		rankStyle := tcell.StyleDefault.Foreground(t.Rank)
		drawRune(s, col, row, rankStyle, rune('1'+r))
		col += 2

		for f := 0; f < numOfSquaresInRow; f++ {
			sq := engine.MakeSquare(r, f)
			p := eng.Board().At(sq)
			sqBg := squareBg(sq, t)

			if hasLast && (sq == last.From || sq == last.To) {
				sqBg = t.SquareHigh
			}
			if sq == origin || targets&sq.Bit() != 0 {
				sqBg = t.SquareTarget
			}

			drawSquare(s, col, row, p, sqBg, t)
			col += 2
		}
		row++
	}
	fileStyle := tcell.StyleDefault.Foreground(t.File)
	drawText(s, leftMargin+2, row, fileStyle, "a b c d e f g h")
}

// drawScore displays the evaluation of the current position
func drawScore(s tcell.Screen, eng *engine.Engine, t Theme) {
	topMargin := topMargin + 14
	scoreStyle := tcell.StyleDefault.Foreground(t.Score)
	score := fmt.Sprintf("eval=%+d ply=%-6d", eng.Score(), eng.PlyCount())
	drawText(s, leftMargin, topMargin, scoreStyle, score)
}

// drawScoreCell draws a cell of the score meter
func drawScoreCell(s tcell.Screen, score, idx int, t Theme) {
	block := '█'
	// At 8 start at top margin moving down as idx decreases
	ypos := topMargin - idx + 8

	// One block per ten points of score, clamped to the meter. White fills
	// upward from the middle, black fills downward.
	level := score / 10
	if level > 4 {
		level = 4
	} else if level < -4 {
		level = -4
	}

	d := idx - 4
	lit := (level > 0 && d >= 1 && d <= level) || (level < 0 && d <= 0 && d > level)

	style := tcell.StyleDefault.Foreground(t.MeterBase)
	switch {
	case lit && level > 0:
		style = tcell.StyleDefault.Foreground(t.MeterWin)
	case lit:
		style = tcell.StyleDefault.Foreground(t.MeterLose)
	case d == 0 && level == 0:
		style = tcell.StyleDefault.Foreground(t.MeterNeutral)
	}
	drawRune(s, leftMargin+20, ypos, style, block)
}

// drawScoreMeter displays a graphical representation of the score
func drawScoreMeter(s tcell.Screen, score int, t Theme) {
	for i := 8; i > 0; i-- {
		drawScoreCell(s, score, i, t)
	}
}

// drawPrompt draws the prompt
func drawPrompt(s tcell.Screen, i *Input, t Theme) {
	topMargin := topMargin + 11
	promptStyle := tcell.StyleDefault.Foreground(t.Prompt)
	drawRune(s, leftMargin, topMargin, promptStyle, '❯')
	inputStyle := tcell.StyleDefault.Foreground(t.Input)
	drawText(s, leftMargin+2, topMargin, inputStyle, i.Current())
	s.ShowCursor(leftMargin+2+i.Length(), topMargin)
}

// drawMoves displays recent moves
func drawMoves(s tcell.Screen, eng *engine.Engine, t Theme) {
	leftMargin := leftMargin + 22
	boxStyle := tcell.StyleDefault.Foreground(t.MoveBox)
	drawText(s, leftMargin, topMargin, boxStyle, "┏━━━━━━━━━━━━━━━━━━━━━┓")
	for i := 0; i < 5; i++ {
		idx, white, black := moveIdx(eng, i)
		row := fmt.Sprintf("┃ %-3v %-7v %-7v ┃", idx, white, black)
		drawText(s, leftMargin, topMargin+i+1, boxStyle, row)
	}
	drawText(s, leftMargin, topMargin+6, boxStyle, "┗━━━━━━━━━━━━━━━━━━━━━┛")
}

// moveIdx gets the move pair at the requested display row windowed by the
// number of rows capable of being displayed at once (5 at this moment)
func moveIdx(eng *engine.Engine, idx int) (string, string, string) {
	pairs := (eng.PlyCount() + 1) / 2
	offset := 0
	if pairs > 5 {
		offset = pairs - 5
	}
	pair := idx + offset
	if pair >= pairs {
		return "", "", ""
	}

	white, black := "", ""
	if m, ok := eng.MoveAt(pair * 2); ok {
		white = m.String()
	}
	if m, ok := eng.MoveAt(pair*2 + 1); ok {
		black = m.String()
	}
	return fmt.Sprintf("%v.", pair+1), white, black
}

// Render draws the screen
func Render(gs *GameState) {
	gs.S.Clear()
	drawMoveLabel(gs.S, gs.Eng, gs.Thinking, gs.Theme)
	drawBoard(gs.S, gs.Eng, gs.Theme)
	drawPrompt(gs.S, gs.Input, gs.Theme)
	DrawMsgLabel(gs.S, gs.Msg, gs.Theme)
	drawScore(gs.S, gs.Eng, gs.Theme)
	drawScoreMeter(gs.S, gs.Eng.Score(), gs.Theme)
	drawMoves(gs.S, gs.Eng, gs.Theme)
	// Update screen
	gs.S.Show()
}
