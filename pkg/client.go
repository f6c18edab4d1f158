package pkg

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"stepchess/pkg/engine"
)

const (
	numrows = 8
	numcols = 8
)

// Client is the remote-play UI: a tview board fed by FEN updates from the
// server. It keeps its own engine.Board so selections can be validated and
// destination squares highlighted locally, without a server round trip.
type Client struct {
	App    *tview.Application
	Board  *tview.Table
	Layout *tview.Grid
	Status *tview.TextView
	Conn   net.Conn
	Out    chan MessageInterface

	board         *engine.Board
	isTurn        bool
	selecting     bool
	lastSelection engine.Square
	targets       uint64
	Color         PlayerColor
	MatchId       string
}

func NewClient() *Client {
	app := tview.NewApplication()

	cl := &Client{
		App:   app,
		Out:   make(chan MessageInterface, ConnQueueSize),
		board: engine.NewBoard(),
		Color: Unknown,
	}

	newGameBtn := tview.NewButton("New Game").SetSelectedFunc(func() {
		cl.Out <- MessageAction{Action: ActionNewGame}
	})

	resignBtn := tview.NewButton("Resign").SetSelectedFunc(func() {
		cl.Out <- MessageAction{Action: ActionResign}
	})

	status := tview.NewTextView().SetText("Connecting")

	gameOptions := tview.NewGrid().
		SetColumns(10, 10).
		SetRows(3, 10, -1).
		AddItem(newGameBtn, 0, 0, 1, 1, 0, 0, false).
		AddItem(resignBtn, 0, 1, 1, 1, 0, 0, false).
		AddItem(status, 1, 0, 2, 2, 0, 0, false)

	board := tview.NewTable()

	layout := tview.NewGrid().
		SetRows(-1, 40, -1).
		SetColumns(-1, 30, 20, -1).
		AddItem(board, 1, 1, 1, 1, 0, 0, true).
		AddItem(gameOptions, 1, 2, 1, 1, 0, 0, false)

	cl.Board = board
	cl.Layout = layout
	cl.Status = status
	cl.initTable()

	return cl
}

func (cl *Client) initTable() {
	cl.RenderTable()
	cl.Board.SetSelectable(true, true)
	cl.Board.Select(0, 0).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			cl.App.Stop()
			cl.Conn.Close()
			os.Exit(0)
		}
		if key == tcell.KeyEnter {
			cl.Board.SetSelectable(true, true)
		}
	}).SetSelectedFunc(func(row, col int) {
		sq := cl.posToSquare(row, col)
		if !sq.Valid() {
			return
		}
		if cl.selecting {
			cl.chooseDestination(sq)
		} else {
			cl.chooseOrigin(sq)
		}
		cl.RenderTable()
	})
}

// chooseOrigin selects a square to move from and scans its destinations for
// highlighting. Selecting an empty or opposing square is a silent no-op.
func (cl *Client) chooseOrigin(sq engine.Square) {
	p := cl.board.At(sq)
	ec, seated := cl.Color.EngineColor()
	if p.Empty() || !seated || p.Color != ec || !cl.isTurn {
		return
	}
	sc := engine.NewTargetScan(cl.board, sq)
	var targets uint64
	for {
		m, ok := sc.Next()
		if !ok {
			break
		}
		targets |= m.To.Bit()
	}
	cl.selecting = true
	cl.lastSelection = sq
	cl.targets = targets
}

func (cl *Client) chooseDestination(sq engine.Square) {
	if sq == cl.lastSelection { // chose the origin again to deselect
		cl.clearSelection()
		return
	}
	if cl.targets&sq.Bit() == 0 {
		log.Printf("invalid move %s%s", cl.lastSelection, sq)
		cl.clearSelection()
		return
	}
	move := fmt.Sprintf("%s%s", cl.lastSelection, sq)
	log.Printf("Move: %s", move)
	cl.Out <- MessageMove{Move: move}
	cl.clearSelection()
}

func (cl *Client) clearSelection() {
	cl.selecting = false
	cl.lastSelection = engine.SquareNone
	cl.targets = 0
}

func (cl *Client) squareColor(sq engine.Square) tcell.Color {
	if cl.selecting && (sq == cl.lastSelection || cl.targets&sq.Bit() != 0) {
		return tcell.ColorRed
	}
	if (sq.Row()+sq.Col())%2 == 0 {
		return tcell.ColorBlue
	}
	return tcell.ColorGreen
}

func (cl *Client) RenderTable() {
	// Step through the ranks starting with the top row
	for r := 0; r <= numrows; r++ {
		for f := 0; f <= numcols; f++ {
			if f == 0 && r != numrows { // draw rank square
				rank := numrows - r
				if cl.Color == Black {
					rank = r + 1
				}
				cell := tview.NewTableCell(fmt.Sprintf("%d", rank)).
					SetAlign(tview.AlignCenter).
					SetSelectable(false)
				cl.Board.SetCell(r, f, cell)
				continue
			}

			if r == numrows && f > 0 { // Draw files square
				cell := tview.NewTableCell(fmt.Sprintf(" %c", 'a'+f-1)).
					SetAlign(tview.AlignCenter).
					SetSelectable(false)
				cl.Board.SetCell(r, f, cell)
				continue
			}

			if r == numrows && f == 0 {
				continue
			}

			// Draw the pieces
			sq := cl.posToSquare(r, f)
			p := cl.board.At(sq)
			cell := tview.NewTableCell(fmt.Sprintf(" %s", p)).
				SetAlign(tview.AlignCenter).
				SetBackgroundColor(cl.squareColor(sq))
			cl.Board.SetCell(r, f, cell)
		}
	}
	cl.Board.GetCell(numrows, 0).SetSelectable(false) // The bottom left tile is not used
	go func() {
		cl.App.Draw()
	}()
}

// Connect dials the server and sends the join request. An empty matchId asks
// for a fresh match.
func (cl *Client) Connect(port, matchId string, vsComputer bool) {
	log.Printf("Connecting to port: %s", port)
	conn, err := net.Dial("tcp", port)
	if err != nil {
		log.Panic(err)
	}
	cl.Conn = conn
	cl.Out <- MessageConnect{MatchId: matchId, VsComputer: vsComputer}
}

func (cl *Client) Disconnect() {
	if cl.Conn != nil {
		cl.Conn.Close()
	}
}

func (cl *Client) HandleWrite() {
	for command := range cl.Out {
		commandData := Encode(command)
		commandTransport := MessageTransport{MsgType: command.Type(), Data: commandData}
		b := Encode(commandTransport)
		if b[len(b)-1] != '\n' { // EOF
			b = append(b, '\n')
		}
		if _, err := cl.Conn.Write(b); err != nil {
			log.Fatal(err)
		}
		log.Printf("Send a msg type :%s", command.Type())
	}
}

func (cl *Client) HandleRead() {
	scanner := bufio.NewScanner(cl.Conn)
	for scanner.Scan() {
		var messageTransport MessageTransport
		Decode(scanner.Bytes(), &messageTransport)
		switch messageTransport.MsgType {
		case TypeMessageGame:
			var message MessageGame
			Decode(messageTransport.Data, &message)
			cl.setPosition(message.Fen)
			cl.isTurn = message.IsTurn
			cl.setStatus(message)
			cl.RenderTable()

		case TypeMessageConnect:
			var message MessageConnect
			Decode(messageTransport.Data, &message)
			cl.setPosition(message.Fen)
			cl.Color = message.Color
			cl.isTurn = message.IsTurn
			cl.MatchId = message.MatchId
			cl.Status.SetText(fmt.Sprintf("Match %s\nYou play %s", message.MatchId, message.Color))
			cl.RenderTable()

		default:
			log.Printf("Received Unknown message")
		}
	}
}

func (cl *Client) setPosition(fen string) {
	board, _, err := engine.ParseFEN(fen)
	if err != nil {
		log.Printf("Bad position from server: %v", err)
		return
	}
	cl.board = board
	cl.clearSelection()
}

func (cl *Client) setStatus(message MessageGame) {
	text := fmt.Sprintf("Match %s\n⏱ %s | %s", cl.MatchId, message.WhiteClock, message.BlackClock)
	if message.Msg != "" {
		text += "\n" + message.Msg
	}
	cl.Status.SetText(text)
}

func (cl *Client) posToSquare(row, col int) engine.Square {
	// A1 is square 0
	if cl.Color != Black { // descending order if is white
		row = numrows - row - 1
	}
	col = col - 1 // 1 column for the rank
	if row < 0 || row >= numrows || col < 0 || col >= numcols {
		return engine.SquareNone
	}
	return engine.MakeSquare(row, col)
}
