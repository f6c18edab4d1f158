package pkg

import (
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	petname "github.com/dustinkirkland/golang-petname"

	"stepchess/pkg/engine"
)

const (
	ConnQueueSize  = 10
	MatchDuration  = 10 * time.Minute
	MatchIncrement = 2 * time.Second
)

// Match is one hosted game: two seats, any number of viewers, one engine.
// Every connection's messages funnel into In and are handled by a single
// goroutine, so the engine is never touched concurrently.
type Match struct {
	Id         string
	Players    []*Player
	In         chan MessageInterface
	Clocks     map[PlayerColor]*Clock
	VsComputer bool
	LastActive time.Time
	Over       bool

	eng    *engine.Engine
	nextId int
	mu     sync.Mutex
}

func NewMatch(vsComputer bool) *Match {
	m := &Match{
		Id:         petname.Generate(2, "-"),
		In:         make(chan MessageInterface, MessageQueueSize),
		VsComputer: vsComputer,
		LastActive: time.Now(),
		eng:        engine.New(),
		Clocks: map[PlayerColor]*Clock{
			White: NewClock(MatchDuration, MatchIncrement),
			Black: NewClock(MatchDuration, MatchIncrement),
		},
	}
	go m.Handle()
	return m
}

// AddConn seats a new connection. The first player gets white, the second
// black (the engine holds the black seat in a computer match), everyone else
// watches.
func (m *Match) AddConn(conn net.Conn) {
	m.mu.Lock()
	p := NewPlayer(conn)
	p.Id = m.nextId
	m.nextId++
	p.Name = petname.Generate(1, "")
	p.Color = m.seatFor(len(m.Players))
	m.Players = append(m.Players, p)
	m.mu.Unlock()

	go p.HandleRead(m.In)
	go p.HandleWrite()

	ec, seated := p.Color.EngineColor()
	p.Out <- MessageConnect{
		Color:   p.Color,
		Fen:     m.eng.FEN(),
		IsTurn:  seated && ec == m.eng.ColorToMove(),
		MatchId: m.Id,
	}
	log.Printf("Match %s: %s joins as %s", m.Id, p.Name, p.Color)
}

func (m *Match) seatFor(n int) PlayerColor {
	switch {
	case n == 0:
		return White
	case n == 1 && !m.VsComputer:
		return Black
	default:
		return Viewer
	}
}

// Handle is the match loop: it owns the engine and applies messages in order.
func (m *Match) Handle() {
	for message := range m.In {
		m.LastActive = time.Now()
		messageTransport := message.(MessageTransport)
		switch messageTransport.MsgType {
		case TypeMessageMove:
			var message MessageMove
			Decode(messageTransport.Data, &message)
			m.handleMove(messageTransport.PlayerId, message.Move)

		case TypeMessageAction:
			var message MessageAction
			Decode(messageTransport.Data, &message)
			m.handleAction(messageTransport.PlayerId, message.Action)

		default:
			log.Printf("Match %s: unhandled message type %s", m.Id, messageTransport.MsgType)
		}
	}
}

func (m *Match) handleMove(playerId int, move string) {
	p := m.playerById(playerId)
	if p == nil || m.Over {
		return
	}
	ec, seated := p.Color.EngineColor()
	if !seated || ec != m.eng.ColorToMove() {
		p.Out <- MessageGame{Fen: m.eng.FEN(), Msg: "Not your turn"}
		return
	}
	from, to, ok := parseMove(move)
	if !ok || !m.eng.Move(from, to) {
		p.Out <- MessageGame{Fen: m.eng.FEN(), IsTurn: true, Msg: fmt.Sprintf("Invalid move %s", move)}
		return
	}
	m.Clocks[p.Color].Pause()
	if !m.VsComputer {
		m.Clocks[otherSeat(p.Color)].Tick()
	}
	m.Broadcast()

	if m.VsComputer {
		m.computerReply()
	}
}

// computerReply runs the selector until it settles on a move, then shares the
// new position. The reply is synchronous; a first-move-wins scan is bounded
// by one board sweep.
func (m *Match) computerReply() {
	before := m.eng.PlyCount()
	m.eng.RequestAutoMove(m.eng.ColorToMove())
	m.eng.RunToIdle()
	if m.eng.PlyCount() == before {
		m.Over = true
		m.BroadcastMsg(MessageGame{Fen: m.eng.FEN(), Msg: "No reply available"})
		return
	}
	m.Broadcast()
}

func (m *Match) handleAction(playerId int, action Action) {
	p := m.playerById(playerId)
	if p == nil {
		return
	}
	switch action {
	case ActionNewGame:
		m.eng.NewGame()
		m.Clocks[White].Reset()
		m.Clocks[Black].Reset()
		m.Clocks[White].Pause()
		m.Clocks[Black].Pause()
		m.Over = false
		m.Broadcast()

	case ActionResign:
		if _, seated := p.Color.EngineColor(); !seated || m.Over {
			return
		}
		m.Over = true
		m.Clocks[White].Pause()
		m.Clocks[Black].Pause()
		winner := otherSeat(p.Color)
		m.BroadcastMsg(MessageGame{Fen: m.eng.FEN(), Msg: fmt.Sprintf("%s resigns, %s wins", p.Color, winner)})

	case ActionExit:
		p.Disconnect()

	default:
		log.Printf("Match %s: unhandled action %q", m.Id, action)
	}
}

// Broadcast sends the current position to every connection.
func (m *Match) Broadcast() {
	toMove := m.eng.ColorToMove()
	for _, p := range m.players() {
		ec, seated := p.Color.EngineColor()
		p.Out <- MessageGame{
			Fen:        m.eng.FEN(),
			IsTurn:     seated && ec == toMove && !m.Over,
			WhiteClock: m.Clocks[White].String(),
			BlackClock: m.Clocks[Black].String(),
		}
	}
}

// BroadcastMsg sends the given game message to every connection as is.
func (m *Match) BroadcastMsg(message MessageGame) {
	for _, p := range m.players() {
		p.Out <- message
	}
}

func (m *Match) players() []*Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	ps := make([]*Player, len(m.Players))
	copy(ps, m.Players)
	return ps
}

func (m *Match) playerById(id int) *Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.Players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func otherSeat(pc PlayerColor) PlayerColor {
	if pc == White {
		return Black
	}
	return White
}

// parseMove splits coordinate notation ("e2e4") into origin and destination.
func parseMove(move string) (engine.Square, engine.Square, bool) {
	if len(move) < 4 {
		return engine.SquareNone, engine.SquareNone, false
	}
	from, ok := engine.ParseSquare(move[:2])
	if !ok {
		return engine.SquareNone, engine.SquareNone, false
	}
	to, ok := engine.ParseSquare(move[2:4])
	if !ok {
		return engine.SquareNone, engine.SquareNone, false
	}
	return from, to, true
}
