package pkg

import (
	"bufio"
	"log"
	"net"

	"stepchess/pkg/engine"
)

type PlayerColor int

const (
	White PlayerColor = iota
	Black
	Viewer
	Unknown
)

func (pc PlayerColor) String() string {
	switch pc {
	case White:
		return "White"
	case Black:
		return "Black"
	case Viewer:
		return "Viewer"
	default:
		return "Unknown"
	}
}

// EngineColor maps a seat to the engine's color. Viewers have no engine color.
func (pc PlayerColor) EngineColor() (engine.Color, bool) {
	switch pc {
	case White:
		return engine.White, true
	case Black:
		return engine.Black, true
	default:
		return engine.White, false
	}
}

type Player struct {
	Conn  net.Conn
	Color PlayerColor
	Out   chan MessageInterface
	Id    int
	Name  string
}

func NewPlayer(conn net.Conn) *Player {
	Out := make(chan MessageInterface, ConnQueueSize)

	p := &Player{
		Conn:  conn,
		Color: Unknown,
		Out:   Out,
	}
	return p
}

func (p *Player) HandleRead(In chan MessageInterface) {
	// Receive message, add player info, then forward to the match
	scanner := bufio.NewScanner(p.Conn)
	for scanner.Scan() {
		var messageTransport MessageTransport
		Decode(scanner.Bytes(), &messageTransport)
		messageTransport.PlayerId = p.Id
		In <- messageTransport
	}
}

func (p *Player) HandleWrite() {
	for message := range p.Out {
		messageData := Encode(message)
		messageTransport := &MessageTransport{MsgType: message.Type(), Data: messageData}
		b := Encode(messageTransport)
		if b[len(b)-1] != '\n' { // EOF
			b = append(b, '\n')
		}
		if _, err := p.Conn.Write(b); err != nil {
			log.Printf("Failed to write: %v Error: %v", message, err)
		}
	}
}

func (p *Player) Disconnect() {
	p.Conn.Close()
}
