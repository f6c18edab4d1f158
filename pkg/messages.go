package pkg

import (
	"encoding/json"
)

type MessageType int

const (
	TypeMessageGame MessageType = iota
	TypeMessageMove
	TypeMessageTransport
	TypeMessageConnect
	TypeMessageAction
)

func (m MessageType) String() string {
	switch m {
	case TypeMessageGame:
		return "TypeMessageGame"
	case TypeMessageMove:
		return "TypeMessageMove"
	case TypeMessageTransport:
		return "TypeMessageTransport"
	case TypeMessageConnect:
		return "TypeMessageConnect"
	case TypeMessageAction:
		return "TypeMessageAction"
	default:
		return "Unknown MessageType"
	}
}

type MessageInterface interface {
	Type() MessageType
	Encode() json.RawMessage
}

// Message types

// MessageTransport is the envelope every message travels in, one JSON object
// per line on the wire.
type MessageTransport struct {
	MsgType  MessageType
	Data     json.RawMessage
	PlayerId int
}

func (m MessageTransport) Type() MessageType {
	return TypeMessageTransport
}

func (m MessageTransport) Encode() json.RawMessage {
	return Encode(m)
}

// MessageMove submits a move in coordinate form, e.g. "e2e4".
type MessageMove struct {
	Move string
	Msg  string
}

func (m MessageMove) Type() MessageType {
	return TypeMessageMove
}

func (m MessageMove) Encode() json.RawMessage {
	return Encode(m)
}

// MessageGame carries the position after each move.
type MessageGame struct {
	Fen        string
	IsTurn     bool
	Msg        string
	WhiteClock string
	BlackClock string
}

func (m MessageGame) Type() MessageType {
	return TypeMessageGame
}

func (m MessageGame) Encode() json.RawMessage {
	return Encode(m)
}

// MessageConnect is both the join request (MatchId, VsComputer) and the
// server's seat assignment reply (Color, Fen, IsTurn).
type MessageConnect struct {
	Color      PlayerColor
	Fen        string
	IsTurn     bool
	MatchId    string
	VsComputer bool
}

func (m MessageConnect) Type() MessageType {
	return TypeMessageConnect
}

func (m MessageConnect) Encode() json.RawMessage {
	return Encode(m)
}

// MessageAction carries out-of-band match requests such as resigning.
type MessageAction struct {
	Action Action
}

func (m MessageAction) Type() MessageType {
	return TypeMessageAction
}

func (m MessageAction) Encode() json.RawMessage {
	return Encode(m)
}
