package engine

// Color identifies a side. White moves first.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind is a piece type without color.
type Kind uint8

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is the content of one board square. Occupied is carried explicitly
// so that an empty square never aliases a colored piece encoding.
type Piece struct {
	Color    Color
	Kind     Kind
	Occupied bool
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

func MakePiece(c Color, k Kind) Piece {
	return Piece{Color: c, Kind: k, Occupied: true}
}

func (p Piece) Empty() bool {
	return !p.Occupied
}

// Rune returns the FEN letter for the piece, upper case for white,
// or ' ' for an empty square.
func (p Piece) Rune() rune {
	if !p.Occupied {
		return ' '
	}
	var r rune
	switch p.Kind {
	case Pawn:
		r = 'p'
	case Knight:
		r = 'n'
	case Bishop:
		r = 'b'
	case Rook:
		r = 'r'
	case Queen:
		r = 'q'
	case King:
		r = 'k'
	}
	if p.Color == White {
		r = r - 'a' + 'A'
	}
	return r
}

func (p Piece) String() string {
	return string(p.Rune())
}

// pieceFromRune is the inverse of Rune. ok is false for anything that is
// not a FEN piece letter.
func pieceFromRune(r rune) (Piece, bool) {
	c := Black
	if r >= 'A' && r <= 'Z' {
		c = White
		r = r - 'A' + 'a'
	}
	var k Kind
	switch r {
	case 'p':
		k = Pawn
	case 'n':
		k = Knight
	case 'b':
		k = Bishop
	case 'r':
		k = Rook
	case 'q':
		k = Queen
	case 'k':
		k = King
	default:
		return NoPiece, false
	}
	return MakePiece(c, k), true
}

// Square indexes a board cell 0..63, row major. Row 0 is white's back rank,
// so square 0 is a1 and square 63 is h8.
type Square int

const SquareNone Square = -1

// NumSquares is the size of the board. A Square equal to NumSquares is the
// scanner's "done" sentinel.
const NumSquares = 64

func MakeSquare(row, col int) Square {
	return Square(row*8 + col)
}

func (sq Square) Row() int { return int(sq) / 8 }
func (sq Square) Col() int { return int(sq) % 8 }

func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// Bit returns the square's bit in a 64-bit occupancy or targets mask.
func (sq Square) Bit() uint64 {
	return uint64(1) << uint(sq)
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]rune{rune('a' + sq.Col()), rune('1' + sq.Row())})
}

// ParseSquare converts algebraic notation ("e2") to a Square.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return SquareNone, false
	}
	col := int(s[0] - 'a')
	row := int(s[1] - '1')
	if col < 0 || col > 7 || row < 0 || row > 7 {
		return SquareNone, false
	}
	return MakeSquare(row, col), true
}

// Move is one played or candidate half-move. Captured holds whatever stood
// on To before the move so the move can be undone exactly; Promotion is None
// except for a pawn arriving on the back rank.
type Move struct {
	From      Square
	To        Square
	Captured  Piece
	Promotion Kind
}

// MoveNone is the zero Move, used where no move is available.
var MoveNone = Move{}

func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != None {
		s += string(MakePiece(Black, m.Promotion).Rune())
	}
	return s
}
