package engine

// Material values per piece kind, in tenths of a pawn.
var kindValue = [King + 1]int{
	None:   0,
	Pawn:   10,
	Knight: 30,
	Bishop: 30,
	Rook:   50,
	Queen:  70,
	King:   100,
}

// evaluate computes the static score of the position: material summed with
// sign per color, plus a pawn structure term of +1 for every file holding at
// least one white pawn and -1 for every file holding at least one black
// pawn. Both terms cancel exactly in the starting position.
func (b *Board) evaluate() int {
	var score int
	var whiteFiles, blackFiles uint8

	for sq, p := range b.cells {
		if !p.Occupied {
			continue
		}
		v := kindValue[p.Kind]
		if p.Color == White {
			score += v
		} else {
			score -= v
		}
		if p.Kind == Pawn {
			bit := uint8(1) << uint(Square(sq).Col())
			if p.Color == White {
				whiteFiles |= bit
			} else {
				blackFiles |= bit
			}
		}
	}

	for col := 0; col < 8; col++ {
		bit := uint8(1) << uint(col)
		if whiteFiles&bit != 0 {
			score++
		}
		if blackFiles&bit != 0 {
			score--
		}
	}
	return score
}
