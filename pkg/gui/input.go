package gui

// Input is the one line command prompt under the board.
type Input struct {
	buf []rune
}

func NewInput() *Input {
	return &Input{}
}

// Current returns the text typed so far
func (i *Input) Current() string {
	return string(i.buf)
}

// Length returns the rune count of the current text
func (i *Input) Length() int {
	return len(i.buf)
}

// Append adds a rune to the end of the input
func (i *Input) Append(r rune) {
	i.buf = append(i.buf, r)
}

// Backspace removes the last rune, if any
func (i *Input) Backspace() {
	if len(i.buf) > 0 {
		i.buf = i.buf[:len(i.buf)-1]
	}
}

// Pop returns the current text and clears the input
func (i *Input) Pop() string {
	s := string(i.buf)
	i.buf = i.buf[:0]
	return s
}
