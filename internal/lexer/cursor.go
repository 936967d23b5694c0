package lexer

import "fmt"

// EndOfText is returned by the cursor for every read past the end of the
// buffer. Input text must not contain this byte.
const EndOfText byte = 0x00

// Cursor provides single-pass access to a text buffer with arbitrary
// lookahead. Position only moves forward, except for explicit SetPos calls
// made by backtracking recognizers.
type Cursor struct {
	text []byte
	pos  int
}

func NewCursor(text []byte) *Cursor {
	return &Cursor{
		text: text,
		pos:  0,
	}
}

// PeekOrConsume returns the byte stride characters ahead, with stride 1
// meaning the byte at the current position. When peek is false the position
// advances by stride. Reads past the end of the buffer return EndOfText;
// such a read still advances (clamped to the buffer length) if the current
// position was in bounds, so a consuming read at the boundary transitions
// into the exhausted state exactly once.
func (c *Cursor) PeekOrConsume(stride int, peek bool) byte {
	if stride < 1 {
		panic(fmt.Sprintf("Cursor.PeekOrConsume(): illegal stride: %d", stride))
	}

	target := c.pos + stride - 1

	if target >= len(c.text) {
		if !peek && c.pos < len(c.text) {
			c.pos = len(c.text)
		}

		return EndOfText
	}

	char := c.text[target]
	if !peek {
		c.pos += stride
	}

	return char
}

func (c *Cursor) Next() byte {
	return c.PeekOrConsume(1, false)
}

func (c *Cursor) Pos() int {
	return c.pos
}

func (c *Cursor) SetPos(pos int) {
	c.pos = pos
}

// SetText replaces the buffer. Callers must SetPos(0) afterwards, as any
// in-flight lexing state is meaningless against the new text.
func (c *Cursor) SetText(text []byte) {
	c.text = text
}
