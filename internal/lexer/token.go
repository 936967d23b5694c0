package lexer

import (
	"fmt"
	"strconv"
)

type TokenKind int

const (
	EOF TokenKind = iota

	NEWLINE
	COMMENT

	BOOL
	INT
	FLOAT
	CHAR
	STRING
	FLAG

	UNDEFINED
)

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case NEWLINE:
		return "NEWLINE"
	case COMMENT:
		return "COMMENT"
	case BOOL:
		return "BOOL"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case CHAR:
		return "CHAR"
	case STRING:
		return "STRING"
	case FLAG:
		return "FLAG"
	case UNDEFINED:
		return "UNDEFINED"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

// Token is one lexed literal. Only the payload field matching Kind is ever
// set, so two tokens compare equal with == exactly when they have the same
// kind and the same payload.
type Token struct {
	Kind TokenKind

	Bool  bool
	Int   int64
	Float float64
	Text  string
}

func EOFToken() Token {
	return Token{Kind: EOF}
}

func NewLineToken() Token {
	return Token{Kind: NEWLINE}
}

func CommentToken(text string) Token {
	return Token{Kind: COMMENT, Text: text}
}

func BoolToken(value bool) Token {
	return Token{Kind: BOOL, Bool: value}
}

func IntToken(value int64) Token {
	return Token{Kind: INT, Int: value}
}

func FloatToken(value float64) Token {
	return Token{Kind: FLOAT, Float: value}
}

func CharToken(char byte) Token {
	return Token{Kind: CHAR, Text: string(char)}
}

func StringToken(text string) Token {
	return Token{Kind: STRING, Text: text}
}

func FlagToken(name string) Token {
	return Token{Kind: FLAG, Text: name}
}

func UndefinedToken(char byte) Token {
	return Token{Kind: UNDEFINED, Text: string(char)}
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case BOOL, INT, FLOAT, CHAR, STRING, FLAG, COMMENT, UNDEFINED:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	switch t.Kind {
	case BOOL:
		return fmt.Sprintf("%s(%t)", t.Kind, t.Bool)
	case INT:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Int)
	case FLOAT:
		return fmt.Sprintf("%s(%s)", t.Kind, strconv.FormatFloat(t.Float, 'g', -1, 64))
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}
