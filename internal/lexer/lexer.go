package lexer

import (
	"fmt"
)

type ErrorKind int

const (
	UNTERMINATED_COMMENT ErrorKind = iota
	MALFORMED_CHAR_LITERAL
	UNTERMINATED_STRING
	CONVERSION_FAILURE
)

func (ek ErrorKind) String() string {
	switch ek {
	case UNTERMINATED_COMMENT:
		return "UNTERMINATED_COMMENT"
	case MALFORMED_CHAR_LITERAL:
		return "MALFORMED_CHAR_LITERAL"
	case UNTERMINATED_STRING:
		return "UNTERMINATED_STRING"
	case CONVERSION_FAILURE:
		return "CONVERSION_FAILURE"
	default:
		panic(fmt.Sprintf("ErrorKind.String(): received illegal error kind: %d", ek))
	}
}

// LexerError reports a malformed construct that makes further lexing of the
// current token impossible. Pos is the index of the construct's first
// character in the text buffer.
type LexerError struct {
	Kind    ErrorKind
	Pos     int
	Message string
}

func newUnterminatedCommentError(pos int) *LexerError {
	return &LexerError{
		Kind:    UNTERMINATED_COMMENT,
		Pos:     pos,
		Message: fmt.Sprintf("block comment starting at position %d is never closed with '*/'", pos),
	}
}

func newMalformedCharLiteralError(pos int) *LexerError {
	return &LexerError{
		Kind:    MALFORMED_CHAR_LITERAL,
		Pos:     pos,
		Message: fmt.Sprintf("character literal starting at position %d must contain exactly one character", pos),
	}
}

func newUnterminatedStringError(pos int) *LexerError {
	return &LexerError{
		Kind:    UNTERMINATED_STRING,
		Pos:     pos,
		Message: fmt.Sprintf("string literal starting at position %d is never closed with '\"'", pos),
	}
}

func newConversionError(pos int, literal string, cause error) *LexerError {
	return &LexerError{
		Kind:    CONVERSION_FAILURE,
		Pos:     pos,
		Message: fmt.Sprintf("number literal %q at position %d could not be converted: %v", literal, pos, cause),
	}
}

func (e *LexerError) Error() string {
	return e.Message
}

func (e *LexerError) GetMessage() string {
	return e.Message
}

// Recognizer tries to match one literal family at the cursor's position.
// buf holds the character the pipeline has already consumed for this call;
// a recognizer may overwrite it to hand later recognizers a fresh
// character. Returning ok == false means "not my literal family" and
// requires the cursor to be back where a later recognizer can retry. A
// successful match leaves the cursor exactly past the matched text.
type Recognizer func(buf *byte, cur *Cursor) (Token, bool, error)

// Lexer turns a text buffer into a stream of literal tokens by trying an
// ordered list of recognizers against each position. The order is part of
// the contract: a leading '-' is a number if digits follow only because
// RecognizeNumber runs before RecognizeFlag.
type Lexer struct {
	cur *Cursor

	transforms []Recognizer
	fallback   Recognizer
}

func NewLexer(text []byte) *Lexer {
	return NewCustomLexer(text, DefaultTransforms(), RecognizeUndefined)
}

// NewCustomLexer builds a lexer with a caller-supplied recognizer sequence.
// The fallback must always produce a token.
func NewCustomLexer(text []byte, transforms []Recognizer, fallback Recognizer) *Lexer {
	return &Lexer{
		cur: NewCursor(text),

		transforms: transforms,
		fallback:   fallback,
	}
}

func DefaultTransforms() []Recognizer {
	return []Recognizer{
		RecognizeWhitespace,
		RecognizeEndOfText,
		RecognizeNewLine,
		RecognizeComment,
		RecognizeBool,
		RecognizeNumber,
		RecognizeChar,
		RecognizeString,
		RecognizeFlag,
	}
}

// NextToken produces the next token, advancing the cursor past it. Once the
// text is exhausted every further call returns an EOF token.
func (l *Lexer) NextToken() (Token, error) {
	buf := l.cur.Next()

	for _, recognize := range l.transforms {
		token, ok, err := recognize(&buf, l.cur)
		if err != nil {
			return Token{}, err
		}
		if ok {
			return token, nil
		}
	}

	token, ok, err := l.fallback(&buf, l.cur)
	if err != nil {
		return Token{}, err
	}
	if !ok {
		panic("Lexer.NextToken(): fallback recognizer failed to produce a token")
	}

	return token, nil
}

// Tokenize drains the lexer, returning all tokens up to and including the
// first EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for {
		token, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
		if token.Kind == EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) Cursor() *Cursor {
	return l.cur
}

// Reset rewinds the lexer to the start of the buffer; lexing afterwards
// yields the exact same token stream again.
func (l *Lexer) Reset() {
	l.cur.SetPos(0)
}

// SetText swaps in a new buffer and rewinds.
func (l *Lexer) SetText(text []byte) {
	l.cur.SetText(text)
	l.cur.SetPos(0)
}
