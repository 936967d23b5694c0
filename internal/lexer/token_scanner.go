package lexer

// TokenScanner is the surface a token consumer, such as a parser, drives.
type TokenScanner interface {
	Read() (Token, error)
	Unread()
}

// StreamTokenScanner pulls tokens lazily from a lexer and supports pushing
// the most recent token back once.
type StreamTokenScanner struct {
	lexer *Lexer

	last    Token
	hasLast bool
	pushed  bool
}

func NewTokenScanner(lexer *Lexer) TokenScanner {
	return &StreamTokenScanner{
		lexer: lexer,
	}
}

func (s *StreamTokenScanner) Read() (Token, error) {
	if s.pushed {
		s.pushed = false
		return s.last, nil
	}

	token, err := s.lexer.NextToken()
	if err != nil {
		return Token{}, err
	}

	s.last = token
	s.hasLast = true

	return token, nil
}

func (s *StreamTokenScanner) Unread() {
	if !s.hasLast || s.pushed {
		panic("StreamTokenScanner.Unread(): no token to unread")
	}

	s.pushed = true
}
