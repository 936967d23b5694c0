package lexer

func isWhitespace(char byte) bool {
	return char == ' ' || char == '\t'
}

func isNewLine(char byte) bool {
	return char == '\n' || char == '\r'
}

func isLetter(char byte) bool {
	return (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}

func isDecimalDigit(char byte) bool {
	return char >= '0' && char <= '9'
}

func isAlphanumeric(char byte) bool {
	return isLetter(char) || isDecimalDigit(char)
}

// RecognizeWhitespace never yields a token. It swallows a maximal run of
// spaces and tabs and overwrites buf with the following character, so the
// remaining recognizers of the same NextToken call see past the gap.
func RecognizeWhitespace(buf *byte, cur *Cursor) (Token, bool, error) {
	if !isWhitespace(*buf) {
		return Token{}, false, nil
	}

	for isWhitespace(cur.PeekOrConsume(1, true)) {
		cur.Next()
	}
	*buf = cur.Next()

	return Token{}, false, nil
}

func RecognizeEndOfText(buf *byte, cur *Cursor) (Token, bool, error) {
	if *buf != EndOfText {
		return Token{}, false, nil
	}

	return EOFToken(), true, nil
}

func RecognizeNewLine(buf *byte, cur *Cursor) (Token, bool, error) {
	if !isNewLine(*buf) {
		return Token{}, false, nil
	}

	return NewLineToken(), true, nil
}

// RecognizeComment handles both comment styles. A line comment runs all the
// way to the end of the text, newlines included. A block comment requires
// its closing delimiter; running out of text first is fatal.
func RecognizeComment(buf *byte, cur *Cursor) (Token, bool, error) {
	if *buf != '/' {
		return Token{}, false, nil
	}

	switch cur.PeekOrConsume(1, true) {
	case '/':
		cur.Next()

		text := make([]byte, 0)
		for {
			char := cur.Next()
			if char == EndOfText {
				return CommentToken(string(text)), true, nil
			}

			text = append(text, char)
		}

	case '*':
		start := cur.Pos() - 1
		cur.Next()

		text := make([]byte, 0)
		for {
			char := cur.Next()
			if char == EndOfText {
				return Token{}, false, newUnterminatedCommentError(start)
			}

			text = append(text, char)
			if len(text) >= 2 && text[len(text)-2] == '*' && text[len(text)-1] == '/' {
				return CommentToken(string(text[:len(text)-2])), true, nil
			}
		}
	}

	return Token{}, false, nil
}

// RecognizeBool matches exactly "true" or "false" via fixed-stride peeks,
// consuming only on a full match.
func RecognizeBool(buf *byte, cur *Cursor) (Token, bool, error) {
	switch *buf {
	case 't':
		if cur.PeekOrConsume(1, true) == 'r' &&
			cur.PeekOrConsume(2, true) == 'u' &&
			cur.PeekOrConsume(3, true) == 'e' {
			cur.PeekOrConsume(3, false)
			return BoolToken(true), true, nil
		}

	case 'f':
		if cur.PeekOrConsume(1, true) == 'a' &&
			cur.PeekOrConsume(2, true) == 'l' &&
			cur.PeekOrConsume(3, true) == 's' &&
			cur.PeekOrConsume(4, true) == 'e' {
			cur.PeekOrConsume(4, false)
			return BoolToken(false), true, nil
		}
	}

	return Token{}, false, nil
}

// RecognizeChar requires exactly one character between single quotes.
func RecognizeChar(buf *byte, cur *Cursor) (Token, bool, error) {
	if *buf != '\'' {
		return Token{}, false, nil
	}
	start := cur.Pos() - 1

	char := cur.Next()
	if char == '\'' || char == EndOfText {
		return Token{}, false, newMalformedCharLiteralError(start)
	}

	if cur.Next() != '\'' {
		return Token{}, false, newMalformedCharLiteralError(start)
	}

	return CharToken(char), true, nil
}

// RecognizeString consumes characters verbatim up to the closing quote, no
// escape processing.
func RecognizeString(buf *byte, cur *Cursor) (Token, bool, error) {
	if *buf != '"' {
		return Token{}, false, nil
	}
	start := cur.Pos() - 1

	text := make([]byte, 0)
	for {
		char := cur.Next()

		if char == EndOfText {
			return Token{}, false, newUnterminatedStringError(start)
		}
		if char == '"' {
			return StringToken(string(text)), true, nil
		}

		text = append(text, char)
	}
}

// RecognizeFlag matches '-' followed by a letter and then a maximal
// alphanumeric run. A '-' followed by a digit was already taken by
// RecognizeNumber, and a lone '-' matches nothing here either.
func RecognizeFlag(buf *byte, cur *Cursor) (Token, bool, error) {
	if *buf != '-' {
		return Token{}, false, nil
	}
	if !isLetter(cur.PeekOrConsume(1, true)) {
		return Token{}, false, nil
	}

	name := make([]byte, 0)
	name = append(name, cur.Next())
	for isAlphanumeric(cur.PeekOrConsume(1, true)) {
		name = append(name, cur.Next())
	}

	return FlagToken(string(name)), true, nil
}

// RecognizeUndefined is the total fallback: whatever single character no
// other recognizer claimed becomes an UNDEFINED token.
func RecognizeUndefined(buf *byte, cur *Cursor) (Token, bool, error) {
	return UndefinedToken(*buf), true, nil
}
