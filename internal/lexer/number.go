package lexer

import (
	"strconv"
	"strings"
)

func isDigitForRadix(char byte, radix int) bool {
	switch radix {
	case 2:
		return char == '0' || char == '1'
	case 8:
		return char >= '0' && char <= '7'
	case 10:
		return isDecimalDigit(char)
	case 16:
		return isDecimalDigit(char) ||
			(char >= 'a' && char <= 'f') ||
			(char >= 'A' && char <= 'F')
	}

	return false
}

// RecognizeNumber covers integer and floating-point literals in one
// routine.
//
// A '-' only starts a number if a decimal digit follows; otherwise the
// whole recognizer declines without consuming, leaving '-' for the flag
// recognizer or the fallback. A leading "0b"/"0o"/"0x" selects the radix,
// but only when the character right after the prefix is a digit of that
// radix; otherwise the zero stands alone in decimal. Underscores may
// appear anywhere in the digit run and are stripped before conversion.
//
// A decimal point joins the literal only in decimal literals, at most
// once, not straight after an underscore, and only when followed by a
// digit that is not an underscore. Everywhere else the point ends the
// scan and is left for the next NextToken call.
//
// Note the prefix scan does not backtrack: "0b125" lexes as the binary
// run "1" (value 1) with "25" left over, not as decimal zero.
func RecognizeNumber(buf *byte, cur *Cursor) (Token, bool, error) {
	char := *buf
	negative := false

	if char == '-' {
		if !isDecimalDigit(cur.PeekOrConsume(1, true)) {
			return Token{}, false, nil
		}

		negative = true
		char = cur.Next()
	}

	if !isDecimalDigit(char) {
		return Token{}, false, nil
	}
	start := cur.Pos() - 1

	radix := 10
	if char == '0' {
		switch cur.PeekOrConsume(1, true) {
		case 'b':
			radix = 2
		case 'o':
			radix = 8
		case 'x':
			radix = 16
		}

		if radix != 10 {
			if isDigitForRadix(cur.PeekOrConsume(2, true), radix) {
				cur.Next()
			} else {
				radix = 10
			}
		}
	}

	// With an honored prefix the leading zero and prefix letter are not
	// part of the converted digits.
	raw := make([]byte, 0)
	if radix == 10 {
		raw = append(raw, char)
	}

	hasPoint := false
	for {
		next := cur.PeekOrConsume(1, true)

		if next == '_' {
			raw = append(raw, cur.Next())
			continue
		}

		if isDigitForRadix(next, radix) {
			raw = append(raw, cur.Next())
			continue
		}

		if next == '.' && radix == 10 && !hasPoint {
			if len(raw) > 0 && raw[len(raw)-1] == '_' {
				break
			}

			after := cur.PeekOrConsume(2, true)
			if after != '_' && isDigitForRadix(after, radix) {
				hasPoint = true
				raw = append(raw, cur.Next())
				continue
			}
		}

		break
	}

	// The sign is applied textually, so radix conversion sees the signed
	// literal as a whole.
	literal := strings.ReplaceAll(string(raw), "_", "")
	if negative {
		literal = "-" + literal
	}

	if hasPoint {
		value, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return Token{}, false, newConversionError(start, literal, err)
		}

		return FloatToken(value), true, nil
	}

	value, err := strconv.ParseInt(literal, radix, 64)
	if err != nil {
		return Token{}, false, newConversionError(start, literal, err)
	}

	return IntToken(value), true, nil
}
