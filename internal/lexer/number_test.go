package lexer

import (
	"strconv"
	"testing"
)

func TestIntegers(t *testing.T) {
	wantTokens(t, "0", []Token{IntToken(0)})
	wantTokens(t, "42", []Token{IntToken(42)})
	wantTokens(t, "-12", []Token{IntToken(-12)})
}

func TestIntegerUnderscores(t *testing.T) {
	wantTokens(t, "123_22__", []Token{IntToken(12322)})
	wantTokens(t, "1_000_000", []Token{IntToken(1000000)})
}

func TestRadixPrefixes(t *testing.T) {
	wantTokens(t, "0x125", []Token{IntToken(293)})
	wantTokens(t, "0b110", []Token{IntToken(6)})
	wantTokens(t, "0o125", []Token{IntToken(85)})
	wantTokens(t, "0xfF", []Token{IntToken(255)})
	wantTokens(t, "0b1_01", []Token{IntToken(5)})
}

func TestPrefixScanStopsEarly(t *testing.T) {
	// The prefix scan does not backtrack: the binary run of "0b125" is
	// just "1", and the rest re-lexes as a separate number.
	wantTokens(t, "0b125", []Token{IntToken(1), IntToken(25)})
	wantTokens(t, "-0b125", []Token{IntToken(-1), IntToken(25)})
}

func TestPrefixNotHonoredWithoutDigit(t *testing.T) {
	// The zero stands alone when no radix-valid digit follows the prefix.
	wantTokens(t, "0b", []Token{IntToken(0), UndefinedToken('b')})
	wantTokens(t, "0b2", []Token{IntToken(0), UndefinedToken('b'), IntToken(2)})
	wantTokens(t, "0x_1", []Token{
		IntToken(0), UndefinedToken('x'), UndefinedToken('_'), IntToken(1),
	})
}

func TestFloats(t *testing.T) {
	wantTokens(t, "3.14", []Token{FloatToken(3.14)})
	wantTokens(t, "-123.3", []Token{FloatToken(-123.3)})
	wantTokens(t, "4_123.12_3_", []Token{FloatToken(4123.123)})
}

func TestSecondPointEndsTheLiteral(t *testing.T) {
	wantTokens(t, "1.2.3", []Token{FloatToken(1.2), UndefinedToken('.'), IntToken(3)})
}

func TestPointRejectedNextToUnderscore(t *testing.T) {
	wantTokens(t, "3_.14", []Token{IntToken(3), UndefinedToken('.'), IntToken(14)})
	wantTokens(t, "7_._00", []Token{
		IntToken(7), UndefinedToken('.'), UndefinedToken('_'), IntToken(0),
	})
	wantTokens(t, "1._5", []Token{
		IntToken(1), UndefinedToken('.'), UndefinedToken('_'), IntToken(5),
	})
}

func TestPointRejectedWithoutFollowingDigit(t *testing.T) {
	wantTokens(t, "1.", []Token{IntToken(1), UndefinedToken('.')})
	wantTokens(t, "1.x", []Token{IntToken(1), UndefinedToken('.'), UndefinedToken('x')})
}

func TestPrefixedLiteralsAreIntegerOnly(t *testing.T) {
	wantTokens(t, "0x1.5", []Token{IntToken(1), UndefinedToken('.'), IntToken(5)})
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, value := range []int64{0, 1, 7, 12322, 9_000_000_000} {
		src := strconv.FormatInt(value, 10)
		wantTokens(t, src, []Token{IntToken(value)})
	}
}

func TestIntegerOverflowIsFatal(t *testing.T) {
	wantError(t, "9223372036854775808", CONVERSION_FAILURE)
}
