package token

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringToken(raw string) Token {
	return Token{Kind: STRING, Text: Borrowed(raw)}
}

func TestParseIntValue(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		v, err := Token{Kind: INTEGER, Text: Borrowed("42")}.ParseIntValue()
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)
	})
	t.Run("negative", func(t *testing.T) {
		v, err := Token{Kind: INTEGER, Text: Borrowed("-123")}.ParseIntValue()
		require.NoError(t, err)
		assert.Equal(t, int64(-123), v)
	})
	t.Run("beyond 32 bits still parses at 64", func(t *testing.T) {
		v, err := Token{Kind: INTEGER, Text: Borrowed("2147483648")}.ParseIntValue()
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt32)+1, v)
	})
	t.Run("wrong kind", func(t *testing.T) {
		_, err := Token{Kind: FLOAT, Text: Borrowed("1.0")}.ParseIntValue()
		assert.Error(t, err)
	})
}

func TestParseFloatValue(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		v, err := Token{Kind: FLOAT, Text: Borrowed("1.25")}.ParseFloatValue()
		require.NoError(t, err)
		assert.Equal(t, 1.25, v)
	})
	t.Run("exponent", func(t *testing.T) {
		v, err := Token{Kind: FLOAT, Text: Borrowed("2e3")}.ParseFloatValue()
		require.NoError(t, err)
		assert.Equal(t, 2000.0, v)
	})
	t.Run("overflow reports range error", func(t *testing.T) {
		v, err := Token{Kind: FLOAT, Text: Borrowed("1e999")}.ParseFloatValue()
		assert.Error(t, err)
		assert.True(t, math.IsInf(v, 1))
	})
	t.Run("wrong kind", func(t *testing.T) {
		_, err := Token{Kind: INTEGER, Text: Borrowed("1")}.ParseFloatValue()
		assert.Error(t, err)
	})
}

func TestParseStringValue_SingleLine(t *testing.T) {
	run := func(t *testing.T, raw, want string) {
		t.Helper()
		got, err := stringToken(raw).ParseStringValue()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	runErr := func(t *testing.T, raw string, kind StringDecodeErrorKind, sequence string) {
		t.Helper()
		_, err := stringToken(raw).ParseStringValue()
		require.Error(t, err)
		var decodeErr StringDecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, kind, decodeErr.Kind)
		assert.Equal(t, sequence, decodeErr.Sequence)
	}

	t.Run("plain", func(t *testing.T) {
		run(t, `"hello"`, "hello")
	})
	t.Run("empty", func(t *testing.T) {
		run(t, `""`, "")
	})
	t.Run("simple escapes", func(t *testing.T) {
		run(t, `"a\nb\tc\\d\"e\/f"`, "a\nb\tc\\d\"e/f")
	})
	t.Run("backspace and form feed", func(t *testing.T) {
		run(t, `"\b\f"`, "\b\f")
	})
	t.Run("fixed unicode escape", func(t *testing.T) {
		run(t, `"caf\u00E9"`, "café")
	})
	t.Run("braced unicode escape", func(t *testing.T) {
		run(t, `"\u{1F600}"`, "😀")
	})
	t.Run("braced escape with short payload", func(t *testing.T) {
		run(t, `"\u{41}"`, "A")
	})
	t.Run("unknown escape", func(t *testing.T) {
		runErr(t, `"\q"`, StringDecodeErrorKindInvalidEscape, `\q`)
	})
	t.Run("truncated fixed escape", func(t *testing.T) {
		runErr(t, `"\u00"`, StringDecodeErrorKindInvalidUnicodeEscape, `\u00`)
	})
	t.Run("non hex digit in fixed escape", func(t *testing.T) {
		runErr(t, `"\u00ZZ"`, StringDecodeErrorKindInvalidUnicodeEscape, `\u00Z`)
	})
	t.Run("empty braced escape", func(t *testing.T) {
		runErr(t, `"\u{}"`, StringDecodeErrorKindInvalidUnicodeEscape, `\u{}`)
	})
	t.Run("braced escape beyond unicode range", func(t *testing.T) {
		runErr(t, `"\u{110000}"`, StringDecodeErrorKindInvalidUnicodeEscape, `\u{110000}`)
	})
	t.Run("surrogate code points are not valid runes", func(t *testing.T) {
		runErr(t, `"\uD83D"`, StringDecodeErrorKindInvalidUnicodeEscape, `\uD83D`)
		runErr(t, `"\u{D800}"`, StringDecodeErrorKindInvalidUnicodeEscape, `\u{D800}`)
	})
	t.Run("unterminated", func(t *testing.T) {
		_, err := stringToken(`"abc`).ParseStringValue()
		var decodeErr StringDecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, StringDecodeErrorKindUnterminated, decodeErr.Kind)
	})
	t.Run("wrong kind", func(t *testing.T) {
		_, err := Token{Kind: NAME, Text: Borrowed("x")}.ParseStringValue()
		assert.Error(t, err)
	})
}

func TestParseStringValue_Block(t *testing.T) {
	run := func(t *testing.T, raw, want string) {
		t.Helper()
		got, err := stringToken(raw).ParseStringValue()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	t.Run("single line", func(t *testing.T) {
		run(t, `"""hello"""`, "hello")
	})
	t.Run("common indentation stripped", func(t *testing.T) {
		run(t, "\"\"\"\n    first\n      second\n    \"\"\"", "first\n  second")
	})
	t.Run("first line keeps its indentation", func(t *testing.T) {
		run(t, "\"\"\"  head\n  tail\"\"\"", "  head\ntail")
	})
	t.Run("leading and trailing blank lines removed", func(t *testing.T) {
		run(t, "\"\"\"\n\n  kept\n\n\"\"\"", "kept")
	})
	t.Run("interior blank line survives", func(t *testing.T) {
		run(t, "\"\"\"\n  a\n\n  b\n\"\"\"", "a\n\nb")
	})
	t.Run("escaped triple quote", func(t *testing.T) {
		run(t, `"""a \""" b"""`, `a """ b`)
	})
	t.Run("only the triple quote escape is processed", func(t *testing.T) {
		run(t, `"""a \n b"""`, `a \n b`)
	})
	t.Run("crlf terminators normalize to newline", func(t *testing.T) {
		run(t, "\"\"\"\r\n  a\r\n  b\r\n\"\"\"", "a\nb")
	})
	t.Run("bare carriage return is a terminator", func(t *testing.T) {
		run(t, "\"\"\"\r  a\r  b\"\"\"", "a\nb")
	})
	t.Run("indentation counts only spaces and tabs", func(t *testing.T) {
		run(t, "\"\"\"\n\ta\n\tb\n\"\"\"", "a\nb")
	})
	t.Run("all blank content collapses to empty", func(t *testing.T) {
		run(t, "\"\"\"\n   \n\t\n\"\"\"", "")
	})
}
