package lexer

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jensneuse/diffview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wundergraph/gqlparse/pkg/testing/goldie"
	"github.com/wundergraph/gqlparse/pkg/token"
)

func TestLexer_Read(t *testing.T) {

	type checkFunc func(lex *Lexer, i int)

	run := func(t *testing.T, input string, checks ...checkFunc) {
		t.Helper()
		lex := New(input)
		for i := range checks {
			checks[i](lex, i+1)
		}
	}

	mustRead := func(kind token.Kind, wantText string) checkFunc {
		return func(lex *Lexer, i int) {
			tok, ok := lex.Read()
			if !ok {
				panic(fmt.Errorf("mustRead: source exhausted [check: %d]", i))
			}
			if kind != tok.Kind {
				panic(fmt.Errorf("mustRead: want(kind): %s, got: %s [check: %d]", kind, tok.Kind, i))
			}
			if wantText != tok.Text.String() {
				panic(fmt.Errorf("mustRead: want(text): %q, got: %q [check: %d]", wantText, tok.Text.String(), i))
			}
		}
	}

	mustReadErr := func(wantMessage string) checkFunc {
		return func(lex *Lexer, i int) {
			tok, ok := lex.Read()
			if !ok {
				panic(fmt.Errorf("mustReadErr: source exhausted [check: %d]", i))
			}
			if tok.Kind != token.ERROR {
				panic(fmt.Errorf("mustReadErr: want ERROR, got: %s (%q) [check: %d]", tok.Kind, tok.Text.String(), i))
			}
			if wantMessage != tok.Message {
				panic(fmt.Errorf("mustReadErr: want(message): %q, got: %q [check: %d]", wantMessage, tok.Message, i))
			}
		}
	}

	mustReadPosition := func(lineStart, colStart, lineEnd, colEnd int) checkFunc {
		return func(lex *Lexer, i int) {
			tok, _ := lex.Read()
			got := [4]int{tok.Span.Start.Line, tok.Span.Start.Column, tok.Span.End.Line, tok.Span.End.Column}
			want := [4]int{lineStart, colStart, lineEnd, colEnd}
			if want != got {
				panic(fmt.Errorf("mustReadPosition: want: %v, got: %v [check: %d]", want, got, i))
			}
		}
	}

	mustReadUTF16Column := func(colStart, colEnd int) checkFunc {
		return func(lex *Lexer, i int) {
			tok, _ := lex.Read()
			if tok.Span.Start.ColumnUTF16 != colStart || tok.Span.End.ColumnUTF16 != colEnd {
				panic(fmt.Errorf("mustReadUTF16Column: want: %d-%d, got: %d-%d [check: %d]",
					colStart, colEnd, tok.Span.Start.ColumnUTF16, tok.Span.End.ColumnUTF16, i))
			}
		}
	}

	mustReadTrivia := func(kinds ...token.TriviaKind) checkFunc {
		return func(lex *Lexer, i int) {
			tok, _ := lex.Read()
			if len(tok.Trivia) != len(kinds) {
				panic(fmt.Errorf("mustReadTrivia: want %d trivia, got %d [check: %d]", len(kinds), len(tok.Trivia), i))
			}
			for j := range kinds {
				if tok.Trivia[j].Kind != kinds[j] {
					panic(fmt.Errorf("mustReadTrivia: want[%d]: %s, got: %s [check: %d]", j, kinds[j], tok.Trivia[j].Kind, i))
				}
			}
		}
	}

	t.Run("punctuators", func(t *testing.T) {
		run(t, "! $ & ( ) : = @ [ ] { } | ...",
			mustRead(token.BANG, ""),
			mustRead(token.DOLLAR, ""),
			mustRead(token.AND, ""),
			mustRead(token.LPAREN, ""),
			mustRead(token.RPAREN, ""),
			mustRead(token.COLON, ""),
			mustRead(token.EQUALS, ""),
			mustRead(token.AT, ""),
			mustRead(token.LBRACK, ""),
			mustRead(token.RBRACK, ""),
			mustRead(token.LBRACE, ""),
			mustRead(token.RBRACE, ""),
			mustRead(token.PIPE, ""),
			mustRead(token.SPREAD, ""),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("names", func(t *testing.T) {
		run(t, "foo _bar Baz2 __typename",
			mustRead(token.NAME, "foo"),
			mustRead(token.NAME, "_bar"),
			mustRead(token.NAME, "Baz2"),
			mustRead(token.NAME, "__typename"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("boolean and null literals are distinct kinds", func(t *testing.T) {
		run(t, "true false null truely",
			mustRead(token.TRUE, ""),
			mustRead(token.FALSE, ""),
			mustRead(token.NULL, ""),
			mustRead(token.NAME, "truely"),
		)
	})
	t.Run("integers", func(t *testing.T) {
		run(t, "0 -0 1337 -1337",
			mustRead(token.INTEGER, "0"),
			mustRead(token.INTEGER, "-0"),
			mustRead(token.INTEGER, "1337"),
			mustRead(token.INTEGER, "-1337"),
		)
	})
	t.Run("floats", func(t *testing.T) {
		run(t, "13.37 -0.5 1.23e-4 10E3 2e+6",
			mustRead(token.FLOAT, "13.37"),
			mustRead(token.FLOAT, "-0.5"),
			mustRead(token.FLOAT, "1.23e-4"),
			mustRead(token.FLOAT, "10E3"),
			mustRead(token.FLOAT, "2e+6"),
		)
	})
	t.Run("leading zeros are invalid", func(t *testing.T) {
		run(t, "00",
			mustReadErr("Invalid number: leading zeros are not allowed: `00`"),
			mustRead(token.EOF, ""),
		)
		run(t, "01",
			mustReadErr("Invalid number: leading zeros are not allowed: `01`"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("exponent needs a digit", func(t *testing.T) {
		run(t, "1e",
			mustReadErr("Invalid number: exponent must have at least one digit: `1e`"),
			mustRead(token.EOF, ""),
		)
		run(t, "1e+",
			mustReadErr("Invalid number: exponent must have at least one digit: `1e+`"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("trailing dot does not join the number", func(t *testing.T) {
		run(t, "1.",
			mustRead(token.INTEGER, "1"),
			mustReadErr("Unexpected `.`"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("minus without digits", func(t *testing.T) {
		run(t, "-",
			mustReadErr("Unexpected `-`"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("dot shapes", func(t *testing.T) {
		run(t, ".", mustReadErr("Unexpected `.`"))
		run(t, "..", mustReadErr("Unexpected `..` (use `...` for spread operator)"))
		run(t, ". .", mustReadErr("Unexpected `. .` (use `...` for spread operator)"))
		run(t, ".. .", mustReadErr("Unexpected `.. .`"))
		run(t, ". ..", mustReadErr("Unexpected `. ..`"))
		run(t, ". . .", mustReadErr("Unexpected `. . .`"))
		run(t, "...", mustRead(token.SPREAD, ""), mustRead(token.EOF, ""))
	})
	t.Run("dots across lines stay independent errors", func(t *testing.T) {
		run(t, ".\n..",
			mustReadErr("Unexpected `.`"),
			mustReadErr("Unexpected `..` (use `...` for spread operator)"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("single line string keeps raw text", func(t *testing.T) {
		run(t, `"hello \n é world"`,
			mustRead(token.STRING, `"hello \n é world"`),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("unterminated string at end of input", func(t *testing.T) {
		run(t, `"hello`,
			mustReadErr("Unterminated string literal"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("unterminated string at line break", func(t *testing.T) {
		run(t, "\"hello\nworld\"",
			mustReadErr("Unterminated string literal"),
			mustRead(token.NAME, "world"),
			mustReadErr("Unterminated string literal"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("control character in string", func(t *testing.T) {
		run(t, "\"a\ab\"",
			mustReadErr("Unexpected control character `\a` (U+0007: BELL) in string literal"),
		)
	})
	t.Run("unterminated wins over control character", func(t *testing.T) {
		run(t, "\"abc\a",
			mustReadErr("Unterminated string literal"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("block string with raw line breaks", func(t *testing.T) {
		run(t, "\"\"\"first\nsecond\"\"\"",
			mustRead(token.STRING, "\"\"\"first\nsecond\"\"\""),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("block string with escaped triple quote", func(t *testing.T) {
		run(t, `"""\""""""`,
			mustRead(token.STRING, `"""\""""""`),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("unterminated block string", func(t *testing.T) {
		run(t, `"""hello ""`,
			mustReadErr("Unterminated block string"),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("comment and comma are trivia", func(t *testing.T) {
		run(t, "# a comment\nfoo, bar",
			mustReadTrivia(token.TriviaKindComment),
			mustReadTrivia(token.TriviaKindComma),
			mustRead(token.EOF, ""),
		)
	})
	t.Run("trailing trivia attaches to EOF", func(t *testing.T) {
		run(t, "foo # trailing",
			mustRead(token.NAME, "foo"),
			mustReadTrivia(token.TriviaKindComment),
		)
	})
	t.Run("bom ignored at offset zero only", func(t *testing.T) {
		run(t, "\uFEFFfoo",
			mustRead(token.NAME, "foo"),
			mustRead(token.EOF, ""),
		)
		run(t, "foo\uFEFFbar",
			mustRead(token.NAME, "foo"),
			mustReadErr("Unexpected character `\uFEFF` (U+FEFF: BYTE ORDER MARK)"),
			mustRead(token.NAME, "bar"),
		)
	})
	t.Run("invisible characters are named", func(t *testing.T) {
		run(t, "\u202E",
			mustReadErr("Unexpected character `\u202E` (U+202E: RIGHT-TO-LEFT OVERRIDE)"),
		)
		run(t, "\u200D",
			mustReadErr("Unexpected character `\u200D` (U+200D: ZERO WIDTH JOINER)"),
		)
	})
	t.Run("positions across lines", func(t *testing.T) {
		run(t, "foo\nbar\r\nbaz\rqux",
			mustReadPosition(0, 0, 0, 3),
			mustReadPosition(1, 0, 1, 3),
			mustReadPosition(2, 0, 2, 3),
			mustReadPosition(3, 0, 3, 3),
		)
	})
	t.Run("utf16 columns diverge on supplementary plane", func(t *testing.T) {
		// the emoji is one code point but two UTF-16 code units
		run(t, `"😀" foo`,
			mustReadUTF16Column(0, 4),
			mustReadUTF16Column(5, 8),
		)
		run(t, `"é" foo`,
			mustReadUTF16Column(0, 3),
			mustReadUTF16Column(4, 7),
		)
	})
}

func TestLexer_Totality(t *testing.T) {
	inputs := []string{
		"",
		"\uFEFF",
		"query { hero }",
		"\x00\x01\x02",
		"\"unterminated",
		". . . . .",
		"-- 00 1e \"\n\"",
		strings.Repeat("{", 100),
		"‮attack‬",
	}
	for _, input := range inputs {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			lex := New(input)
			eofCount := 0
			lastOffset := -1
			for i := 0; i < len(input)+16; i++ {
				tok, ok := lex.Read()
				if !ok {
					break
				}
				require.GreaterOrEqual(t, tok.Span.Start.Offset, lastOffset, "byte offsets must not regress")
				lastOffset = tok.Span.Start.Offset
				if tok.Kind == token.EOF {
					eofCount++
					require.Equal(t, len(input), tok.Span.End.Offset, "EOF must account for the whole buffer")
				}
			}
			assert.Equal(t, 1, eofCount, "exactly one EOF, and it terminates the stream")
			_, ok := lex.Read()
			assert.False(t, ok, "the sequence ends after EOF")
		})
	}
}

// TestLexer_Progress guards against the scanner stalling: Read must advance
// the byte offset on every token until EOF, even for a one-rune buffer.
func TestLexer_Progress(t *testing.T) {
	done := make(chan []token.Token, 1)
	go func() {
		lex := New("a b")
		var toks []token.Token
		for {
			tok, ok := lex.Read()
			if !ok {
				break
			}
			toks = append(toks, tok)
		}
		done <- toks
	}()

	select {
	case toks := <-done:
		require.Len(t, toks, 3)
		assert.Equal(t, token.NAME, toks[0].Kind)
		assert.Equal(t, token.NAME, toks[1].Kind)
		assert.Equal(t, token.EOF, toks[2].Kind)
		for i := 1; i < len(toks); i++ {
			assert.Greater(t, toks[i].Span.End.Offset, toks[i-1].Span.Start.Offset)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("lexing a three-byte buffer did not finish within 3s")
	}
}

// TestLexer_RoundTrip re-lexes every spanned substring and expects the same
// token back.
func TestLexer_RoundTrip(t *testing.T) {
	const input = "query Hero($ep: Episode! = NEWHOPE) @cached {\n  hero(episode: $ep) { name friends { ...f } }\n}\nfragment f on Character { id }\n"

	lex := New(input)
	for {
		tok, ok := lex.Read()
		if !ok || tok.Kind == token.EOF {
			break
		}
		spanned := input[tok.Span.Start.Offset:tok.Span.End.Offset]
		relexed, ok := New(spanned).Read()
		require.True(t, ok)
		assert.Equal(t, tok.Kind, relexed.Kind, "re-lexing %q", spanned)
		assert.Equal(t, tok.Text.String(), relexed.Text.String(), "re-lexing %q", spanned)
	}
}

func TestLexer_WithPath(t *testing.T) {
	lex := New("foo", WithPath("schema.graphql"))
	tok, ok := lex.Read()
	require.True(t, ok)
	assert.Equal(t, "schema.graphql", tok.Span.Path)
}

func TestLexer_BorrowedText(t *testing.T) {
	lex := New(`foo "bar"`)
	for {
		tok, ok := lex.Read()
		if !ok {
			break
		}
		if tok.Kind == token.NAME || tok.Kind == token.STRING {
			assert.False(t, tok.Text.IsOwned(), "scanned text borrows from the source buffer")
		}
	}
}

func TestLexer_TokenDump(t *testing.T) {
	const input = "# heroes\nquery Hero {\n  hero, name\n}\n"

	lex := New(input)
	var out strings.Builder
	for {
		tok, ok := lex.Read()
		if !ok {
			break
		}
		for _, trivia := range tok.Trivia {
			fmt.Fprintf(&out, "  trivia %s %q %s\n", trivia.Kind, trivia.Text.String(), trivia.Span)
		}
		fmt.Fprintf(&out, "%s %q %s\n", tok.Kind, tok.Text.String(), tok.Span)
	}

	dump := []byte(out.String())
	goldie.Assert(t, "token_dump", dump)
	if t.Failed() {
		fixture, err := os.ReadFile("./fixtures/token_dump.golden")
		if err == nil {
			diffview.NewGoland().DiffViewBytes("token_dump", fixture, dump)
		}
	}
}
