// Package tokensource defines the contract between token producers and the
// parser, plus the lookahead Stream the parser reads from. Keeping the
// contract minimal lets the parser run unchanged against the lexer, replayed
// token slices, or any future producer.
package tokensource

import "github.com/wundergraph/gqlparse/pkg/token"

// Source produces a finite token sequence ending in exactly one EOF token.
type Source interface {
	// Read returns the next token. After the EOF token has been returned
	// once, ok is false for every further call.
	Read() (t token.Token, ok bool)
	// TracksUTF16Columns reports whether span positions carry UTF-16
	// columns in addition to code point columns. Producers that cannot
	// know them, e.g. replayed or synthesized tokens, report false.
	TracksUTF16Columns() bool
}

// SliceSource replays a fixed token slice. It serves tests and tooling that
// synthesize tokens instead of lexing them from text.
type SliceSource struct {
	tokens []token.Token
	next   int
	utf16  bool
}

// NewSliceSource returns a Source yielding the given tokens in order.
func NewSliceSource(tokens []token.Token, tracksUTF16Columns bool) *SliceSource {
	return &SliceSource{
		tokens: tokens,
		utf16:  tracksUTF16Columns,
	}
}

func (s *SliceSource) Read() (t token.Token, ok bool) {
	if s.next == len(s.tokens) {
		return t, false
	}
	t = s.tokens[s.next]
	s.next++
	return t, true
}

func (s *SliceSource) TracksUTF16Columns() bool {
	return s.utf16
}
