package tokensource

import "github.com/wundergraph/gqlparse/pkg/token"

// Stream buffers tokens from a Source and adds unbounded lookahead on top.
//
// Consumed tokens stay in the buffer so Current can address the most recent
// one. Callers should CompactBuffer at natural boundaries, e.g. after each
// top level definition, to keep the buffer from growing with the input.
type Stream struct {
	source Source
	buffer []token.Token
	// consumed counts the buffered tokens already read. The token at
	// consumed-1 is the current one.
	consumed int
}

// NewStream returns a Stream reading from source.
func NewStream(source Source) *Stream {
	return &Stream{
		source: source,
	}
}

// Peek returns the next unconsumed token without consuming it. ok is false
// when the source is exhausted.
func (s *Stream) Peek() (token.Token, bool) {
	return s.PeekNth(0)
}

// PeekNth returns the token n positions ahead, 0 being the next unconsumed
// token.
func (s *Stream) PeekNth(n int) (token.Token, bool) {
	target := s.consumed + n
	s.fill(target + 1)
	if target >= len(s.buffer) {
		return token.Token{}, false
	}
	return s.buffer[target], true
}

// Read consumes the next token and returns it. The token stays addressable
// via Current until the next CompactBuffer call.
func (s *Stream) Read() (token.Token, bool) {
	s.fill(s.consumed + 1)
	if s.consumed == len(s.buffer) {
		return token.Token{}, false
	}
	s.consumed++
	return s.buffer[s.consumed-1], true
}

// Current returns the most recently consumed token. ok is false before the
// first Read.
func (s *Stream) Current() (token.Token, bool) {
	if s.consumed == 0 {
		return token.Token{}, false
	}
	return s.buffer[s.consumed-1], true
}

// AtEnd reports whether the next token is EOF or the source is exhausted.
func (s *Stream) AtEnd() bool {
	t, ok := s.Peek()
	return !ok || t.Kind == token.EOF
}

// CompactBuffer drops consumed tokens except the current one. Buffer capacity
// is retained on purpose: compaction runs once per definition, and shrinking
// just forces the next definition to grow the buffer again.
func (s *Stream) CompactBuffer() {
	if s.consumed < 2 {
		return
	}
	keep := copy(s.buffer, s.buffer[s.consumed-1:])
	s.buffer = s.buffer[:keep]
	s.consumed = 1
}

// BufferLen returns the number of buffered tokens.
func (s *Stream) BufferLen() int {
	return len(s.buffer)
}

func (s *Stream) fill(count int) {
	for len(s.buffer) < count {
		t, ok := s.source.Read()
		if !ok {
			return
		}
		s.buffer = append(s.buffer, t)
	}
}
