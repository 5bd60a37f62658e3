package token

import "strings"

// Text is token text with an ownership mode. A borrowed Text is a view into
// the source buffer it was scanned from: cheap, but it keeps the whole buffer
// reachable and must not outlive it. An owned Text has independent lifetime.
// Sources that synthesize text (rather than slice a buffer) produce owned
// Text directly.
type Text struct {
	value string
	owned bool
}

// Borrowed returns a Text aliasing the given slice of a source buffer.
func Borrowed(s string) Text {
	return Text{value: s}
}

// Owned returns a Text that asserts independent ownership of s.
func Owned(s string) Text {
	return Text{value: s, owned: true}
}

// ToOwned returns an owned copy, detaching the text from the source buffer.
// Already owned Text is returned unchanged.
func (t Text) ToOwned() Text {
	if t.owned {
		return t
	}
	return Text{value: strings.Clone(t.value), owned: true}
}

// IsOwned reports whether the text has independent lifetime.
func (t Text) IsOwned() bool {
	return t.owned
}

func (t Text) String() string {
	return t.value
}

// Len is the byte length of the text.
func (t Text) Len() int {
	return len(t.value)
}
