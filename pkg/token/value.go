package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// StringDecodeErrorKind classifies string decoding failures.
type StringDecodeErrorKind int

const (
	StringDecodeErrorKindUndefined StringDecodeErrorKind = iota
	// StringDecodeErrorKindInvalidEscape marks an unknown escape, e.g. `\q`.
	StringDecodeErrorKindInvalidEscape
	// StringDecodeErrorKindUnterminated marks a missing closing quote.
	StringDecodeErrorKindUnterminated
	// StringDecodeErrorKindInvalidUnicodeEscape marks a malformed or
	// out-of-range unicode escape, e.g. `\uZZZZ` or `\u{110000}`.
	StringDecodeErrorKindInvalidUnicodeEscape
)

// StringDecodeError describes why a STRING token could not be decoded.
type StringDecodeError struct {
	Kind StringDecodeErrorKind
	// Sequence is the offending escape sequence, e.g. `\q` or `\u{11FFFF}`.
	Sequence string
}

func (e StringDecodeError) Error() string {
	switch e.Kind {
	case StringDecodeErrorKindInvalidEscape:
		return fmt.Sprintf("Invalid escape sequence: `%s`", e.Sequence)
	case StringDecodeErrorKindUnterminated:
		return "Unterminated string: missing closing quote"
	case StringDecodeErrorKindInvalidUnicodeEscape:
		return fmt.Sprintf("Invalid unicode escape: `%s`", e.Sequence)
	default:
		return "invalid string literal"
	}
}

// ParseIntValue parses the raw text of an INTEGER token. The result stays at
// 64 bits so callers can range check against the 32-bit limit themselves and
// still report the raw text on overflow.
func (t Token) ParseIntValue() (int64, error) {
	if t.Kind != INTEGER {
		return 0, fmt.Errorf("ParseIntValue: token is %s, not INTEGER", t.Kind)
	}
	return strconv.ParseInt(t.Text.String(), 10, 64)
}

// ParseFloatValue parses the raw text of a FLOAT token. Out-of-range literals
// like `1e999` return strconv.ErrRange together with an infinity.
func (t Token) ParseFloatValue() (float64, error) {
	if t.Kind != FLOAT {
		return 0, fmt.Errorf("ParseFloatValue: token is %s, not FLOAT", t.Kind)
	}
	return strconv.ParseFloat(t.Text.String(), 64)
}

// ParseStringValue decodes the raw text of a STRING token into its value.
//
// Single-line strings process the escapes `\n`, `\r`, `\t`, `\\`, `\"`,
// `\/`, `\b`, `\f`, fixed `\uXXXX` and braced `\u{...}`. Block strings strip
// the common indentation and leading and trailing blank lines, and process
// only the `\"""` escape.
func (t Token) ParseStringValue() (string, error) {
	if t.Kind != STRING {
		return "", fmt.Errorf("ParseStringValue: token is %s, not STRING", t.Kind)
	}
	raw := t.Text.String()
	if strings.HasPrefix(raw, `"""`) {
		return decodeBlockString(raw)
	}
	return decodeSingleString(raw)
}

func decodeSingleString(raw string) (string, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return "", StringDecodeError{Kind: StringDecodeErrorKindUnterminated}
	}
	content := raw[1 : len(raw)-1]

	var out strings.Builder
	out.Grow(len(content))

	for i := 0; i < len(content); {
		r, size := utf8.DecodeRuneInString(content[i:])
		i += size
		if r != '\\' {
			out.WriteRune(r)
			continue
		}
		if i == len(content) {
			return "", StringDecodeError{Kind: StringDecodeErrorKindInvalidEscape, Sequence: `\`}
		}
		esc, size := utf8.DecodeRuneInString(content[i:])
		i += size
		switch esc {
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case '\\':
			out.WriteByte('\\')
		case '"':
			out.WriteByte('"')
		case '/':
			out.WriteByte('/')
		case 'b':
			out.WriteByte(0x08)
		case 'f':
			out.WriteByte(0x0C)
		case 'u':
			decoded, next, err := decodeUnicodeEscape(content, i)
			if err != nil {
				return "", err
			}
			out.WriteRune(decoded)
			i = next
		default:
			return "", StringDecodeError{Kind: StringDecodeErrorKindInvalidEscape, Sequence: `\` + string(esc)}
		}
	}

	return out.String(), nil
}

// decodeUnicodeEscape decodes the escape payload following `\u` starting at
// content[i] and returns the rune and the index after the escape. Both the
// braced form `\u{1F600}` and the fixed four digit form `\u00E9` are
// supported. Surrogate code points are not valid runes and are rejected.
func decodeUnicodeEscape(content string, i int) (rune, int, error) {
	if i < len(content) && content[i] == '{' {
		i++
		var hex strings.Builder
		for {
			if i == len(content) {
				return 0, 0, StringDecodeError{
					Kind:     StringDecodeErrorKindInvalidUnicodeEscape,
					Sequence: `\u{` + hex.String(),
				}
			}
			c, size := utf8.DecodeRuneInString(content[i:])
			i += size
			if c == '}' {
				break
			}
			if !isHexDigit(c) {
				return 0, 0, StringDecodeError{
					Kind:     StringDecodeErrorKindInvalidUnicodeEscape,
					Sequence: `\u{` + hex.String() + string(c),
				}
			}
			hex.WriteRune(c)
		}
		if hex.Len() == 0 {
			return 0, 0, StringDecodeError{
				Kind:     StringDecodeErrorKindInvalidUnicodeEscape,
				Sequence: `\u{}`,
			}
		}
		code, err := strconv.ParseUint(hex.String(), 16, 32)
		if err != nil || !utf8.ValidRune(rune(code)) {
			return 0, 0, StringDecodeError{
				Kind:     StringDecodeErrorKindInvalidUnicodeEscape,
				Sequence: `\u{` + hex.String() + `}`,
			}
		}
		return rune(code), i, nil
	}

	var hex strings.Builder
	for j := 0; j < 4; j++ {
		if i == len(content) {
			return 0, 0, StringDecodeError{
				Kind:     StringDecodeErrorKindInvalidUnicodeEscape,
				Sequence: `\u` + hex.String(),
			}
		}
		c, size := utf8.DecodeRuneInString(content[i:])
		i += size
		if !isHexDigit(c) {
			return 0, 0, StringDecodeError{
				Kind:     StringDecodeErrorKindInvalidUnicodeEscape,
				Sequence: `\u` + hex.String() + string(c),
			}
		}
		hex.WriteRune(c)
	}
	code, _ := strconv.ParseUint(hex.String(), 16, 32)
	if !utf8.ValidRune(rune(code)) {
		return 0, 0, StringDecodeError{
			Kind:     StringDecodeErrorKindInvalidUnicodeEscape,
			Sequence: `\u` + hex.String(),
		}
	}
	return rune(code), i, nil
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

func decodeBlockString(raw string) (string, error) {
	if len(raw) < 6 || !strings.HasPrefix(raw, `"""`) || !strings.HasSuffix(raw, `"""`) {
		return "", StringDecodeError{Kind: StringDecodeErrorKindUnterminated}
	}
	content := raw[3 : len(raw)-3]
	content = strings.ReplaceAll(content, `\"""`, `"""`)

	lines := splitLines(content)

	// Common indentation of all lines but the first, blank lines excluded.
	// Indentation is tabs and spaces, matching the WhiteSpace production.
	commonIndent := -1
	for i := 1; i < len(lines); i++ {
		if blankBlockLine(lines[i]) {
			continue
		}
		indent := blockIndent(lines[i])
		if commonIndent < 0 || indent < commonIndent {
			commonIndent = indent
		}
	}
	if commonIndent < 0 {
		commonIndent = 0
	}

	dedented := make([]string, 0, len(lines))
	for i, line := range lines {
		if i > 0 && len(line) >= commonIndent {
			line = line[commonIndent:]
		}
		dedented = append(dedented, line)
	}

	start := 0
	for start < len(dedented) && blankBlockLine(dedented[start]) {
		start++
	}
	end := len(dedented)
	for end > start && blankBlockLine(dedented[end-1]) {
		end--
	}

	return strings.Join(dedented[start:end], "\n"), nil
}

// splitLines yields one line per `\n`, `\r\n` or `\r` terminator, a trailing
// terminator closing the last line rather than opening an empty one.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func blockIndent(line string) (indent int) {
	for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
		indent++
	}
	return indent
}

func blankBlockLine(line string) bool {
	return blockIndent(line) == len(line)
}
