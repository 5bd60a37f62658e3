package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wundergraph/gqlparse/pkg/position"
)

const unnamedSource = "<input>"

// FormatOneline renders the error as a single line.
//
//	schema.graphql:5:12: error: expected `:`, found `String`
func (e Error) FormatOneline() string {
	return fmt.Sprintf("%s:%d:%d: error: %s",
		displayPath(e.Span.Path), e.Span.Start.Line+1, e.Span.Start.Column+1, e.Message)
}

// FormatDetailed renders the error with source excerpts and all notes. Pass
// the source text the error was produced from; with an empty source the
// excerpts are omitted and only the locations remain.
//
//	error: expected `:`, found `String`
//	  --> schema.graphql:5:12
//	   |
//	 5 |     userName String
//	   |              ^^^^^^
//	   = help: add `:` between field name and type
func (e Error) FormatDetailed(source string) string {
	var out strings.Builder

	out.WriteString("error: ")
	out.WriteString(e.Message)
	out.WriteByte('\n')

	fmt.Fprintf(&out, "  --> %s:%d:%d\n",
		displayPath(e.Span.Path), e.Span.Start.Line+1, e.Span.Start.Column+1)

	lines := sourceLines(source)
	writeExcerpt(&out, lines, e.Span)

	for _, note := range e.Notes {
		fmt.Fprintf(&out, "   = %s: %s\n", note.Kind, note.Message)
		if note.HasSpan {
			writeNoteExcerpt(&out, lines, note.Span)
		}
	}

	return out.String()
}

func displayPath(path string) string {
	if path == "" {
		return unnamedSource
	}
	return path
}

// sourceLines splits the source the way terminators are counted: one line per
// `\n` or `\r\n`, with a trailing terminator closing the last line rather
// than opening an empty one.
func sourceLines(source string) []string {
	if source == "" {
		return nil
	}
	lines := strings.Split(source, "\n")
	terminated := lines[len(lines)-1] == ""
	if terminated {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		if i == len(lines)-1 && !terminated {
			// a bare `\r` at the end of an unterminated source is not
			// part of a `\r\n` pair
			break
		}
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

func writeExcerpt(out *strings.Builder, lines []string, span position.Span) {
	lineNum := span.Start.Line
	if lineNum >= len(lines) {
		return
	}

	display := lineNum + 1
	width := gutterWidth(display)

	fmt.Fprintf(out, "%*s |\n", width, "")
	fmt.Fprintf(out, "%*d | %s\n", width, display, lines[lineNum])

	underline := span.End.Column - span.Start.Column
	if underline < 1 {
		underline = 1
	}
	fmt.Fprintf(out, "%*s | %s%s\n",
		width, "", strings.Repeat(" ", span.Start.Column), strings.Repeat("^", underline))
}

func writeNoteExcerpt(out *strings.Builder, lines []string, span position.Span) {
	lineNum := span.Start.Line
	if lineNum >= len(lines) {
		return
	}

	display := lineNum + 1
	width := gutterWidth(display)

	fmt.Fprintf(out, "     %*d | %s\n", width, display, lines[lineNum])
	fmt.Fprintf(out, "     %*s | %s-\n",
		width, "", strings.Repeat(" ", span.Start.Column))
}

func gutterWidth(displayLineNum int) int {
	if w := len(strconv.Itoa(displayLineNum)); w > 2 {
		return w
	}
	return 2
}
