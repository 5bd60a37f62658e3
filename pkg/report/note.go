package report

import (
	"fmt"

	"github.com/wundergraph/gqlparse/pkg/position"
)

// NoteKind selects the marker a note is rendered with.
type NoteKind int

const (
	NoteKindUndefined NoteKind = iota
	// NoteKindGeneral points at related source, e.g. where a string started.
	NoteKindGeneral
	// NoteKindHelp suggests a concrete fix.
	NoteKindHelp
	// NoteKindSpec links the relevant section of the GraphQL specification.
	NoteKindSpec
)

func (k NoteKind) String() string {
	switch k {
	case NoteKindGeneral:
		return "note"
	case NoteKindHelp:
		return "help"
	case NoteKindSpec:
		return "spec"
	default:
		return fmt.Sprintf("#undefined NoteKind case for %d# (see note.go)", k)
	}
}

// Note is secondary information attached to an Error. A note may point at a
// span of its own, e.g. the opening quote of an unterminated string.
type Note struct {
	Kind    NoteKind
	Message string
	Span    position.Span
	HasSpan bool
}

// GeneralNote attaches context without pointing at source.
func GeneralNote(message string) Note {
	return Note{Kind: NoteKindGeneral, Message: message}
}

// GeneralNoteAt attaches context pointing at the given span.
func GeneralNoteAt(message string, span position.Span) Note {
	return Note{Kind: NoteKindGeneral, Message: message, Span: span, HasSpan: true}
}

// HelpNote suggests a fix.
func HelpNote(message string) Note {
	return Note{Kind: NoteKindHelp, Message: message}
}

// HelpNoteAt suggests a fix pointing at the given span.
func HelpNoteAt(message string, span position.Span) Note {
	return Note{Kind: NoteKindHelp, Message: message, Span: span, HasSpan: true}
}

// SpecNote links a section of the GraphQL specification.
func SpecNote(url string) Note {
	return Note{Kind: NoteKindSpec, Message: url}
}
