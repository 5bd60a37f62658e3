package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wundergraph/gqlparse/pkg/position"
)

func spanAt(line, column, length int) position.Span {
	return position.Span{
		Start: position.Position{Line: line, Column: column},
		End:   position.Position{Line: line, Column: column + length},
	}
}

func TestFormatOneline(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := Error{
			Message: "expected `:`, found `String`",
			Span:    spanAt(4, 11, 6).WithPath("schema.graphql"),
			Kind:    ErrorKindUnexpectedToken,
		}
		assert.Equal(t, "schema.graphql:5:12: error: expected `:`, found `String`", err.FormatOneline())
	})
	t.Run("without path", func(t *testing.T) {
		err := Error{
			Message: "unclosed `{`",
			Span:    spanAt(0, 0, 1),
			Kind:    ErrorKindUnclosedDelimiter,
		}
		assert.Equal(t, "<input>:1:1: error: unclosed `{`", err.FormatOneline())
	})
}

func TestFormatDetailed(t *testing.T) {
	const source = "type User {\n  userName String\n}\n"

	t.Run("with excerpt and help note", func(t *testing.T) {
		err := Error{
			Message: "expected `:`, found `String`",
			Span:    spanAt(1, 11, 6).WithPath("schema.graphql"),
			Kind:    ErrorKindUnexpectedToken,
		}.WithNote(HelpNote("add `:` between field name and type"))

		want := "error: expected `:`, found `String`\n" +
			"  --> schema.graphql:2:12\n" +
			"   |\n" +
			" 2 |   userName String\n" +
			"   |            ^^^^^^\n" +
			"   = help: add `:` between field name and type\n"
		assert.Equal(t, want, err.FormatDetailed(source))
	})

	t.Run("note with its own span", func(t *testing.T) {
		err := Error{
			Message: "unclosed `{`",
			Span:    spanAt(2, 0, 1),
			Kind:    ErrorKindUnclosedDelimiter,
		}.WithNote(GeneralNoteAt("delimiter opened here", spanAt(0, 10, 1)))

		want := "error: unclosed `{`\n" +
			"  --> <input>:3:1\n" +
			"   |\n" +
			" 3 | }\n" +
			"   | ^\n" +
			"   = note: delimiter opened here\n" +
			"      1 | type User {\n" +
			"        |           -\n"
		assert.Equal(t, want, err.FormatDetailed(source))
	})

	t.Run("empty source omits the excerpt", func(t *testing.T) {
		err := Error{
			Message: "unexpected end of input",
			Span:    spanAt(4, 0, 0),
			Kind:    ErrorKindUnexpectedEOF,
		}.WithNote(SpecNote("https://spec.graphql.org/September2025/#sec-Document"))

		want := "error: unexpected end of input\n" +
			"  --> <input>:5:1\n" +
			"   = spec: https://spec.graphql.org/September2025/#sec-Document\n"
		assert.Equal(t, want, err.FormatDetailed(""))
	})

	t.Run("zero width span underlines a single column", func(t *testing.T) {
		err := Error{
			Message: "unexpected end of input",
			Span:    spanAt(2, 1, 0),
			Kind:    ErrorKindUnexpectedEOF,
		}
		want := "error: unexpected end of input\n" +
			"  --> <input>:3:2\n" +
			"   |\n" +
			" 3 | }\n" +
			"   |  ^\n"
		assert.Equal(t, want, err.FormatDetailed(source))
	})
}

func TestErrorList(t *testing.T) {
	list := ErrorList{
		{Message: "first", Span: spanAt(0, 0, 1)},
		{Message: "second", Span: spanAt(1, 2, 1)},
	}
	assert.True(t, list.HasErrors())
	assert.Equal(t, "<input>:1:1: error: first\n<input>:2:3: error: second", list.Error())
	assert.False(t, ErrorList(nil).HasErrors())
}

func TestResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := Success("doc")
		assert.True(t, r.IsClean())
		assert.False(t, r.HasErrors())

		doc, err := r.Strict()
		assert.NoError(t, err)
		assert.Equal(t, "doc", doc)
	})

	t.Run("recovered keeps the document and the errors", func(t *testing.T) {
		errs := ErrorList{{Message: "boom", Span: spanAt(0, 0, 1)}}
		r := Recovered("doc", errs)
		assert.True(t, r.HasDocument)
		assert.True(t, r.HasErrors())
		assert.False(t, r.IsClean())

		doc, err := r.Strict()
		assert.Error(t, err)
		assert.Empty(t, doc, "strict mode discards the document")
	})

	t.Run("recovered with no errors is a success", func(t *testing.T) {
		r := Recovered("doc", nil)
		assert.True(t, r.IsClean())
	})

	t.Run("failure", func(t *testing.T) {
		errs := ErrorList{{Message: "boom", Span: spanAt(0, 0, 1)}}
		r := Failure[string](errs)
		assert.False(t, r.HasDocument)
		assert.True(t, r.HasErrors())

		_, err := r.Strict()
		assert.ErrorContains(t, err, "boom")
	})
}
