// Package goldie wraps sebdah/goldie with the fixture conventions used
// throughout this repository: golden files live in a `fixtures` directory
// next to the test, with the `.golden` suffix.
package goldie

import (
	"testing"

	goldiev2 "github.com/sebdah/goldie/v2"
)

func New(t *testing.T) *goldiev2.Goldie {
	t.Helper()

	return goldiev2.New(t,
		goldiev2.WithFixtureDir("fixtures"),
		goldiev2.WithNameSuffix(".golden"),
	)
}
