// Package cleanser normalises the free text found in the key column of a
// master spreadsheet so that labels typed by hand compare equal.
package cleanser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Cleanser turns a raw key cell into the field key used in projections.
type Cleanser interface {
	Clean(raw string) string
}

// Func adapts an ordinary function to the Cleanser interface.
type Func func(string) string

// Clean calls f(raw).
func (f Func) Clean(raw string) string { return f(raw) }

// typographic maps characters Excel autocorrect likes to insert onto their
// plain equivalents.
var typographic = strings.NewReplacer(
	"\u2018", "'",
	"\u2019", "'",
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2013", "-",
	"\u2014", "-",
	"\u00a0", " ",
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	"\t", " ",
)

// TextCleanser is the default Cleanser.
type TextCleanser struct{}

// New returns the default Cleanser.
func New() Cleanser { return TextCleanser{} }

// Clean applies NFC normalisation, replaces typographic quotes, dashes and
// line breaks, collapses runs of spaces and trims the result.
func (TextCleanser) Clean(raw string) string {
	if raw == "" {
		return raw
	}
	s := norm.NFC.String(raw)
	s = typographic.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// Identity returns raw unchanged.
var Identity Cleanser = Func(func(raw string) string { return raw })
