// Package format holds the small text helpers shared by the catalog views.
package format

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NumberDigits is the width of a displayed Pokédex number.
const NumberDigits = 3

//nolint:gochecknoglobals // Compiled once; read-only.
var (
	nonPrintable = regexp.MustCompile(`[^ -~]+`)
	separators   = strings.NewReplacer("-", " ", "_", " ")
)

// ZeroPad left-pads the decimal form of n with zeros up to places
// characters. Longer numbers are returned unchanged.
func ZeroPad(n, places int) string {
	s := strconv.Itoa(n)
	if len(s) >= places {
		return s
	}
	return strings.Repeat("0", places-len(s)) + s
}

// Number renders an id as "#007".
func Number(id int) string {
	return "#" + ZeroPad(id, NumberDigits)
}

// RemoveDashesAndUnderscores replaces every '-' and '_' with a space.
func RemoveDashesAndUnderscores(s string) string {
	return separators.Replace(s)
}

// CleanText replaces each run of characters outside printable ASCII
// (space through '~') with a single space.
func CleanText(s string) string {
	return nonPrintable.ReplaceAllString(s, " ")
}

// Label turns an API identifier such as "special-attack" into
// "Special Attack".
func Label(s string) string {
	return cases.Title(language.English).String(RemoveDashesAndUnderscores(s))
}
