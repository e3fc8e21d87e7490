package pokedex

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lower-cases s and strips diacritics so "Flabébé" matches "flabebe".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Search returns the records matching query, in id order.
//
// An empty query matches everything. A number (optionally prefixed with '#')
// matches that id. Otherwise a record matches when its folded English name
// contains the folded query or one of its types equals it.
func (d *Dataset) Search(query string) []Record {
	query = strings.TrimSpace(query)
	if query == "" {
		return d.All()
	}

	if id, err := strconv.Atoi(strings.TrimPrefix(query, "#")); err == nil {
		if r, lookupErr := d.Lookup(id); lookupErr == nil {
			return []Record{r}
		}
		return []Record{}
	}

	q := Fold(query)
	out := []Record{}
	for _, r := range d.records {
		if strings.Contains(Fold(r.DisplayName()), q) || hasType(r, q) {
			out = append(out, r)
		}
	}
	return out
}

func hasType(r Record, key string) bool {
	for _, t := range r.Type {
		if t.Key() == key {
			return true
		}
	}
	return false
}
