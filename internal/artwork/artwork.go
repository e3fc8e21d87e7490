// Package artwork resolves Pokémon artwork URLs and renders downloaded
// images as terminal half-block art, falling back to an embedded
// placeholder when an image cannot be loaded.
package artwork

import (
	_ "embed"
	"strings"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/format"
)

// DefaultBaseURL hosts one PNG per zero-padded id.
const DefaultBaseURL = "https://raw.githubusercontent.com/HybridShivam/Pokemon/master/assets/images"

// PlaceholderSource identifies the bundled placeholder image.
const PlaceholderSource = "embedded:ball"

//go:embed placeholder.txt
var placeholderArt string

// Picture is an image source together with its rendered art.
type Picture struct {
	Source string
	Art    string
}

// IsPlaceholder reports whether p shows the bundled placeholder.
func (p Picture) IsPlaceholder() bool {
	return p.Source == PlaceholderSource
}

// Placeholder returns the bundled fallback picture.
func Placeholder() Picture {
	return Picture{Source: PlaceholderSource, Art: strings.TrimRight(placeholderArt, "\n")}
}

// Resolver maps ids to image URLs.
type Resolver struct {
	BaseURL string
}

// NewResolver returns a resolver for baseURL, or DefaultBaseURL when empty.
func NewResolver(baseURL string) Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Resolver{BaseURL: strings.TrimRight(baseURL, "/")}
}

// URL returns the image URL for id.
func (r Resolver) URL(id int) string {
	base := r.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return base + "/" + format.ZeroPad(id, format.NumberDigits) + ".png"
}

// ImageURL returns the image URL for id on the default host.
func ImageURL(id int) string {
	return NewResolver("").URL(id)
}
