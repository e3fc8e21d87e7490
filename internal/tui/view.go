package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/artwork"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokeapi"
)

// View is a top-level screen managed by the App. The App calls Dismiss
// exactly once when the view is replaced or the program ends; views must
// not apply any asynchronous result afterwards.
type View interface {
	tea.Model
	Dismiss()
}

// inputCapturer is implemented by views that temporarily own all key
// presses, e.g. while a text input is focused.
type inputCapturer interface {
	CapturingInput() bool
}

// DetailFetcher loads remote detail data.
type DetailFetcher interface {
	Pokemon(ctx context.Context, id int) (*pokeapi.Pokemon, error)
	Species(ctx context.Context, id int) (*pokeapi.Species, error)
}

// ImageLoader downloads and renders artwork.
type ImageLoader interface {
	Load(ctx context.Context, src string) (artwork.Picture, error)
}

// capturing reports whether v currently owns key input.
func capturing(v tea.Model) bool {
	c, ok := v.(inputCapturer)
	return ok && c.CapturingInput()
}
