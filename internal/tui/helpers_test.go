package tui

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/artwork"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokeapi"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/session"
)

var errUnavailable = errors.New("service unavailable")

// fakeFetcher records calls and answers from per-resource functions.
type fakeFetcher struct {
	pokemonCalls atomic.Int32
	speciesCalls atomic.Int32

	mu      sync.Mutex
	ids     []int
	pokemon func(id int) (*pokeapi.Pokemon, error)
	species func(id int) (*pokeapi.Species, error)
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		pokemon: func(id int) (*pokeapi.Pokemon, error) {
			return &pokeapi.Pokemon{
				ID:        id,
				Sprites:   pokeapi.Sprites{{Name: "front_default", URL: "http://img.local/front.png"}},
				Stats:     []pokeapi.Stat{{Name: "hp", BaseValue: 45}, {Name: "special-attack", BaseValue: 65}},
				Abilities: []string{"overgrow", "chlorophyll"},
				Weight:    69,
				Height:    7,
			}, nil
		},
		species: func(id int) (*pokeapi.Species, error) {
			return &pokeapi.Species{
				ID:         id,
				Generation: "generation-i",
				FlavorTextEntries: []pokeapi.LocalizedText{
					{Language: "ja", Text: "ふしぎなタネ"},
					{Language: "en", Text: "A strange seed was\nplanted on its\fback."},
				},
				Genera: []pokeapi.LocalizedText{{Language: "en", Text: "Seed Pokémon"}},
			}, nil
		},
	}
}

func (f *fakeFetcher) Pokemon(_ context.Context, id int) (*pokeapi.Pokemon, error) {
	f.pokemonCalls.Add(1)
	f.record(id)
	return f.pokemon(id)
}

func (f *fakeFetcher) Species(_ context.Context, id int) (*pokeapi.Species, error) {
	f.speciesCalls.Add(1)
	f.record(id)
	return f.species(id)
}

func (f *fakeFetcher) record(id int) {
	f.mu.Lock()
	f.ids = append(f.ids, id)
	f.mu.Unlock()
}

func (f *fakeFetcher) calls() int {
	return int(f.pokemonCalls.Load() + f.speciesCalls.Load())
}

// fakeImages answers image loads with fixed art or an error.
type fakeImages struct {
	calls atomic.Int32
	err   error
}

func (f *fakeImages) Load(_ context.Context, src string) (artwork.Picture, error) {
	f.calls.Add(1)
	if f.err != nil {
		return artwork.Picture{}, f.err
	}
	return artwork.Picture{Source: src, Art: "[art]"}, nil
}

func testDataset(t *testing.T) *pokedex.Dataset {
	t.Helper()
	ds, err := pokedex.Embedded()
	require.NoError(t, err)
	return ds
}

func signedIn(t *testing.T) *session.Local {
	t.Helper()
	s := session.NewLocal(nil)
	require.NoError(t, s.Login("ash"))
	return s
}

// collectMsgs runs cmd and every command of a batch, returning the
// produced messages. Commands returned while handling those messages are
// not run.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// deliver feeds msgs to m in order.
func deliver(m tea.Model, msgs []tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
