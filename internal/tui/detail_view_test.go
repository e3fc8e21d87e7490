package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/artwork"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokeapi"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/tui/detail"
)

func newTestDetailView(t *testing.T, id int, api DetailFetcher, images ImageLoader) *DetailView {
	t.Helper()
	ds := testDataset(t)
	rec, err := ds.Lookup(id)
	require.NoError(t, err)
	v := NewDetailView(context.Background(), ds, api, images, artwork.NewResolver("http://img.local"), rec)
	v.Update(tea.WindowSizeMsg{Width: 120, Height: 200})
	return v
}

func TestDetailView_LoadsBothResources(t *testing.T) {
	api := newFakeFetcher()
	images := &fakeImages{}
	v := newTestDetailView(t, 1, api, images)

	msgs := collectMsgs(v.Init())
	assert.Equal(t, 2, api.calls())
	assert.Equal(t, int32(1), images.calls.Load())
	assert.True(t, v.PokemonSlot().Pending())
	assert.True(t, v.SpeciesSlot().Pending())

	deliver(v, msgs)

	require.True(t, v.PokemonSlot().Succeeded())
	require.True(t, v.SpeciesSlot().Succeeded())
	assert.Equal(t, "http://img.local/001.png", v.ImageSource())

	out := v.Content()
	assert.Contains(t, out, "#001")
	assert.Contains(t, out, "Bulbasaur")
	assert.Contains(t, out, "generation i")
	assert.Contains(t, out, "A strange seed was planted on its back.")
	assert.Contains(t, out, "Seed Pokémon")
	assert.Contains(t, out, "front default")
	assert.Contains(t, out, "Special Attack")
	assert.Contains(t, out, "chlorophyll")
	assert.Contains(t, out, "Weight")
	assert.Contains(t, out, "[art]")
	assert.Contains(t, v.View(), "Bulbasaur")
}

func TestDetailView_ResultsInEitherOrder(t *testing.T) {
	api := newFakeFetcher()
	v := newTestDetailView(t, 4, api, &fakeImages{})

	msgs := collectMsgs(v.Init())
	for i := len(msgs) - 1; i >= 0; i-- {
		v.Update(msgs[i])
	}

	assert.True(t, v.PokemonSlot().Succeeded())
	assert.True(t, v.SpeciesSlot().Succeeded())
}

func TestDetailView_PartialFailure(t *testing.T) {
	tests := []struct {
		name        string
		failPokemon bool
		failSpecies bool
		want        []string
		notWant     []string
	}{
		{
			name:        "pokemon fails",
			failPokemon: true,
			want:        []string{"Charmander", "#004", "Seed Pokémon", "generation i"},
			notWant:     []string{"Abilities", "Weight"},
		},
		{
			name:        "species fails",
			failSpecies: true,
			want:        []string{"Charmander", "#004", "Abilities", "Weight"},
			notWant:     []string{"Genera", "generation i"},
		},
		{
			name:        "both fail",
			failPokemon: true,
			failSpecies: true,
			want:        []string{"Charmander", "#004", "Fire"},
			notWant:     []string{"Abilities", "Genera"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeFetcher()
			if tt.failPokemon {
				api.pokemon = func(int) (*pokeapi.Pokemon, error) { return nil, errUnavailable }
			}
			if tt.failSpecies {
				api.species = func(int) (*pokeapi.Species, error) { return nil, errUnavailable }
			}
			v := newTestDetailView(t, 4, api, &fakeImages{})
			deliver(v, collectMsgs(v.Init()))

			assert.Equal(t, tt.failPokemon, v.PokemonSlot().Failed())
			assert.Equal(t, tt.failSpecies, v.SpeciesSlot().Failed())

			out := v.Content()
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestDetailView_ImageFailureUsesPlaceholder(t *testing.T) {
	v := newTestDetailView(t, 7, newFakeFetcher(), &fakeImages{err: errUnavailable})
	assert.Equal(t, "http://img.local/007.png", v.ImageSource())

	deliver(v, collectMsgs(v.Init()))

	assert.Equal(t, artwork.PlaceholderSource, v.ImageSource())
	assert.Contains(t, v.Content(), "Squirtle")
}

func TestDetailView_StaleResultsDropped(t *testing.T) {
	t.Run("after dismiss", func(t *testing.T) {
		v := newTestDetailView(t, 1, newFakeFetcher(), &fakeImages{})
		msgs := collectMsgs(v.Init())
		v.Dismiss()
		deliver(v, msgs)

		assert.True(t, v.PokemonSlot().Pending())
		assert.True(t, v.SpeciesSlot().Pending())
	})

	t.Run("after id change", func(t *testing.T) {
		ds := testDataset(t)
		api := newFakeFetcher()
		v := newTestDetailView(t, 1, api, &fakeImages{})

		oldMsgs := collectMsgs(v.Init())
		oldMount := v.MountID()

		next, err := ds.Lookup(2)
		require.NoError(t, err)
		newMsgs := collectMsgs(v.SetID(next))
		assert.NotEqual(t, oldMount, v.MountID())
		assert.Equal(t, 2, v.ID())

		deliver(v, oldMsgs)
		assert.True(t, v.PokemonSlot().Pending(), "old results must not be applied")

		deliver(v, newMsgs)
		require.True(t, v.PokemonSlot().Succeeded())
		assert.Equal(t, 2, v.PokemonSlot().Value.ID)
		assert.Contains(t, v.Content(), "Ivysaur")
	})
}

func TestDetailView_SetSameIDIsNoop(t *testing.T) {
	api := newFakeFetcher()
	v := newTestDetailView(t, 1, api, &fakeImages{})
	collectMsgs(v.Init())

	rec, err := testDataset(t).Lookup(1)
	require.NoError(t, err)
	assert.Nil(t, v.SetID(rec))
	assert.Equal(t, 2, api.calls())
}

func TestDetailView_Reload(t *testing.T) {
	api := newFakeFetcher()
	v := newTestDetailView(t, 1, api, &fakeImages{})
	deliver(v, collectMsgs(v.Init()))
	first := v.MountID()

	_, cmd := v.Update(keyRunes("r"))
	assert.NotEqual(t, first, v.MountID())
	assert.True(t, v.PokemonSlot().Pending())

	deliver(v, collectMsgs(cmd))
	assert.True(t, v.PokemonSlot().Succeeded())
	assert.Equal(t, 4, api.calls())
}

func TestDetailView_PrevNext(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		key      tea.KeyMsg
		wantPath string
		prev     bool
		next     bool
	}{
		{name: "first has no prev", id: 1, key: tea.KeyMsg{Type: tea.KeyLeft}, prev: false, next: true},
		{name: "first next", id: 1, key: tea.KeyMsg{Type: tea.KeyRight}, wantPath: "/pokedex/2", prev: false, next: true},
		{name: "middle prev", id: 25, key: tea.KeyMsg{Type: tea.KeyLeft}, wantPath: "/pokedex/24", prev: true, next: true},
		{name: "last has no next", id: 151, key: tea.KeyMsg{Type: tea.KeyRight}, prev: true, next: false},
		{name: "last prev", id: 151, key: keyRunes("p"), wantPath: "/pokedex/150", prev: true, next: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestDetailView(t, tt.id, newFakeFetcher(), &fakeImages{})

			out := v.Content()
			assert.Equal(t, tt.prev, strings.Contains(out, "< Prev"))
			assert.Equal(t, tt.next, strings.Contains(out, "Next >"))

			_, cmd := v.Update(tt.key)
			if tt.wantPath == "" {
				assert.Nil(t, cmd)
				return
			}
			require.NotNil(t, cmd)
			assert.Equal(t, NavigateMsg{Path: tt.wantPath}, cmd())
		})
	}
}

func TestDetailView_Back(t *testing.T) {
	v := newTestDetailView(t, 1, newFakeFetcher(), &fakeImages{})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateBackMsg{}, cmd())
}

func TestDetailView_NoEnglishText(t *testing.T) {
	api := newFakeFetcher()
	api.species = func(int) (*pokeapi.Species, error) {
		return &pokeapi.Species{
			Generation:        "generation-i",
			FlavorTextEntries: []pokeapi.LocalizedText{{Language: "fr", Text: "Une graine"}},
			Genera:            []pokeapi.LocalizedText{{Language: "de", Text: "Samen"}},
		}, nil
	}
	v := newTestDetailView(t, 1, api, &fakeImages{})
	deliver(v, collectMsgs(v.Init()))

	out := v.Content()
	assert.NotContains(t, out, "Une graine")
	assert.NotContains(t, out, "Genera")
}

func TestDetailView_ZeroWeightHidden(t *testing.T) {
	api := newFakeFetcher()
	api.pokemon = func(id int) (*pokeapi.Pokemon, error) {
		return &pokeapi.Pokemon{ID: id, Height: 7}, nil
	}
	v := newTestDetailView(t, 1, api, &fakeImages{})
	deliver(v, collectMsgs(v.Init()))

	out := v.Content()
	assert.NotContains(t, out, "Weight")
	assert.Contains(t, out, "Height")
}

func TestDetailView_ResultForOtherViewIgnored(t *testing.T) {
	v := newTestDetailView(t, 1, newFakeFetcher(), &fakeImages{})
	collectMsgs(v.Init())

	other := detail.NewMount(context.Background())
	defer other.Dismiss()
	v.Update(detail.ResultMsg[*pokeapi.Pokemon]{MountID: other.ID(), Slot: SlotPokemon, Value: &pokeapi.Pokemon{ID: 99}})

	assert.True(t, v.PokemonSlot().Pending())
}
