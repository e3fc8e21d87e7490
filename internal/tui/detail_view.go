package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/artwork"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/logging"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokeapi"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/router"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/tui/detail"
)

// Slot names carried by detail results.
const (
	SlotPokemon = "pokemon"
	SlotSpecies = "species"
	SlotImage   = "image"
)

// DetailView shows one record and augments it with live data. Each id
// gets its own mount; results from an older mount are dropped.
type DetailView struct {
	ctx      context.Context
	dataset  *pokedex.Dataset
	api      DetailFetcher
	images   ImageLoader
	resolver artwork.Resolver
	keys     KeyMap

	id     int
	record pokedex.Record

	mount   *detail.Mount
	pokemon detail.Slot[*pokeapi.Pokemon]
	species detail.Slot[*pokeapi.Species]
	picture detail.Slot[artwork.Picture]

	loading  *LoadingState
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailView creates the view for a record already known to exist. No
// request is made until Init.
func NewDetailView(
	ctx context.Context,
	dataset *pokedex.Dataset,
	api DetailFetcher,
	images ImageLoader,
	resolver artwork.Resolver,
	record pokedex.Record,
) *DetailView {
	if ctx == nil {
		ctx = context.Background()
	}
	v := &DetailView{
		ctx:      ctx,
		dataset:  dataset,
		api:      api,
		images:   images,
		resolver: resolver,
		keys:     DefaultKeyMap(),
		id:       record.ID,
		record:   record,
		loading:  NewLoadingState(),
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	v.refresh()
	return v
}

// Init mounts the view and starts its requests.
func (v *DetailView) Init() tea.Cmd {
	return v.start()
}

// start dismisses the current mount, resets every slot and issues the two
// API requests and the artwork download concurrently.
func (v *DetailView) start() tea.Cmd {
	v.mount.Dismiss()
	v.mount = detail.NewMount(v.ctx)
	v.pokemon.Reset()
	v.species.Reset()
	v.picture.Reset()
	v.viewport.GotoTop()
	v.refresh()

	id := v.id
	src := v.resolver.URL(id)
	api, images := v.api, v.images

	logging.FromContext(v.ctx).Debug().Ctx(v.ctx).
		Str("component", "detail").
		Int("pokemon_id", id).
		Str("mount_id", v.mount.ID()).
		Msg("detail view mounted")

	return tea.Batch(
		detail.Run(v.mount, SlotPokemon, func(ctx context.Context) (*pokeapi.Pokemon, error) {
			return api.Pokemon(ctx, id)
		}),
		detail.Run(v.mount, SlotSpecies, func(ctx context.Context) (*pokeapi.Species, error) {
			return api.Species(ctx, id)
		}),
		detail.Run(v.mount, SlotImage, func(ctx context.Context) (artwork.Picture, error) {
			return images.Load(ctx, src)
		}),
		v.loading.Init(),
	)
}

// SetID switches the view to another record, restarting all requests.
// Setting the current id is a no-op.
func (v *DetailView) SetID(record pokedex.Record) tea.Cmd {
	if record.ID == v.id && v.mount.Active() {
		return nil
	}
	v.id = record.ID
	v.record = record
	return v.start()
}

// Dismiss invalidates in-flight requests.
func (v *DetailView) Dismiss() {
	v.mount.Dismiss()
}

// Update handles results, keys and resizing.
func (v *DetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detail.ResultMsg[*pokeapi.Pokemon]:
		v.applyResult(msg.Slot, msg.MountID, msg.Err, detail.Apply(v.mount, &v.pokemon, msg))
		return v, nil

	case detail.ResultMsg[*pokeapi.Species]:
		v.applyResult(msg.Slot, msg.MountID, msg.Err, detail.Apply(v.mount, &v.species, msg))
		return v, nil

	case detail.ResultMsg[artwork.Picture]:
		applied := detail.Apply(v.mount, &v.picture, msg)
		if applied && v.picture.Failed() {
			v.picture.Value = artwork.Placeholder()
		}
		v.applyResult(msg.Slot, msg.MountID, msg.Err, applied)
		return v, nil

	case spinner.TickMsg:
		if !v.anyPending() {
			return v, nil
		}
		cmd := v.loading.Update(msg)
		v.refresh()
		return v, cmd

	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.viewport.Width = msg.Width
		v.viewport.Height = max(msg.Height-1, 1)
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *DetailView) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Prev):
		if v.dataset.HasPrev(v.id) {
			return v, Navigate(router.DetailPath(v.id - 1))
		}
		return v, nil
	case key.Matches(msg, v.keys.Next):
		if v.dataset.HasNext(v.id) {
			return v, Navigate(router.DetailPath(v.id + 1))
		}
		return v, nil
	case key.Matches(msg, v.keys.Reload):
		return v, v.start()
	case key.Matches(msg, v.keys.Back):
		return v, NavigateBack()
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// applyResult logs the outcome of a result and refreshes the content.
func (v *DetailView) applyResult(slot, mountID string, err error, applied bool) {
	log := logging.FromContext(v.ctx)
	if !applied {
		log.Debug().Ctx(v.ctx).
			Str("component", "detail").
			Int("pokemon_id", v.id).
			Str("resource", slot).
			Str("mount_id", mountID).
			Msg("discarding stale result")
		return
	}
	if err != nil {
		log.Error().Ctx(v.ctx).
			Str("component", "detail").
			Int("pokemon_id", v.id).
			Str("resource", slot).
			Str("mount_id", mountID).
			Err(err).
			Msg("detail fetch failed")
	}
	v.refresh()
}

func (v *DetailView) anyPending() bool {
	return v.pokemon.Pending() || v.species.Pending() || v.picture.Pending()
}

// Data returns the render input for the current state.
func (v *DetailView) Data() DetailData {
	d := DetailData{
		Record:         v.record,
		PokemonPending: v.pokemon.Pending(),
		SpeciesPending: v.species.Pending(),
		ImagePending:   v.picture.Pending(),
		Loading:        RenderLoading(v.loading),
		HasPrev:        v.dataset.HasPrev(v.id),
		HasNext:        v.dataset.HasNext(v.id),
		Width:          v.width,
	}
	if v.pokemon.Succeeded() {
		d.Pokemon = v.pokemon.Value
	}
	if v.species.Succeeded() {
		d.Species = v.species.Value
	}
	if !v.picture.Pending() {
		pic := v.picture.Value
		d.Picture = &pic
	}
	return d
}

// Content renders the full page without scrolling.
func (v *DetailView) Content() string {
	return RenderDetail(v.Data())
}

func (v *DetailView) refresh() {
	v.viewport.SetContent(v.Content())
}

// View renders the scrollable page and key help.
func (v *DetailView) View() string {
	help := helpLine(v.keys.Back, v.keys.Prev, v.keys.Next, v.keys.Reload)
	return v.viewport.View() + "\n" + help
}

// ID returns the displayed id.
func (v *DetailView) ID() int { return v.id }

// MountID returns the current mount token.
func (v *DetailView) MountID() string { return v.mount.ID() }

// PokemonSlot returns the detail slot.
func (v *DetailView) PokemonSlot() detail.Slot[*pokeapi.Pokemon] { return v.pokemon }

// SpeciesSlot returns the species slot.
func (v *DetailView) SpeciesSlot() detail.Slot[*pokeapi.Species] { return v.species }

// ImageSource returns the image currently shown: the remote URL while it
// loads or after it loaded, the placeholder source after a failure.
func (v *DetailView) ImageSource() string {
	if v.picture.Pending() {
		return v.resolver.URL(v.id)
	}
	return v.picture.Value.Source
}
