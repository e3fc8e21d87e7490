package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/artwork"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/format"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokeapi"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/tui"
)

// detailResult collects the independent fetches of a detail page. Each
// fetch owns its value and error; one failing never cancels the others.
type detailResult struct {
	pokemon    *pokeapi.Pokemon
	pokemonErr error
	species    *pokeapi.Species
	speciesErr error
	picture    *artwork.Picture
	imageErr   error
}

type showJSON struct {
	ID         int               `json:"id"`
	Number     string            `json:"number"`
	Name       string            `json:"name"`
	Types      []string          `json:"types"`
	Image      string            `json:"image"`
	Generation string            `json:"generation,omitempty"`
	Genus      string            `json:"genus,omitempty"`
	FlavorText string            `json:"flavor_text,omitempty"`
	Weight     int               `json:"weight,omitempty"`
	Height     int               `json:"height,omitempty"`
	Stats      []statJSON        `json:"stats,omitempty"`
	Abilities  []string          `json:"abilities,omitempty"`
	Sprites    []spriteJSON      `json:"sprites,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

type statJSON struct {
	Name      string `json:"name"`
	BaseValue int    `json:"base_value"`
}

type spriteJSON struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func newShowCmd(st *appState) *cobra.Command {
	var (
		output string
		art    bool
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one Pokémon with its PokeAPI details",
		Long: `Shows the detail page of one Pokémon. Base data comes from the embedded
dataset; stats, abilities, sprites and the description are fetched from
PokeAPI concurrently. A failed fetch leaves its section out.`,
		Example: `  pokedex show 25 --user ash
  pokedex show 6 --user ash --art
  pokedex show 150 --user ash --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, st, args[0], output, art)
		},
	}

	cmd.Flags().StringVar(&output, "output", OutputText, "output format: text or json")
	cmd.Flags().BoolVar(&art, "art", false, "download and render the artwork")
	return cmd
}

func runShow(cmd *cobra.Command, st *appState, param, output string, art bool) error {
	if err := st.requireSession(); err != nil {
		return err
	}
	if err := validateOutput(output); err != nil {
		return err
	}
	id, err := st.dataset.ParseID(param)
	if err != nil {
		return err
	}
	rec, err := st.dataset.Lookup(id)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	res := fetchDetail(ctx, st, rec.ID, art)
	if res.pokemonErr != nil && res.speciesErr != nil {
		return fmt.Errorf("fetching details of %s: %w", format.Number(rec.ID), errors.Join(res.pokemonErr, res.speciesErr))
	}

	if output == OutputJSON {
		return writeShowJSON(cmd.OutOrStdout(), rec, st.resolver.URL(rec.ID), res)
	}

	for name, err := range res.failures() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s unavailable: %v\n", name, err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderDetail(tui.DetailData{
		Record:  rec,
		Pokemon: res.pokemon,
		Species: res.species,
		Picture: res.picture,
		Width:   tui.TerminalWidth(),
	}))
	return err
}

// fetchDetail runs the detail fetches concurrently and waits for all.
func fetchDetail(ctx context.Context, st *appState, id int, art bool) detailResult {
	log := logger.With().Int("pokemon_id", id).Logger()
	var res detailResult
	var g errgroup.Group

	g.Go(func() error {
		res.pokemon, res.pokemonErr = st.api.Pokemon(ctx, id)
		return nil
	})
	g.Go(func() error {
		res.species, res.speciesErr = st.api.Species(ctx, id)
		return nil
	})
	if art {
		g.Go(func() error {
			pic, err := st.images.Load(ctx, st.resolver.URL(id))
			if err != nil {
				pic = artwork.Placeholder()
			}
			res.picture, res.imageErr = &pic, err
			return nil
		})
	}
	_ = g.Wait()

	for name, err := range res.failures() {
		log.Error().Ctx(ctx).Err(err).Str("resource", name).Msg("detail fetch failed")
	}
	return res
}

// failures yields the failed fetches by resource name.
func (r detailResult) failures() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, f := range []struct {
			name string
			err  error
		}{
			{pokeapi.ResourcePokemon, r.pokemonErr},
			{pokeapi.ResourceSpecies, r.speciesErr},
			{"image", r.imageErr},
		} {
			if f.err != nil && !yield(f.name, f.err) {
				return
			}
		}
	}
}

func writeShowJSON(w io.Writer, rec pokedex.Record, image string, res detailResult) error {
	out := showJSON{
		ID:     rec.ID,
		Number: format.Number(rec.ID),
		Name:   rec.DisplayName(),
		Types:  typeNames(rec),
		Image:  image,
	}
	if p := res.pokemon; p != nil {
		out.Weight = p.Weight
		out.Height = p.Height
		out.Abilities = p.Abilities
		for _, s := range p.Stats {
			out.Stats = append(out.Stats, statJSON{Name: s.Name, BaseValue: s.BaseValue})
		}
		for _, s := range p.Sprites {
			out.Sprites = append(out.Sprites, spriteJSON{Name: s.Name, URL: s.URL})
		}
	}
	if s := res.species; s != nil {
		out.Generation = s.Generation
		if genus, ok := s.Genus(pokeapi.English); ok {
			out.Genus = genus
		}
		if text, ok := s.FlavorText(pokeapi.English); ok {
			out.FlavorText = format.CleanText(text)
		}
	}
	for name, err := range res.failures() {
		if out.Errors == nil {
			out.Errors = make(map[string]string)
		}
		out.Errors[name] = err.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
