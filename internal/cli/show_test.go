package cli_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
)

const (
	pikachuURL        = "https://pokeapi.co/api/v2/pokemon/25/"
	pikachuSpeciesURL = "https://pokeapi.co/api/v2/pokemon-species/25/"
	pikachuArtURL     = "https://raw.githubusercontent.com/HybridShivam/Pokemon/master/assets/images/025.png"
)

const pikachuJSON = `{
  "id": 25,
  "name": "pikachu",
  "height": 4,
  "weight": 60,
  "sprites": {
    "front_default": "http://img.local/25.png",
    "front_female": null,
    "back_default": "http://img.local/back/25.png"
  },
  "stats": [
    {"base_stat": 35, "stat": {"name": "hp"}},
    {"base_stat": 90, "stat": {"name": "speed"}}
  ],
  "abilities": [
    {"ability": {"name": "static"}},
    {"ability": {"name": "lightning-rod"}}
  ]
}`

const pikachuSpeciesJSON = `{
  "id": 25,
  "name": "pikachu",
  "generation": {"name": "generation-i"},
  "flavor_text_entries": [
    {"flavor_text": "ピカチュウ", "language": {"name": "ja"}},
    {"flavor_text": "When several of\nthese gather,\ftheir electricity\ncould build.", "language": {"name": "en"}}
  ],
  "genera": [
    {"genus": "Mouse Pokémon", "language": {"name": "en"}}
  ]
}`

type showOutput struct {
	ID         int    `json:"id"`
	Number     string `json:"number"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	Generation string `json:"generation"`
	Genus      string `json:"genus"`
	FlavorText string `json:"flavor_text"`
	Weight     int    `json:"weight"`
	Height     int    `json:"height"`
	Stats      []struct {
		Name      string `json:"name"`
		BaseValue int    `json:"base_value"`
	} `json:"stats"`
	Abilities []string `json:"abilities"`
	Sprites   []struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"sprites"`
	Errors map[string]string `json:"errors"`
}

func activateMock(t *testing.T) {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

func registerPikachu(pokemonStatus, speciesStatus int) {
	pokemonBody, speciesBody := pikachuJSON, pikachuSpeciesJSON
	if pokemonStatus != http.StatusOK {
		pokemonBody = `{}`
	}
	if speciesStatus != http.StatusOK {
		speciesBody = `{}`
	}
	httpmock.RegisterResponder(http.MethodGet, pikachuURL, httpmock.NewStringResponder(pokemonStatus, pokemonBody))
	httpmock.RegisterResponder(http.MethodGet, pikachuSpeciesURL, httpmock.NewStringResponder(speciesStatus, speciesBody))
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := range 4 {
		for y := range 4 {
			img.Set(x, y, color.RGBA{R: 0xF8, G: 0xD0, B: 0x30, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestShow_JSON(t *testing.T) {
	setupEnv(t)
	activateMock(t)
	registerPikachu(http.StatusOK, http.StatusOK)

	res := execute(t, "show", "25", "--user", "ash", "--output", "json")
	require.NoError(t, res.err)

	var got showOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, 25, got.ID)
	assert.Equal(t, "#025", got.Number)
	assert.Equal(t, "Pikachu", got.Name)
	assert.Equal(t, pikachuArtURL, got.Image)
	assert.Equal(t, "generation-i", got.Generation)
	assert.Equal(t, "Mouse Pokémon", got.Genus)
	assert.Equal(t, "When several of these gather, their electricity could build.", got.FlavorText)
	assert.Equal(t, 60, got.Weight)
	assert.Equal(t, 4, got.Height)
	assert.Equal(t, []string{"static", "lightning-rod"}, got.Abilities)
	require.Len(t, got.Stats, 2)
	assert.Equal(t, "speed", got.Stats[1].Name)
	assert.Equal(t, 90, got.Stats[1].BaseValue)
	require.Len(t, got.Sprites, 2)
	assert.Equal(t, "front_default", got.Sprites[0].Name)
	assert.Empty(t, got.Errors)

	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["GET "+pikachuURL])
	assert.Equal(t, 1, info["GET "+pikachuSpeciesURL])
}

func TestShow_PartialFailure(t *testing.T) {
	tests := []struct {
		name          string
		pokemonStatus int
		speciesStatus int
		wantErrKey    string
	}{
		{name: "species missing", pokemonStatus: http.StatusOK, speciesStatus: http.StatusNotFound, wantErrKey: "pokemon-species"},
		{name: "pokemon failing", pokemonStatus: http.StatusInternalServerError, speciesStatus: http.StatusOK, wantErrKey: "pokemon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t)
			activateMock(t)
			registerPikachu(tt.pokemonStatus, tt.speciesStatus)

			res := execute(t, "show", "25", "--user", "ash", "--output", "json")
			require.NoError(t, res.err)

			var got showOutput
			require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
			assert.Equal(t, "Pikachu", got.Name)
			require.Len(t, got.Errors, 1)
			assert.Contains(t, got.Errors, tt.wantErrKey)
			if tt.speciesStatus == http.StatusOK {
				assert.Equal(t, "Mouse Pokémon", got.Genus)
				assert.Empty(t, got.Abilities)
			} else {
				assert.Empty(t, got.Genus)
				assert.NotEmpty(t, got.Abilities)
			}
		})
	}
}

func TestShow_BothFetchesFail(t *testing.T) {
	setupEnv(t)
	activateMock(t)
	registerPikachu(http.StatusBadGateway, http.StatusBadGateway)

	res := execute(t, "show", "25", "--user", "ash")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "#025")
	assert.Empty(t, res.stdout)
}

func TestShow_InvalidID(t *testing.T) {
	tests := []struct {
		param   string
		wantErr error
	}{
		{param: "0", wantErr: pokedex.ErrNotFound},
		{param: "152", wantErr: pokedex.ErrNotFound},
		{param: "abc", wantErr: pokedex.ErrInvalidID},
		{param: "-1", wantErr: pokedex.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			setupEnv(t)
			activateMock(t)

			res := execute(t, "show", "--user", "ash", "--", tt.param)
			require.ErrorIs(t, res.err, tt.wantErr)
			assert.Zero(t, httpmock.GetTotalCallCount(), "no fetch for an invalid id")
		})
	}
}

func TestShow_Text(t *testing.T) {
	setupEnv(t)
	activateMock(t)
	registerPikachu(http.StatusOK, http.StatusNotFound)

	res := execute(t, "show", "25", "--user", "ash", "--plain")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Pikachu")
	assert.Contains(t, res.stdout, "#025")
	assert.Contains(t, res.stdout, "lightning rod")
	assert.Contains(t, res.stderr, "Warning: pokemon-species unavailable")
	assert.NotContains(t, res.stdout, "Prev")
}

func TestShow_Art(t *testing.T) {
	tests := []struct {
		name        string
		responder   httpmock.Responder
		wantWarning bool
	}{
		{name: "image loads", responder: httpmock.NewBytesResponder(http.StatusOK, pngBytes(t))},
		{name: "image missing", responder: httpmock.NewStringResponder(http.StatusNotFound, ""), wantWarning: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupEnv(t)
			activateMock(t)
			registerPikachu(http.StatusOK, http.StatusOK)
			httpmock.RegisterResponder(http.MethodGet, pikachuArtURL, tt.responder)

			res := execute(t, "show", "25", "--user", "ash", "--art", "--plain")
			require.NoError(t, res.err)
			assert.Equal(t, 1, httpmock.GetCallCountInfo()["GET "+pikachuArtURL])
			assert.Contains(t, res.stdout, "Pikachu")
			if tt.wantWarning {
				assert.Contains(t, res.stderr, "Warning: image unavailable")
			} else {
				assert.NotContains(t, res.stderr, "Warning")
			}
		})
	}
}

func TestShow_NoGoroutineLeak(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	setupEnv(t)
	activateMock(t)
	registerPikachu(http.StatusOK, http.StatusInternalServerError)

	res := execute(t, "show", "25", "--user", "ash", "--output", "json")
	require.NoError(t, res.err)
}
