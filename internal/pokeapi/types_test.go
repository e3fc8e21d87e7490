package pokeapi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokeapi"
)

func TestSprites_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  pokeapi.Sprites
	}{
		{
			name:  "keeps document order",
			input: `{"z": "1", "a": "2", "m": "3"}`,
			want:  pokeapi.Sprites{{Name: "z", URL: "1"}, {Name: "a", URL: "2"}, {Name: "m", URL: "3"}},
		},
		{
			name:  "skips nulls and objects",
			input: `{"a": null, "b": {"c": "d"}, "e": "f", "g": 3}`,
			want:  pokeapi.Sprites{{Name: "e", URL: "f"}},
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  pokeapi.Sprites{},
		},
		{
			name:  "null",
			input: `null`,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got pokeapi.Sprites
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects arrays", func(t *testing.T) {
		var got pokeapi.Sprites
		assert.Error(t, json.Unmarshal([]byte(`["a"]`), &got))
	})
}

func TestFirstInLanguage(t *testing.T) {
	entries := []pokeapi.LocalizedText{
		{Language: "ja-Hrkt", Text: "ja"},
		{Language: "en", Text: "first"},
		{Language: "en", Text: "second"},
	}

	got, ok := pokeapi.FirstInLanguage(entries, pokeapi.English)
	assert.True(t, ok)
	assert.Equal(t, "first", got)

	_, ok = pokeapi.FirstInLanguage(entries, "fr")
	assert.False(t, ok)

	_, ok = pokeapi.FirstInLanguage(nil, pokeapi.English)
	assert.False(t, ok)

	var nilSpecies *pokeapi.Species
	_, ok = nilSpecies.FlavorText(pokeapi.English)
	assert.False(t, ok)
}
