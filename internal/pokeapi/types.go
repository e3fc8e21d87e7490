package pokeapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

// English is the language code used to pick flavor text and genus.
const English = "en"

// Sprite is a named sprite image URL.
type Sprite struct {
	Name string
	URL  string
}

// Sprites keeps the string-valued entries of the API "sprites" object in
// document order. Nested objects ("other", "versions") and nulls are
// dropped.
type Sprites []Sprite

// UnmarshalJSON implements json.Unmarshaler.
func (s *Sprites) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading sprites: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("sprites: expected object, got %v", tok)
	}

	out := Sprites{}
	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return fmt.Errorf("reading sprite key: %w", keyErr)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return fmt.Errorf("reading sprite %q: %w", key, err)
		}

		// null leaves the pointer nil.
		var url *string
		if json.Unmarshal(raw, &url) == nil && url != nil {
			out = append(out, Sprite{Name: key, URL: *url})
		}
	}
	*s = out
	return nil
}

// Stat is one base stat.
type Stat struct {
	Name      string
	BaseValue int
}

// Pokemon is the live detail data for one id.
type Pokemon struct {
	ID        int
	Name      string
	Sprites   Sprites
	Stats     []Stat
	Abilities []string
	Weight    int
	Height    int
}

// LocalizedText is a text entry tagged with a language code.
type LocalizedText struct {
	Language string
	Text     string
}

// Species is the live species data for one id.
type Species struct {
	ID                int
	Name              string
	Generation        string
	FlavorTextEntries []LocalizedText
	Genera            []LocalizedText
}

// FlavorText returns the first flavor text written in lang.
func (s *Species) FlavorText(lang string) (string, bool) {
	if s == nil {
		return "", false
	}
	return FirstInLanguage(s.FlavorTextEntries, lang)
}

// Genus returns the first genus written in lang.
func (s *Species) Genus(lang string) (string, bool) {
	if s == nil {
		return "", false
	}
	return FirstInLanguage(s.Genera, lang)
}

// FirstInLanguage returns the text of the first entry whose language code
// equals lang.
func FirstInLanguage(entries []LocalizedText, lang string) (string, bool) {
	want, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		tag, parseErr := language.Parse(e.Language)
		if parseErr == nil && tag == want {
			return e.Text, true
		}
	}
	return "", false
}

// Wire formats.

type namedResource struct {
	Name string `json:"name"`
}

type pokemonResponse struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Sprites Sprites `json:"sprites"`
	Stats   []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		Ability namedResource `json:"ability"`
	} `json:"abilities"`
	Weight int `json:"weight"`
	Height int `json:"height"`
}

func (r *pokemonResponse) toPokemon() *Pokemon {
	p := &Pokemon{
		ID:        r.ID,
		Name:      r.Name,
		Sprites:   r.Sprites,
		Stats:     make([]Stat, 0, len(r.Stats)),
		Abilities: make([]string, 0, len(r.Abilities)),
		Weight:    r.Weight,
		Height:    r.Height,
	}
	for _, s := range r.Stats {
		p.Stats = append(p.Stats, Stat{Name: s.Stat.Name, BaseValue: s.BaseStat})
	}
	for _, a := range r.Abilities {
		p.Abilities = append(p.Abilities, a.Ability.Name)
	}
	return p
}

type speciesResponse struct {
	ID                int           `json:"id"`
	Name              string        `json:"name"`
	Generation        namedResource `json:"generation"`
	FlavorTextEntries []struct {
		FlavorText string        `json:"flavor_text"`
		Language   namedResource `json:"language"`
	} `json:"flavor_text_entries"`
	Genera []struct {
		Genus    string        `json:"genus"`
		Language namedResource `json:"language"`
	} `json:"genera"`
}

func (r *speciesResponse) toSpecies() *Species {
	s := &Species{
		ID:                r.ID,
		Name:              r.Name,
		Generation:        r.Generation.Name,
		FlavorTextEntries: make([]LocalizedText, 0, len(r.FlavorTextEntries)),
		Genera:            make([]LocalizedText, 0, len(r.Genera)),
	}
	for _, e := range r.FlavorTextEntries {
		s.FlavorTextEntries = append(s.FlavorTextEntries, LocalizedText{Language: e.Language.Name, Text: e.FlavorText})
	}
	for _, g := range r.Genera {
		s.Genera = append(s.Genera, LocalizedText{Language: g.Language.Name, Text: g.Genus})
	}
	return s
}
