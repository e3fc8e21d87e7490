// Package pokedex holds the embedded, read-only Pokémon dataset.
//
// Records are loaded once and never mutated. Ids form the dense range
// 1..Size(); detail navigation relies on that contiguity, so it is checked
// at load time rather than assumed.
package pokedex

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/pokedex.json
var embeddedDataset []byte

// LangEnglish is the key of the English name in Names.
const LangEnglish = "english"

// Dataset errors.
var (
	ErrNotFound  = errors.New("pokemon not found")
	ErrSparseIDs = errors.New("dataset ids are not dense")
	ErrEmpty     = errors.New("dataset is empty")
	ErrInvalidID = errors.New("invalid pokemon id")
)

// TypeName is an elemental type tag such as "Fire" or "Water".
type TypeName string

// String returns the display text.
func (t TypeName) String() string {
	return string(t)
}

// Key returns the case-insensitive lookup key used for styling.
func (t TypeName) Key() string {
	return strings.ToLower(string(t))
}

// Names maps a language key ("english", ...) to a localized name.
type Names map[string]string

// English returns the English name, or "" when absent.
func (n Names) English() string {
	return n[LangEnglish]
}

// Record is one static catalog entry.
type Record struct {
	ID   int        `json:"id"`
	Name Names      `json:"name"`
	Type []TypeName `json:"type"`
}

// DisplayName returns the English name.
func (r Record) DisplayName() string {
	return r.Name.English()
}

// Dataset is an ordered, immutable list of records with ids 1..N.
type Dataset struct {
	records []Record
}

//nolint:gochecknoglobals // The embedded dataset is parsed once per process.
var (
	embeddedOnce sync.Once
	embedded     *Dataset
	embeddedErr  error
)

// Embedded returns the dataset compiled into the binary.
func Embedded() (*Dataset, error) {
	embeddedOnce.Do(func() {
		embedded, embeddedErr = Parse(embeddedDataset)
	})
	return embedded, embeddedErr
}

// Parse decodes a JSON array of records and validates it.
func Parse(data []byte) (*Dataset, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return New(records)
}

// New validates records and returns a Dataset. Records must be ordered by id
// starting at 1 with no gaps, and each must have an English name.
func New(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	for i, r := range records {
		if r.ID != i+1 {
			return nil, fmt.Errorf("%w: position %d has id %d", ErrSparseIDs, i, r.ID)
		}
		if r.Name.English() == "" {
			return nil, fmt.Errorf("record %d has no english name", r.ID)
		}
	}
	owned := make([]Record, len(records))
	copy(owned, records)
	return &Dataset{records: owned}, nil
}

// Size returns the number of records, which is also the largest id.
func (d *Dataset) Size() int {
	return len(d.records)
}

// All returns every record in id order. The slice is a copy.
func (d *Dataset) All() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Has reports whether id is in 1..Size().
func (d *Dataset) Has(id int) bool {
	return id >= 1 && id <= d.Size()
}

// Lookup returns the record with the given id.
func (d *Dataset) Lookup(id int) (Record, error) {
	if !d.Has(id) {
		return Record{}, fmt.Errorf("%w: id %d (dataset has %d)", ErrNotFound, id, d.Size())
	}
	return d.records[id-1], nil
}

// HasPrev reports whether a record precedes id.
func (d *Dataset) HasPrev(id int) bool {
	return id > 1
}

// HasNext reports whether a record follows id.
func (d *Dataset) HasNext(id int) bool {
	return id < d.Size()
}

// Select returns the records whose ids are listed, in dataset order.
// Unknown ids are ignored.
func (d *Dataset) Select(ids ...int) []Record {
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]Record, 0, len(ids))
	for _, r := range d.records {
		if _, ok := wanted[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// ParseID converts a route parameter into an id present in the dataset.
func (d *Dataset) ParseID(param string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, param)
	}
	if !d.Has(id) {
		return 0, fmt.Errorf("%w: id %d (dataset has %d)", ErrNotFound, id, d.Size())
	}
	return id, nil
}
