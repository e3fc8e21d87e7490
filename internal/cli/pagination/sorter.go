package pagination

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/pokedex"
)

// Sort fields accepted by RecordSorter.
const (
	FieldID   = "id"
	FieldName = "name"
	FieldType = "type"
)

// Sorter sorts records by a named field.
type Sorter interface {
	Sort(records []pokedex.Record, field, order string) []pokedex.Record
	IsValidField(field string) bool
	GetValidFields() []string
}

// RecordSorter implements Sorter for pokedex records.
type RecordSorter struct {
	validFields map[string]bool
}

// NewRecordSorter creates a RecordSorter accepting id, name and type.
func NewRecordSorter() *RecordSorter {
	return &RecordSorter{
		validFields: map[string]bool{
			FieldID:   true,
			FieldName: true,
			FieldType: true,
		},
	}
}

// IsValidField reports whether field can be sorted on.
func (s *RecordSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns the valid fields in sorted order.
func (s *RecordSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Validate returns ErrInvalidSortField naming the accepted fields.
func (s *RecordSorter) Validate(field string) error {
	if s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w %q (valid: %s)", ErrInvalidSortField, field, strings.Join(s.GetValidFields(), ", "))
}

// Sort returns a sorted copy of records. Ties keep id order. An invalid
// field returns records unchanged.
func (s *RecordSorter) Sort(records []pokedex.Record, field, order string) []pokedex.Record {
	if !s.IsValidField(field) {
		return records
	}

	sorted := slices.Clone(records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOrderDesc {
			i, j = j, i
		}
		switch field {
		case FieldName:
			return pokedex.Fold(sorted[i].DisplayName()) < pokedex.Fold(sorted[j].DisplayName())
		case FieldType:
			return primaryType(sorted[i]) < primaryType(sorted[j])
		default:
			return sorted[i].ID < sorted[j].ID
		}
	})
	return sorted
}

func primaryType(r pokedex.Record) string {
	if len(r.Type) == 0 {
		return ""
	}
	return r.Type[0].Key()
}
