package pokedex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	ds, err := Embedded()
	require.NoError(t, err)
	require.Equal(t, 151, ds.Size())

	first, err := ds.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, "Bulbasaur", first.DisplayName())
	assert.Equal(t, []TypeName{"Grass", "Poison"}, first.Type)

	last, err := ds.Lookup(ds.Size())
	require.NoError(t, err)
	assert.Equal(t, "Mew", last.DisplayName())

	// Every record has at least one type and a dense id.
	for i, r := range ds.All() {
		assert.Equal(t, i+1, r.ID)
		assert.NotEmpty(t, r.Type, "record %d", r.ID)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
		wantErr error
	}{
		{name: "empty", records: nil, wantErr: ErrEmpty},
		{
			name: "gap",
			records: []Record{
				{ID: 1, Name: Names{LangEnglish: "A"}},
				{ID: 3, Name: Names{LangEnglish: "C"}},
			},
			wantErr: ErrSparseIDs,
		},
		{
			name:    "starts at zero",
			records: []Record{{ID: 0, Name: Names{LangEnglish: "Z"}}},
			wantErr: ErrSparseIDs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("missing english name", func(t *testing.T) {
		_, err := New([]Record{{ID: 1, Name: Names{"french": "Bulbizarre"}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no english name")
	})
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"id":1}`))
	require.Error(t, err)
}

func TestLookup(t *testing.T) {
	ds, err := Embedded()
	require.NoError(t, err)

	for _, id := range []int{0, -1, ds.Size() + 1} {
		_, lookupErr := ds.Lookup(id)
		require.ErrorIs(t, lookupErr, ErrNotFound, "id %d", id)
	}
}

func TestBounds(t *testing.T) {
	ds, err := Embedded()
	require.NoError(t, err)

	for id := 1; id <= ds.Size(); id++ {
		assert.Equal(t, id != 1, ds.HasPrev(id), "prev for %d", id)
		assert.Equal(t, id != ds.Size(), ds.HasNext(id), "next for %d", id)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	ds, err := Embedded()
	require.NoError(t, err)

	all := ds.All()
	all[0].ID = 999

	r, err := ds.Lookup(1)
	require.NoError(t, err)
	assert.Equal(t, 1, r.ID)
}

func TestSelect(t *testing.T) {
	ds, err := Embedded()
	require.NoError(t, err)

	got := ds.Select(7, 1, 4, 9999)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 4, 7}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestParseID(t *testing.T) {
	ds, err := Embedded()
	require.NoError(t, err)

	id, err := ds.ParseID("25")
	require.NoError(t, err)
	assert.Equal(t, 25, id)

	_, err = ds.ParseID("pikachu")
	require.ErrorIs(t, err, ErrInvalidID)

	_, err = ds.ParseID("152")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = ds.ParseID("0")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTypeNameKey(t *testing.T) {
	assert.Equal(t, "fire", TypeName("Fire").Key())
	assert.Equal(t, "Fire", TypeName("Fire").String())
}
