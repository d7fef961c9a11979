package catalog

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/exped-planner/internal/loader"
	"github.com/napolitain/exped-planner/internal/models"
)

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	infos, err := loader.LoadDefault(loader.Options{Warnf: t.Logf})
	require.NoError(t, err)
	c, err := New(infos)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsDuplicates(t *testing.T) {
	_, err := New([]*models.ExpeditionInfo{{ID: 1}, {ID: 2}, {ID: 1}})
	assert.Error(t, err)

	_, err = New([]*models.ExpeditionInfo{{ID: 1}, nil})
	assert.Error(t, err)
}

func TestCatalog_Accessors(t *testing.T) {
	c := loadCatalog(t)

	require.Equal(t, 40, c.Len())
	ids := c.IDs()
	for i, id := range ids {
		assert.Equal(t, i+1, id)
	}

	info, ok := c.Get(21)
	require.True(t, ok)
	assert.Equal(t, "Northern Mouse Transport Operation", info.Name)
	_, ok = c.Get(0)
	assert.False(t, ok)

	all := c.All()
	all[0] = nil
	assert.NotNil(t, c.All()[0], "All returns a copy")
}

func TestCatalog_Worlds(t *testing.T) {
	c := loadCatalog(t)

	worlds := c.Worlds()
	require.Len(t, worlds, 5)
	for w, group := range worlds {
		require.Len(t, group, models.ExpeditionsPerWorld)
		for _, info := range group {
			assert.Equal(t, w+1, info.World())
		}
	}
}

func TestCatalog_WorldsOutOfOrderAndSparse(t *testing.T) {
	c, err := New([]*models.ExpeditionInfo{{ID: 9}, {ID: 1}, {ID: 33}, {ID: 3}})
	require.NoError(t, err)

	worlds := c.Worlds()
	require.Len(t, worlds, 3)
	assert.Equal(t, 1, worlds[0][0].World())
	assert.Equal(t, 2, worlds[1][0].World())
	assert.Equal(t, 5, worlds[2][0].World(), "worlds 3 and 4 are absent")

	var ids []int
	for _, info := range worlds[0] {
		ids = append(ids, info.ID)
	}
	assert.Equal(t, []int{1, 3}, ids, "load order within a world")
}

func TestCatalog_Lookup(t *testing.T) {
	c := loadCatalog(t)

	tests := []struct {
		query string
		want  int
	}{
		{"5", 5},
		{" 38 ", 38},
		{"Tokyo Express", 37},
		{"tokyo express ii", 38},
		{"bauxite", 11},
		{"MO", 35},
		{"western", 28},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			info, err := c.Lookup(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.ID)
		})
	}
}

func TestCatalog_LookupNotFound(t *testing.T) {
	c := loadCatalog(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"99", nil},
		{"", nil},
		{"zzzzzzzzzzzz", nil},
		{"tokyo", []string{"Tokyo Express", "Tokyo Express II"}},
		{"submarine", []string{"Submarine Reconnaissance Mission", "Submarine Patrol Mission", "Submarine Special Mission"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, err := c.Lookup(tt.query)
			var notFound *NotFoundError
			require.True(t, errors.As(err, &notFound), "got %v", err)
			assert.Equal(t, tt.query, notFound.Query)
			if tt.want == nil {
				assert.Empty(t, notFound.Suggestions)
			} else {
				assert.Equal(t, tt.want, notFound.Suggestions)
			}
		})
	}
}

func TestCatalog_LookupSuggestsTypos(t *testing.T) {
	c := loadCatalog(t)

	_, err := c.Lookup("Tokio Express")
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound), "got %v", err)
	require.NotEmpty(t, notFound.Suggestions)
	assert.Equal(t, "Tokyo Express", notFound.Suggestions[0])
	assert.Contains(t, notFound.Suggestions, "Tokyo Express II")
	assert.LessOrEqual(t, len(notFound.Suggestions), 3)
	assert.Contains(t, err.Error(), "did you mean")
}

func TestCatalog_LookupSuggestsByRunes(t *testing.T) {
	c, err := New([]*models.ExpeditionInfo{
		{ID: 5, Name: "タンカー護衛任務"},
		{ID: 14, Name: "海峡警備行動"},
	})
	require.NoError(t, err)

	_, err = c.Lookup("タンカー護衛x")
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound), "got %v", err)
	assert.Equal(t, []string{"タンカー護衛任務"}, notFound.Suggestions)
	assert.True(t, utf8.ValidString(err.Error()))

	// three edits on a six-character name is past the limit for six
	// characters, however many bytes they take
	_, err = c.Lookup("海峡XYZ動")
	require.True(t, errors.As(err, &notFound), "got %v", err)
	assert.Empty(t, notFound.Suggestions)
}
