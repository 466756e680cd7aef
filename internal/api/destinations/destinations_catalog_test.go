package destinations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderplan/go-travel-planner/internal/types"
)

func TestNewCatalog_KeysSortedAndComplete(t *testing.T) {
	c := NewCatalog()
	keys := c.Keys()

	assert.Len(t, keys, 14)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "new_york")
	assert.Contains(t, keys, "luang_prabang")
}

func TestCatalogGet_ExactKeyOnly(t *testing.T) {
	c := NewCatalog()

	dest, ok := c.Get("tokyo")
	require.True(t, ok)
	assert.Equal(t, "Tokyo, Japan", dest.Name)

	_, ok = c.Get("Tokyo")
	assert.False(t, ok)
}

func TestCatalogResolve(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name    string
		query   string
		wantKey string
		wantOK  bool
	}{
		{"exact key", "luang_prabang", "luang_prabang", true},
		{"display name with comma and country", "Luang Prabang, Laos", "luang_prabang", true},
		{"mixed case with spaces", "New York", "new_york", true},
		{"key is substring of query", "paris france", "paris", true},
		{"query is substring of key", "prabang", "luang_prabang", true},
		{"surrounding whitespace", "  tokyo  ", "tokyo", true},
		{"unknown", "narnia", "", false},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest, ok := c.Resolve(tt.query)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKey, dest.Key)
			}
		})
	}
}

func TestCatalogFilter(t *testing.T) {
	c := NewCatalog()

	t.Run("no predicates returns everything", func(t *testing.T) {
		assert.Len(t, c.Filter(types.DestinationFilter{}), 14)
	})

	t.Run("region is case insensitive", func(t *testing.T) {
		results := c.Filter(types.DestinationFilter{Region: "europe"})
		assert.Len(t, results, 6)
		for _, d := range results {
			assert.Equal(t, "Europe", d.Region)
		}
	})

	t.Run("min safety rating", func(t *testing.T) {
		results := c.Filter(types.DestinationFilter{MinSafetyRating: 5})
		require.NotEmpty(t, results)
		for _, d := range results {
			assert.GreaterOrEqual(t, d.SafetyRating, 5)
		}
	})

	t.Run("hidden gems only", func(t *testing.T) {
		results := c.Filter(types.DestinationFilter{HiddenGemsOnly: true})
		assert.Len(t, results, 6)
		for _, d := range results {
			assert.True(t, d.HiddenGem)
		}
	})

	t.Run("search matches name or country", func(t *testing.T) {
		byName := c.Filter(types.DestinationFilter{Search: "york"})
		require.Len(t, byName, 1)
		assert.Equal(t, "new_york", byName[0].Key)

		byCountry := c.Filter(types.DestinationFilter{Search: "canada"})
		require.Len(t, byCountry, 2)
	})

	t.Run("predicates combine with AND", func(t *testing.T) {
		results := c.Filter(types.DestinationFilter{Region: "Europe", HiddenGemsOnly: true})
		assert.Len(t, results, 4)
	})
}

func TestCatalogInterests(t *testing.T) {
	c := NewCatalog()
	interests := c.Interests()

	assert.Len(t, interests, 11)
	assert.Contains(t, interests, "solo female")
	assert.Contains(t, interests, "theme parks")
}

func TestGuidelines_AllSectionsPopulated(t *testing.T) {
	g := Guidelines()
	assert.NotEmpty(t, g.GeneralTips)
	assert.NotEmpty(t, g.AccommodationTips)
	assert.NotEmpty(t, g.TransportationTips)
}

func TestParseFilter(t *testing.T) {
	t.Run("all fields", func(t *testing.T) {
		f, err := ParseFilter(" Europe ", "4", "true", " castles ")
		require.NoError(t, err)
		assert.Equal(t, "Europe", f.Region)
		assert.Equal(t, 4, f.MinSafetyRating)
		assert.True(t, f.HiddenGemsOnly)
		assert.Equal(t, "castles", f.Search)
	})

	t.Run("empty values", func(t *testing.T) {
		f, err := ParseFilter("", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, types.DestinationFilter{}, f)
	})

	t.Run("hidden gems accepts 1 and 0", func(t *testing.T) {
		f, err := ParseFilter("", "", "1", "")
		require.NoError(t, err)
		assert.True(t, f.HiddenGemsOnly)

		f, err = ParseFilter("", "", "0", "")
		require.NoError(t, err)
		assert.False(t, f.HiddenGemsOnly)
	})

	t.Run("bad min safety", func(t *testing.T) {
		_, err := ParseFilter("", "high", "", "")
		assert.Error(t, err)
	})

	t.Run("bad hidden gems", func(t *testing.T) {
		_, err := ParseFilter("", "", "maybe", "")
		assert.Error(t, err)
	})
}
