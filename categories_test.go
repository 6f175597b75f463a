package predictions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaguesForSport(t *testing.T) {
	for _, sport := range Sports {
		leagues := LeaguesForSport(sport.ID)
		assert.NotEmpty(t, leagues, "sport %s has no leagues", sport.ID)
	}

	soccer := LeaguesForSport("soccer")
	require.Len(t, soccer, 4)
	assert.Equal(t, "eng.1", soccer[0].Path)

	assert.Nil(t, LeaguesForSport("cricket"))
}

func TestCategoriesForSport(t *testing.T) {
	for _, sport := range Sports {
		categories := CategoriesForSport(sport.ID)
		require.NotEmpty(t, categories, "sport %s has no categories", sport.ID)

		seen := make(map[string]bool)
		for _, c := range categories {
			assert.False(t, seen[c.ID], "duplicate category %s for %s", c.ID, sport.ID)
			seen[c.ID] = true
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.Description)
		}
	}

	assert.Nil(t, CategoriesForSport("cricket"))
}

func TestLeagueName(t *testing.T) {
	assert.Equal(t, "Premier League", LeagueName("eng.1"))
	assert.Equal(t, "Premier League", LeagueName("epl"))
	assert.Equal(t, "NBA", LeagueName("nba"))
	assert.Equal(t, "xyz.9", LeagueName("xyz.9"), "unknown ids fall through unchanged")
}
