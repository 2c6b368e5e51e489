package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	t.Run("edges are symmetric even when listed once", func(t *testing.T) {
		g := Build(map[string][]string{
			"Chad":  {"Niger"},
			"Niger": {},
		})

		assert.True(t, g.HasEdge("Chad", "Niger"))
		assert.True(t, g.HasEdge("Niger", "Chad"))
		assert.Equal(t, []string{"Chad"}, g.Neighbors("Niger"))
	})

	t.Run("neighbor without its own row becomes a node", func(t *testing.T) {
		g := Build(map[string][]string{
			"Chad": {"Niger"},
		})

		assert.True(t, g.HasNode("Niger"))
		assert.Equal(t, 2, g.Len())
	})

	t.Run("duplicate listings collapse", func(t *testing.T) {
		g := Build(map[string][]string{
			"Chad":  {"Niger", "Niger"},
			"Niger": {"Chad"},
		})

		assert.Equal(t, []string{"Niger"}, g.Neighbors("Chad"))
	})

	t.Run("self loops are dropped", func(t *testing.T) {
		g := Build(map[string][]string{
			"Chad": {"Chad", "Niger"},
		})

		assert.False(t, g.HasEdge("Chad", "Chad"))
		assert.Equal(t, []string{"Niger"}, g.Neighbors("Chad"))
	})

	t.Run("country with no borders has empty neighbor set", func(t *testing.T) {
		g := Build(map[string][]string{
			"Iceland": {},
		})

		assert.True(t, g.HasNode("Iceland"))
		assert.Empty(t, g.Neighbors("Iceland"))
	})
}

func TestGraphQueries(t *testing.T) {
	g := Build(map[string][]string{
		"Chad":    {"Niger", "Libya", "Sudan"},
		"Niger":   {"Chad"},
		"Libya":   {"Chad"},
		"Sudan":   {"Chad"},
		"Iceland": {},
	})

	t.Run("neighbors are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"Libya", "Niger", "Sudan"}, g.Neighbors("Chad"))
	})

	t.Run("countries are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"Chad", "Iceland", "Libya", "Niger", "Sudan"}, g.Countries())
	})

	t.Run("unknown country is not a node", func(t *testing.T) {
		assert.False(t, g.HasNode("Atlantis"))
		assert.Nil(t, g.Neighbors("Atlantis"))
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		assert.False(t, g.HasNode("chad"))
	})
}
