package game

import (
	"errors"
	"math/rand/v2"

	"github.com/borderhop/core/internal/graph"
)

// RandomPair draws a source and target for a new game: distinct, not
// direct neighbors, and connected by some route. The caller supplies the
// random source so tests can seed it.
func RandomPair(g *graph.Graph, rng *rand.Rand) (string, string, error) {
	countries := g.Countries()
	if len(countries) < 2 {
		return "", "", errors.New("need at least two countries for a game")
	}

	for attempt := 0; attempt < 100; attempt++ {
		source := countries[rng.IntN(len(countries))]
		dist, err := g.Distances(source)
		if err != nil {
			return "", "", err
		}

		var candidates []string
		for _, country := range countries {
			if d, ok := dist[country]; ok && d >= 2 {
				candidates = append(candidates, country)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		return source, candidates[rng.IntN(len(candidates))], nil
	}

	return "", "", errors.New("no source and target at least two crossings apart")
}
