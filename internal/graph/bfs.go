package graph

// Unreachable is the distance reported when no route exists between two
// countries.
const Unreachable = -1

// Distances runs a breadth-first traversal from source and returns the
// crossing count to every reachable country. Countries in another
// component are absent from the map.
func (g *Graph) Distances(source string) (map[string]int, error) {
	if !g.HasNode(source) {
		return nil, &UnknownCountryError{Name: source}
	}

	dist := map[string]int{source: 0}
	queue := []string{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for neighbor := range g.adj[current] {
			if _, seen := dist[neighbor]; seen {
				continue
			}
			dist[neighbor] = dist[current] + 1
			queue = append(queue, neighbor)
		}
	}
	return dist, nil
}

// Distance returns the minimum crossing count between source and target,
// or Unreachable when the two lie in different components.
func (g *Graph) Distance(source, target string) (int, error) {
	if !g.HasNode(target) {
		return 0, &UnknownCountryError{Name: target}
	}
	dist, err := g.Distances(source)
	if err != nil {
		return 0, err
	}
	d, ok := dist[target]
	if !ok {
		return Unreachable, nil
	}
	return d, nil
}
