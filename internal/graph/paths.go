package graph

// SearchResult is the outcome of a shortest-path query: the crossing
// count and every minimal route between the endpoints.
type SearchResult struct {
	Distance int
	Paths    [][]string
}

// ShortestPaths enumerates the shortest paths from source to target in
// lexicographic order. limit caps the number of paths returned; zero
// means no cap.
//
// The traversal walks the BFS distance map depth-first and only ever
// steps from a country at depth d to a neighbor at depth d+1, so every
// emitted path is minimal by construction and the walk is bounded by the
// target's distance. Next hops are pushed in reverse name order so the
// lexicographically smallest continuation is explored first.
func (g *Graph) ShortestPaths(source, target string, limit int) (*SearchResult, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if !g.HasNode(source) {
		return nil, &UnknownCountryError{Name: source}
	}
	if !g.HasNode(target) {
		return nil, &UnknownCountryError{Name: target}
	}

	if source == target {
		return &SearchResult{Distance: 0, Paths: [][]string{{source}}}, nil
	}

	dist, err := g.Distances(source)
	if err != nil {
		return nil, err
	}
	goal, ok := dist[target]
	if !ok {
		return &SearchResult{Distance: Unreachable, Paths: [][]string{}}, nil
	}

	type frame struct {
		country string
		depth   int
	}

	paths := [][]string{}
	path := make([]string, 0, goal+1)
	stack := []frame{{country: source, depth: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path = append(path[:f.depth], f.country)

		if f.country == target {
			paths = append(paths, append([]string(nil), path...))
			if limit > 0 && len(paths) == limit {
				break
			}
			continue
		}
		if f.depth == goal {
			continue
		}

		next := g.Neighbors(f.country)
		for i := len(next) - 1; i >= 0; i-- {
			if d, found := dist[next[i]]; found && d == f.depth+1 {
				stack = append(stack, frame{country: next[i], depth: f.depth + 1})
			}
		}
	}

	return &SearchResult{Distance: goal, Paths: paths}, nil
}
