// Package graph holds the country adjacency graph and the shortest-path
// queries over it. The graph is built once from dataset records and is
// read-only afterwards.
package graph

import "sort"

// Graph maps each country to the set of countries one border crossing
// away. Edges are undirected: adding A-B also records B-A.
type Graph struct {
	adj map[string]map[string]struct{}
}

func New() *Graph {
	return &Graph{adj: make(map[string]map[string]struct{})}
}

// Build constructs a graph from adjacency records. Every key becomes a
// node even when it lists no neighbors, and every listed edge is recorded
// in both directions. Duplicate listings and self-loops are dropped.
func Build(adjacency map[string][]string) *Graph {
	g := New()
	for country, neighbors := range adjacency {
		g.AddNode(country)
		for _, neighbor := range neighbors {
			g.AddEdge(country, neighbor)
		}
	}
	return g
}

// AddNode registers a country with no edges. Adding an existing country
// is a no-op.
func (g *Graph) AddNode(name string) {
	if _, ok := g.adj[name]; !ok {
		g.adj[name] = make(map[string]struct{})
	}
}

// AddEdge records an undirected border between two countries. Re-adding
// an existing edge has no effect; self-loops are ignored.
func (g *Graph) AddEdge(a, b string) {
	if a == b {
		return
	}
	g.AddNode(a)
	g.AddNode(b)
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
}

// HasNode reports whether the country appears in the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.adj[name]
	return ok
}

// HasEdge reports whether the two countries share a border.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adj[a][b]
	return ok
}

// Neighbors returns the country's neighbors sorted by name. A known
// country with no borders yields an empty slice.
func (g *Graph) Neighbors(name string) []string {
	set, ok := g.adj[name]
	if !ok {
		return nil
	}
	neighbors := make([]string, 0, len(set))
	for n := range set {
		neighbors = append(neighbors, n)
	}
	sort.Strings(neighbors)
	return neighbors
}

// Countries returns every country in the graph sorted by name.
func (g *Graph) Countries() []string {
	countries := make([]string, 0, len(g.adj))
	for c := range g.adj {
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries
}

// Len returns the number of countries in the graph.
func (g *Graph) Len() int {
	return len(g.adj)
}
