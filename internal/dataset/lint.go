package dataset

import (
	"fmt"
	"sort"
	"strings"
)

// Lint reports consistency problems in the raw adjacency records:
// neighbors with no row of their own, one-sided neighbor listings, and
// countries cut off from the rest of the dataset. The graph builder
// tolerates all three (edges are symmetrized and missing rows become
// nodes), so findings are advisory.
func Lint(adjacency map[string][]string) []string {
	var findings []string

	countries := make([]string, 0, len(adjacency))
	for c := range adjacency {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	for _, country := range countries {
		for _, neighbor := range adjacency[country] {
			if _, ok := adjacency[neighbor]; !ok {
				findings = append(findings,
					fmt.Sprintf("%s lists %s as a neighbor but %s has no row", country, neighbor, neighbor))
				continue
			}
			if !contains(adjacency[neighbor], country) {
				findings = append(findings,
					fmt.Sprintf("%s lists %s but %s does not list %s", country, neighbor, neighbor, country))
			}
		}
	}

	if isolated := disconnected(adjacency, countries); len(isolated) > 0 {
		findings = append(findings,
			fmt.Sprintf("dataset is not connected, %d countries unreachable from %s: %s",
				len(isolated), countries[0], strings.Join(isolated, ", ")))
	}

	return findings
}

// disconnected returns the countries a breadth-first sweep from the
// first row never reaches. The sweep follows listings in both
// directions, matching how the graph is built.
func disconnected(adjacency map[string][]string, countries []string) []string {
	if len(countries) == 0 {
		return nil
	}

	undirected := make(map[string][]string, len(adjacency))
	for country, neighbors := range adjacency {
		for _, n := range neighbors {
			undirected[country] = append(undirected[country], n)
			undirected[n] = append(undirected[n], country)
		}
	}

	visited := map[string]bool{countries[0]: true}
	queue := []string{countries[0]}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range undirected[current] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}

	var isolated []string
	for _, country := range countries {
		if !visited[country] {
			isolated = append(isolated, country)
		}
	}
	return isolated
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}
