// Package render turns a set of shortest paths into DOT and SVG
// documents. Rendering happens locally; no external tool is invoked.
package render

import (
	"fmt"
	"html"
	"strings"
)

type edge struct {
	from, to string
}

// subgraph flattens the path list into nodes and directed edges in
// first-seen order, deduplicated. Nodes are the countries on any path,
// edges the consecutive pairs.
func subgraph(paths [][]string) ([]string, []edge) {
	var nodes []string
	var edges []edge
	seenNode := make(map[string]bool)
	seenEdge := make(map[edge]bool)

	for _, path := range paths {
		for i, country := range path {
			if !seenNode[country] {
				seenNode[country] = true
				nodes = append(nodes, country)
			}
			if i == 0 {
				continue
			}
			e := edge{from: path[i-1], to: country}
			if !seenEdge[e] {
				seenEdge[e] = true
				edges = append(edges, e)
			}
		}
	}
	return nodes, edges
}

// DOT renders the paths as a Graphviz digraph, laid out left to right.
// Multi-word country names break across lines in their labels.
func DOT(paths [][]string) string {
	nodes, edges := subgraph(paths)

	var sb strings.Builder
	sb.WriteString("digraph routes {\n")
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [shape=box, style=rounded];\n")

	if len(nodes) > 0 {
		sb.WriteString("\n")
	}
	for _, n := range nodes {
		if strings.ContainsRune(n, ' ') {
			sb.WriteString(fmt.Sprintf("    %s [label=%s];\n", dotID(n), dotLabel(n)))
		} else {
			sb.WriteString(fmt.Sprintf("    %s;\n", dotID(n)))
		}
	}

	if len(edges) > 0 {
		sb.WriteString("\n")
	}
	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("    %s -> %s;\n", dotID(e.from), dotID(e.to)))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// dotID quotes a country name so any character is a valid DOT node ID.
func dotID(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// dotLabel quotes a label with spaces turned into line breaks.
func dotLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, " ", `\n`)
	return `"` + s + `"`
}

// SVG renders the paths as a layered diagram: one column per crossing,
// one row per country at that depth, edges drawn beneath the nodes.
func SVG(paths [][]string) string {
	const (
		colStep = 180
		rowStep = 70
		nodeW   = 140
		nodeH   = 36
		margin  = 40
	)

	// A country sits at the same index in every shortest path, so the
	// first appearance fixes its column.
	type point struct{ x, y int }
	var columns [][]string
	center := make(map[string]point)

	for _, path := range paths {
		for depth, country := range path {
			if _, placed := center[country]; placed {
				continue
			}
			for len(columns) <= depth {
				columns = append(columns, nil)
			}
			center[country] = point{
				x: margin + depth*colStep + nodeW/2,
				y: margin + len(columns[depth])*rowStep + nodeH/2,
			}
			columns[depth] = append(columns[depth], country)
		}
	}

	maxRows := 0
	for _, col := range columns {
		if len(col) > maxRows {
			maxRows = len(col)
		}
	}
	width := 2*margin + len(columns)*colStep
	if width < 2*margin+nodeW {
		width = 2*margin + nodeW
	}
	height := 2*margin + maxRows*rowStep

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, width, height))
	sb.WriteString("\n")
	sb.WriteString(`<defs><marker id="arrow" markerWidth="8" markerHeight="8" refX="7" refY="3" orient="auto"><path d="M0,0 L7,3 L0,6 z" fill="#666"/></marker></defs>`)
	sb.WriteString("\n")

	_, edges := subgraph(paths)
	for _, e := range edges {
		from, to := center[e.from], center[e.to]
		sb.WriteString(fmt.Sprintf(
			`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#666" stroke-width="1.5" marker-end="url(#arrow)"/>`,
			from.x+nodeW/2, from.y, to.x-nodeW/2, to.y))
		sb.WriteString("\n")
	}

	for depth, col := range columns {
		for _, country := range col {
			c := center[country]
			fill := "#ffffff"
			switch depth {
			case 0:
				fill = "#dff5e1"
			case len(columns) - 1:
				fill = "#fde2e2"
			}
			sb.WriteString(fmt.Sprintf(
				`<rect x="%d" y="%d" width="%d" height="%d" rx="6" fill="%s" stroke="#333"/>`,
				c.x-nodeW/2, c.y-nodeH/2, nodeW, nodeH, fill))
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf(
				`<text x="%d" y="%d" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="13">%s</text>`,
				c.x, c.y, html.EscapeString(country)))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
