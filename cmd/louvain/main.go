// Command louvain is a thin demo driver: it reads a weighted edge list,
// runs the community-detection engine, and prints a per-level summary.
// Graph ingestion here is intentionally minimal (no Matrix-Market / JSON
// parser) -- a full loader pipeline is out of scope, as discussed in
// SPEC_FULL.md's DOMAIN STACK section.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gilchrisn/louvain-engine/internal/config"
	"github.com/gilchrisn/louvain-engine/pkg/graph"
	"github.com/gilchrisn/louvain-engine/pkg/louvain"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: louvain <edgelist_file> [config_file]")
		fmt.Println("Edge list format: one 'u v [weight]' triple per line, 0-based vertex ids.")
		os.Exit(1)
	}

	edgelistFile := os.Args[1]

	g, err := readEdgeList(edgelistFile)
	if err != nil {
		fmt.Printf("error reading edge list: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("graph loaded: %d vertices, %.0f total edge weight\n", g.Order(), graph.EdgeWeight(g)/2)

	loader := config.NewLoader()
	if len(os.Args) > 2 {
		if err := loader.LoadFromFile(os.Args[2]); err != nil {
			fmt.Printf("error reading config file: %v\n", err)
			os.Exit(1)
		}
	}
	opts := loader.Options()

	result, err := louvain.Run(g, nil, opts)
	if err != nil {
		fmt.Printf("louvain run failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n=== Louvain Result (run %s) ===\n", result.RunID)
	fmt.Printf("passes: %d, total iterations: %d, total time: %s\n", result.Passes, result.Iterations, result.Time)
	for _, level := range result.Levels {
		fmt.Printf("  level %d: order=%d communities=%d modularity=%.6f iterations=%d\n",
			level.Level, level.Order, level.Communities, level.Modularity, level.Iterations)
	}

	communities := make(map[int][]int)
	for v, c := range result.Membership {
		communities[c] = append(communities[c], v)
	}
	fmt.Printf("\nfinal communities: %d\n", len(communities))
}

// readEdgeList parses a plain 'u v [weight]' edge list into a frozen CSR
// graph, sizing the graph to the largest vertex id seen plus one.
func readEdgeList(path string) (*graph.CSR, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var us, vs []int
	var ws []float64
	maxID := -1

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed line %q: expected at least 'u v'", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid vertex id %q: %w", fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid vertex id %q: %w", fields[1], err)
		}
		w := 1.0
		if len(fields) > 2 {
			w, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid weight %q: %w", fields[2], err)
			}
		}
		us = append(us, u)
		vs = append(vs, v)
		ws = append(ws, w)
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	g := graph.New(maxID + 1)
	for i := range us {
		if err := g.AddEdge(us[i], vs[i], ws[i]); err != nil {
			return nil, err
		}
	}
	g.Freeze()
	return g, nil
}
