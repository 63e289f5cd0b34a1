// Package rgraph builds the reduced, per-result graph: the node/edge ids
// bound by a single TRAPI result, restricted to edges whose predicate is
// biolink-recognized.
package rgraph

import (
	"github.com/kgraph-hub/trapi-summary/internal/biolink"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

// RGraph is a subset of a single result: the bound node curies and the
// edge ids among them whose predicate passed validation.
type RGraph struct {
	Nodes []string
	Edges []string
}

// Build flattens result's node/edge bindings into an RGraph, dropping any
// edge whose predicate fails biolink.IsPredicate. It returns (nil, false)
// when any bound node curie is absent from kg.Nodes, an unbindable result
// callers skip rather than fail on.
func Build(result trapi.Result, kg trapi.KnowledgeGraph) (*RGraph, bool) {
	seen := map[string]struct{}{}
	var nodes []string
	for _, bindings := range result.NodeBindings {
		for _, b := range bindings {
			if _, ok := kg.Nodes[b.ID]; !ok {
				return nil, false
			}
			if _, dup := seen[b.ID]; dup {
				continue
			}
			seen[b.ID] = struct{}{}
			nodes = append(nodes, b.ID)
		}
	}

	var edges []string
	for _, bindings := range result.EdgeBindings {
		for _, b := range bindings {
			edge, ok := kg.Edges[b.ID]
			if !ok {
				continue
			}
			if !biolink.IsPredicate(edge.Predicate) {
				continue
			}
			edges = append(edges, b.ID)
		}
	}

	return &RGraph{Nodes: nodes, Edges: edges}, true
}
