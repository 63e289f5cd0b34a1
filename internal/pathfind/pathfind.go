// Package pathfind enumerates bounded-length drug->disease simple paths
// over a reduced result graph. Traversal treats the rgraph as undirected
// (an edge contributes to both endpoints' adjacency) and tracks direction
// via WalkEdge.Inverted.
package pathfind

import (
	"github.com/kgraph-hub/trapi-summary/internal/rgraph"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

// WalkEdge is one traversed hop: the underlying kedge id, the node it
// leads to, and whether traversal went against the kedge's own
// subject->object direction.
type WalkEdge struct {
	EdgeID   string
	To       string
	Inverted bool
}

// Path is a raw, not-yet-canonicalized drug->disease walk: Nodes has one
// more entry than Edges, alternating node/edge/node/.../node.
type Path struct {
	Nodes []string
	Edges []WalkEdge
}

// frame is one stack entry of the iterative DFS: the node currently being
// visited and the index of the next untried neighbor.
type frame struct {
	node   string
	adjIdx int
}

// FindPaths enumerates every simple path from drug to disease within rg,
// with no node repeated and total sequence length (nodes+edges) at most
// 2*maxHops+1. An extension is only taken when the target node is both
// absent from the path so far and canonicalizable via canon. Returns nil
// if rg is empty or either endpoint is missing from it.
func FindPaths(rg *rgraph.RGraph, kg trapi.KnowledgeGraph, drug, disease string, maxHops int, canon func(string) (string, bool)) []Path {
	if rg == nil || len(rg.Nodes) == 0 {
		return nil
	}
	inRGraph := make(map[string]struct{}, len(rg.Nodes))
	for _, n := range rg.Nodes {
		inRGraph[n] = struct{}{}
	}
	if _, ok := inRGraph[drug]; !ok {
		return nil
	}
	if _, ok := inRGraph[disease]; !ok {
		return nil
	}

	adjacency := buildAdjacency(rg, kg)
	maxLen := 2*maxHops + 1

	var results []Path
	pathNodes := []string{drug}
	var pathEdges []WalkEdge
	inPath := map[string]struct{}{drug: {}}
	stack := []*frame{{node: drug}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.node == disease && len(pathNodes) > 1 {
			results = append(results, Path{
				Nodes: append([]string(nil), pathNodes...),
				Edges: append([]WalkEdge(nil), pathEdges...),
			})
			stack = stack[:len(stack)-1]
			delete(inPath, top.node)
			pathNodes = pathNodes[:len(pathNodes)-1]
			pathEdges = pathEdges[:len(pathEdges)-1]
			continue
		}

		neighbors := adjacency[top.node]
		curLen := len(pathNodes) + len(pathEdges)
		advanced := false
		for top.adjIdx < len(neighbors) {
			if curLen+2 > maxLen {
				break
			}
			next := neighbors[top.adjIdx]
			top.adjIdx++
			if _, dup := inPath[next.To]; dup {
				continue
			}
			if _, ok := canon(next.To); !ok {
				continue
			}
			pathNodes = append(pathNodes, next.To)
			pathEdges = append(pathEdges, next)
			inPath[next.To] = struct{}{}
			stack = append(stack, &frame{node: next.To})
			advanced = true
			break
		}
		if advanced {
			continue
		}

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			break
		}
		delete(inPath, top.node)
		pathNodes = pathNodes[:len(pathNodes)-1]
		pathEdges = pathEdges[:len(pathEdges)-1]
	}
	return results
}

func buildAdjacency(rg *rgraph.RGraph, kg trapi.KnowledgeGraph) map[string][]WalkEdge {
	adjacency := map[string][]WalkEdge{}
	for _, eid := range rg.Edges {
		edge, ok := kg.Edges[eid]
		if !ok {
			continue
		}
		adjacency[edge.Subject] = append(adjacency[edge.Subject], WalkEdge{EdgeID: eid, To: edge.Object, Inverted: false})
		adjacency[edge.Object] = append(adjacency[edge.Object], WalkEdge{EdgeID: eid, To: edge.Subject, Inverted: true})
	}
	return adjacency
}
