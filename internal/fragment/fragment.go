// Package fragment folds one agent's TRAPI message into a SummaryFragment:
// for each result, build the reduced graph, enumerate paths, normalize
// every node/edge to its canonical key and qualified predicate, and
// accumulate the node/edge transform lists the merger will later apply.
package fragment

import (
	"github.com/kgraph-hub/trapi-summary/internal/model"
	"github.com/kgraph-hub/trapi-summary/internal/pathfind"
	"github.com/kgraph-hub/trapi-summary/internal/pathkey"
	"github.com/kgraph-hub/trapi-summary/internal/qualifier"
	"github.com/kgraph-hub/trapi-summary/internal/rgraph"
	"github.com/kgraph-hub/trapi-summary/internal/rules"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

// Producer produces a SummaryFragment from a single agent's message.
type Producer struct{}

// NewProducer returns a Producer. It carries no state; every call to
// Produce is independent.
func NewProducer() *Producer {
	return &Producer{}
}

// Produce folds every result of msg into fragment accumulators. A result
// whose rgraph.Build rejects it, or whose drug binding doesn't
// canonicalize, is skipped rather than failing the whole fragment.
func (p *Producer) Produce(agent string, msg trapi.Message, maxHops int, canon func(string) (string, bool)) model.SummaryFragment {
	frag := model.SummaryFragment{Scores: map[string][]float64{}}

	for _, result := range msg.Results {
		rg, ok := rgraph.Build(result, msg.KnowledgeGraph)
		if !ok {
			continue
		}

		drugBindings := result.NodeBindings[trapi.SubjectBindingKey]
		diseaseBindings := result.NodeBindings[trapi.ObjectBindingKey]
		if len(drugBindings) == 0 || len(diseaseBindings) == 0 {
			continue
		}
		drug, disease := drugBindings[0].ID, diseaseBindings[0].ID

		drugCanon, ok := canon(drug)
		if !ok {
			continue
		}

		paths := pathfind.FindPaths(rg, msg.KnowledgeGraph, drug, disease, maxHops, canon)
		for _, path := range paths {
			subgraph, nodes, edges, ok := p.normalize(msg.KnowledgeGraph, path, canon)
			if !ok {
				continue
			}
			frag.Paths = append(frag.Paths, subgraph)
			frag.Nodes = append(frag.Nodes, nodes...)
			frag.Edges = append(frag.Edges, edges...)
		}

		score := 0.0
		if result.NormalizedScore != nil {
			score = *result.NormalizedScore
		}
		frag.Scores[drugCanon] = append(frag.Scores[drugCanon], score)
	}

	return frag
}

// normalize rewrites a raw pathfind.Path into a canonical subgraph plus the
// per-node/per-edge fragment entries carrying their transform lists. It
// fails (returns ok=false) if any node on the path no longer canonicalizes
// or any edge id has gone missing from kg, both defensive, since
// pathfind.FindPaths already checked canonicalizability during traversal.
func (p *Producer) normalize(kg trapi.KnowledgeGraph, path pathfind.Path, canon func(string) (string, bool)) ([]string, []model.FragmentNode, []model.FragmentEdge, bool) {
	canonNodes := make([]string, len(path.Nodes))
	for i, n := range path.Nodes {
		c, ok := canon(n)
		if !ok {
			return nil, nil, nil, false
		}
		canonNodes[i] = c
	}

	subgraph := []string{canonNodes[0]}
	nodes := []model.FragmentNode{
		{Key: canonNodes[0], Transforms: rules.NodeRules.Build(nodeObj(kg.Nodes[path.Nodes[0]]))},
	}
	var edges []model.FragmentEdge

	for i, we := range path.Edges {
		kedge, ok := kg.Edges[we.EdgeID]
		if !ok {
			return nil, nil, nil, false
		}

		qp := qualifier.Qualified(kedge, we.Inverted)
		subjCanon, objCanon := canonNodes[i], canonNodes[i+1]
		key := pathkey.EdgeKey(subjCanon, qp, objCanon)

		edges = append(edges, model.FragmentEdge{
			Key:           key,
			Subject:       subjCanon,
			Object:        objCanon,
			Predicate:     qp,
			BasePredicate: kedge.Predicate,
			Inverted:      we.Inverted,
			Qualifiers:    kedge.Qualifiers,
			Transforms:    rules.EdgeRules.Build(edgeObj(kedge)),
		})

		subgraph = append(subgraph, qp, canonNodes[i+1])
		nodes = append(nodes, model.FragmentNode{
			Key:        canonNodes[i+1],
			Transforms: rules.NodeRules.Build(nodeObj(kg.Nodes[path.Nodes[i+1]])),
		})
	}

	return subgraph, nodes, edges, true
}
