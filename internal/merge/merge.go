// Package merge reduces every agent's SummaryFragment into the final,
// deduplicated summary: extend results/paths, run node and edge
// transforms, average scores, synthesize inverse edges, and splice in the
// publications table.
package merge

import (
	"sort"

	"github.com/kgraph-hub/trapi-summary/internal/model"
	"github.com/kgraph-hub/trapi-summary/internal/pathkey"
	"github.com/kgraph-hub/trapi-summary/internal/publication"
	"github.com/kgraph-hub/trapi-summary/internal/qualifier"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

// Merger folds CondensedSummary fragments into one FinalSummary.
type Merger struct {
	classifier publication.IDClassifier
}

// defaultIDPatterns backs NewMerger's fallback classifier when the caller
// supplies none, e.g. because no id_patterns config was loaded.
var defaultIDPatterns = map[string]string{
	"PMID:": "pubmed",
	"NCT":   "clinicaltrial",
}

// NewMerger returns a Merger. A nil classifier falls back to
// publication.DefaultIDClassifier over defaultIDPatterns; callers that
// have a config's id_patterns table should build their own classifier
// with publication.DefaultIDClassifier and pass it in instead (see
// internal/summarizer.SummarizeWithIDPatterns).
func NewMerger(classifier publication.IDClassifier) *Merger {
	if classifier == nil {
		classifier = publication.DefaultIDClassifier(defaultIDPatterns)
	}
	return &Merger{classifier: classifier}
}

// Merge folds fragments, in the order given (agent-insertion order;
// determinism depends on it), into the final summary.
func (m *Merger) Merge(qid string, fragments []model.CondensedSummary) model.FinalSummary {
	resultsByDrug := map[string][]string{}
	pathsByKey := map[string]*model.PathEntry{}
	nodeAcc := map[string]map[string]interface{}{}
	edgeAcc := map[string]map[string]interface{}{}
	edgeIdentities := map[string]edgeIdentity{}
	scores := map[string][]float64{}

	var agents []string
	seenAgents := map[string]struct{}{}

	for _, cs := range fragments {
		agent, frag := cs.Agent, cs.Fragment
		if _, ok := seenAgents[agent]; !ok {
			seenAgents[agent] = struct{}{}
			agents = append(agents, agent)
		}

		for _, subgraph := range frag.Paths {
			if len(subgraph) == 0 {
				continue
			}
			nodeKeys, preds := splitSubgraph(subgraph)
			key := pathkey.PathKey(nodeKeys, preds)
			resultsByDrug[nodeKeys[0]] = append(resultsByDrug[nodeKeys[0]], key)

			if entry, ok := pathsByKey[key]; ok {
				entry.Aras = append(entry.Aras, agent)
			} else {
				pathsByKey[key] = &model.PathEntry{Subgraph: subgraph, Aras: []string{agent}}
			}
		}

		for _, fn := range frag.Nodes {
			acc := getOrCreateAcc(nodeAcc, fn.Key)
			for _, t := range fn.Transforms {
				t(acc)
				acc["aras"] = append(acc["aras"].([]interface{}), agent)
			}
		}

		for _, fe := range frag.Edges {
			acc := getOrCreateAcc(edgeAcc, fe.Key)
			if _, ok := edgeIdentities[fe.Key]; !ok {
				edgeIdentities[fe.Key] = edgeIdentity{
					Subject:       fe.Subject,
					Object:        fe.Object,
					Predicate:     fe.Predicate,
					BasePredicate: fe.BasePredicate,
					Inverted:      fe.Inverted,
					Qualifiers:    fe.Qualifiers,
				}
			}
			for _, t := range fe.Transforms {
				t(acc)
				acc["aras"] = append(acc["aras"].([]interface{}), agent)
			}
		}

		for drug, contributed := range frag.Scores {
			scores[drug] = append(scores[drug], contributed...)
		}
	}

	nodes := map[string]*model.SummaryNode{}
	for key, acc := range nodeAcc {
		n := nodeFromAcc(acc)
		dedupeNode(n)
		if len(n.Names) == 0 {
			n.Names = []string{key}
		}
		if len(n.Curies) == 0 {
			n.Curies = []string{key}
		}
		nodes[key] = n
	}

	edges := map[string]*model.SummaryEdge{}
	for key, acc := range edgeAcc {
		e := edgeFromAcc(edgeIdentities[key], acc)
		dedupeEdge(e)
		e.Publications = filterValidIDs(e.Publications)
		edges[key] = e
	}

	publications := publication.Splice(edges, m.classifier)
	synthesizeInverses(edges, edgeIdentities)

	var results []model.ResultEntry
	for drug, keys := range resultsByDrug {
		deduped := dedupeStrings(keys)
		sortPathKeys(deduped, pathsByKey)

		first := pathsByKey[deduped[0]]
		object := ""
		if len(first.Subgraph) > 0 {
			object = first.Subgraph[len(first.Subgraph)-1]
		}
		drugName := drug
		if n, ok := nodes[drug]; ok && len(n.Names) > 0 {
			drugName = n.Names[0]
		}
		results = append(results, model.ResultEntry{
			Subject:  drug,
			Object:   object,
			DrugName: drugName,
			Paths:    deduped,
			Score:    mean(scores[drug]),
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Subject < results[j].Subject })

	for _, pe := range pathsByKey {
		pe.Aras = dedupeStrings(pe.Aras)
	}

	return model.FinalSummary{
		Meta:         model.Meta{Qid: qid, Aras: agents},
		Results:      results,
		Paths:        pathsByKey,
		Nodes:        nodes,
		Edges:        edges,
		Publications: publications,
	}
}

func getOrCreateAcc(store map[string]map[string]interface{}, key string) map[string]interface{} {
	acc, ok := store[key]
	if !ok {
		acc = map[string]interface{}{"aras": []interface{}{}}
		store[key] = acc
	}
	return acc
}

// synthesizeInverses adds, for every forward edge, its structurally
// mirrored inverse at the inverse path key, unless that key is already
// present (it came in from some fragment directly). The inverse drops
// qualifiers and swaps subject/object.
func synthesizeInverses(edges map[string]*model.SummaryEdge, identities map[string]edgeIdentity) {
	forward := make([]string, 0, len(identities))
	for key := range identities {
		forward = append(forward, key)
	}
	for _, key := range forward {
		id := identities[key]
		invPredicate := qualifier.Qualified(trapi.KEdge{Predicate: id.BasePredicate, Qualifiers: id.Qualifiers}, !id.Inverted)
		invKey := pathkey.EdgeKey(id.Object, invPredicate, id.Subject)
		if _, exists := edges[invKey]; exists {
			continue
		}
		src := edges[key]
		if src == nil {
			continue
		}
		edges[invKey] = &model.SummaryEdge{
			Subject:      id.Object,
			Object:       id.Subject,
			Predicate:    invPredicate,
			Aras:         append([]string(nil), src.Aras...),
			Publications: append([]string(nil), src.Publications...),
			Sources:      append([]string(nil), src.Sources...),
		}
	}
}

func splitSubgraph(subgraph []string) (nodes, preds []string) {
	for i, s := range subgraph {
		if i%2 == 0 {
			nodes = append(nodes, s)
		} else {
			preds = append(preds, s)
		}
	}
	return
}

// sortPathKeys sorts keys by subgraph length ascending, then by elementwise
// lexical comparison on the even-index node keys only; edge keys do not
// participate in the tie-break.
func sortPathKeys(keys []string, paths map[string]*model.PathEntry) {
	sort.Slice(keys, func(i, j int) bool {
		a, b := paths[keys[i]], paths[keys[j]]
		if len(a.Subgraph) != len(b.Subgraph) {
			return len(a.Subgraph) < len(b.Subgraph)
		}
		an, _ := splitSubgraph(a.Subgraph)
		bn, _ := splitSubgraph(b.Subgraph)
		for i := range an {
			if an[i] != bn[i] {
				return an[i] < bn[i]
			}
		}
		return false
	})
}

func filterValidIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if isValidID(id) {
			out = append(out, id)
		}
	}
	return out
}

func mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
