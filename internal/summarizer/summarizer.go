// Package summarizer is the core entry point: it runs canonicalization,
// per-agent path extraction, and the cross-agent merge, and returns the
// final summary. It is the only exported surface core callers (the server,
// the CLI) use; no logger, no annotation client, no network dependency.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/kgraph-hub/trapi-summary/internal/fragment"
	"github.com/kgraph-hub/trapi-summary/internal/merge"
	"github.com/kgraph-hub/trapi-summary/internal/model"
	"github.com/kgraph-hub/trapi-summary/internal/publication"
	"github.com/kgraph-hub/trapi-summary/internal/resolve"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

var ErrMalformedInput = errors.New("summarizer: malformed input")
var ErrUnsupportedQueryType = errors.New("summarizer: unsupported query type")

var sameAsXrefAttrs = map[string]struct{}{
	"biolink:same_as": {},
	"biolink:xref":    {},
}

// Summarize classifies publication ids with the built-in PMID/NCT
// patterns; equivalent to SummarizeWithIDPatterns with a nil pattern map.
func Summarize(ctx context.Context, qid string, answers []trapi.Answer, maxHops int) (model.FinalSummary, error) {
	return SummarizeWithIDPatterns(ctx, qid, answers, maxHops, nil)
}

// SummarizeWithIDPatterns folds answers (one TRAPI message per agent) into
// the final summary for qid, classifying publication ids via idPatterns
// (prefix -> kind), or the built-in defaults if idPatterns is empty.
// Boundary validation (qid non-empty, maxHops >= 1) fails fast before the
// core ever runs.
func SummarizeWithIDPatterns(ctx context.Context, qid string, answers []trapi.Answer, maxHops int, idPatterns map[string]string) (model.FinalSummary, error) {
	if qid == "" {
		return model.FinalSummary{}, fmt.Errorf("qid is required: %w", ErrMalformedInput)
	}
	if maxHops < 1 {
		return model.FinalSummary{}, fmt.Errorf("max_hops must be >= 1, got %d: %w", maxHops, ErrUnsupportedQueryType)
	}
	if err := ctx.Err(); err != nil {
		return model.FinalSummary{}, err
	}

	resolver := resolve.NewResolver()
	for _, answer := range answers {
		curies := make([]string, 0, len(answer.Message.KnowledgeGraph.Nodes))
		for curie := range answer.Message.KnowledgeGraph.Nodes {
			curies = append(curies, curie)
		}
		sort.Strings(curies)
		for _, curie := range curies {
			resolver.AddBag(aliasBag(curie, answer.Message.KnowledgeGraph.Nodes[curie]))
		}
	}
	canon := resolve.Canonicalizer(resolver.Build())

	producer := fragment.NewProducer()
	fragments := make([]model.CondensedSummary, 0, len(answers))
	for _, answer := range answers {
		frag := producer.Produce(answer.Agent, answer.Message, maxHops, canon.Canonicalize)
		fragments = append(fragments, model.CondensedSummary{Agent: answer.Agent, Fragment: frag})
	}

	var classifier publication.IDClassifier
	if len(idPatterns) > 0 {
		classifier = publication.DefaultIDClassifier(idPatterns)
	}
	merger := merge.NewMerger(classifier)
	return merger.Merge(qid, fragments), nil
}

// aliasBag builds the {curie} union same_as/xref bag for one node, curie
// first so it is the default canonical candidate when no other agent has
// mentioned it earlier.
func aliasBag(curie string, node trapi.KNode) []string {
	bag := []string{curie}
	for _, attr := range node.Attributes {
		if _, ok := sameAsXrefAttrs[attr.AttributeTypeID]; !ok {
			continue
		}
		bag = append(bag, aliasValues(attr.Value)...)
	}
	return bag
}

// aliasValues coerces an attribute value that may be a single CURIE string
// or a list of them into a flat []string, dropping non-string entries.
func aliasValues(v interface{}) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return t
	default:
		return nil
	}
}
