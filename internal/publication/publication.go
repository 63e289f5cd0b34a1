// Package publication builds the final summary's publications table from
// edges' publications/snippets attributes.
package publication

import (
	"fmt"
	"strings"

	"github.com/kgraph-hub/trapi-summary/internal/model"
)

// IDClassifier resolves a publication id to its (type, url); ok is false
// for an id the classifier doesn't recognize, which is dropped rather than
// surfaced.
type IDClassifier func(id string) (kind, url string, ok bool)

// DefaultIDClassifier recognizes the PMID: and NCT (ClinicalTrials) id
// prefixes named in the id_patterns config, good enough for this repo's
// own fixtures without implementing the real out-of-scope
// evidence-expansion subsystem.
func DefaultIDClassifier(patterns map[string]string) IDClassifier {
	return func(id string) (string, string, bool) {
		for prefix, kind := range patterns {
			if strings.HasPrefix(id, prefix) {
				return kind, urlFor(kind, id), true
			}
		}
		return "", "", false
	}
}

func urlFor(kind, id string) string {
	switch kind {
	case "pubmed":
		return "https://pubmed.ncbi.nlm.nih.gov/" + strings.TrimPrefix(id, "PMID:")
	case "clinicaltrial":
		return "https://clinicaltrials.gov/study/" + strings.TrimPrefix(id, "NCT")
	default:
		return fmt.Sprintf("https://identifiers.org/%s", id)
	}
}

// Splice resolves every publication id referenced by edges' Publications
// lists via idToTypeAndURL, folds in any matching Snippets entry, and
// returns the publications table. Each edge's Snippets and Qualifiers are
// dropped in place once spliced.
func Splice(edges map[string]*model.SummaryEdge, idToTypeAndURL IDClassifier) map[string]model.Publication {
	out := map[string]model.Publication{}

	for _, edge := range edges {
		var kept []string
		for _, id := range edge.Publications {
			kind, url, ok := idToTypeAndURL(id)
			if !ok {
				continue
			}
			kept = append(kept, id)
			if _, exists := out[id]; exists {
				continue
			}
			pub := model.Publication{Type: kind, URL: url}
			if snip, ok := edge.Snippets[id]; ok {
				if snip.Sentence != "" {
					s := snip.Sentence
					pub.Snippet = &s
				}
				if snip.PublicationDate != "" {
					d := snip.PublicationDate
					pub.Pubdate = &d
				}
			}
			out[id] = pub
		}
		edge.Publications = kept
		edge.Snippets = nil
		edge.Qualifiers = nil
	}

	return out
}
