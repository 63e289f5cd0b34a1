// Package biolink provides the small set of pure helpers the rest of the
// pipeline uses to work with biolink CURIEs and predicates: tagging and
// untagging the "biolink:" prefix, inverting a predicate, and checking
// whether a predicate is one the pipeline recognizes.
package biolink

import "strings"

const prefix = "biolink:"

// predicates is the set of biolink predicates the pipeline recognizes on
// knowledge-graph edges. Loaded once at package init; treated as immutable
// reference data for the lifetime of the process.
var predicates = map[string]struct{}{
	"treats":                          {},
	"treated_by":                      {},
	"affects":                         {},
	"affected_by":                     {},
	"causes":                          {},
	"caused_by":                       {},
	"contributes_to":                  {},
	"contributed_to_by":               {},
	"ameliorates":                     {},
	"ameliorated_by":                  {},
	"exacerbates":                     {},
	"exacerbated_by":                  {},
	"prevents":                        {},
	"prevented_by":                    {},
	"predisposes_to_condition":        {},
	"predisposed_to_by":               {},
	"disrupts":                        {},
	"disrupted_by":                    {},
	"regulates":                       {},
	"regulated_by":                    {},
	"positively_regulates":            {},
	"positively_regulated_by":         {},
	"negatively_regulates":            {},
	"negatively_regulated_by":         {},
	"gene_associated_with_condition":  {},
	"condition_associated_with_gene":  {},
	"correlated_with":                 {},
	"has_adverse_event":               {},
	"adverse_event_of":                {},
	"interacts_with":                  {},
	"related_to":                      {},
	"coexists_with":                   {},
	"genetically_interacts_with":      {},
	"biomarker_for":                   {},
	"has_biomarker":                   {},
}

// inverses maps a predicate to its registered inverse. A predicate that is
// its own inverse (symmetric) either appears mapped to itself or is simply
// absent; InvertPredicate falls back to returning the input unchanged.
var inverses = map[string]string{
	"treats":                         "treated_by",
	"treated_by":                     "treats",
	"affects":                        "affected_by",
	"affected_by":                    "affects",
	"causes":                         "caused_by",
	"caused_by":                      "causes",
	"contributes_to":                 "contributed_to_by",
	"contributed_to_by":              "contributes_to",
	"ameliorates":                    "ameliorated_by",
	"ameliorated_by":                 "ameliorates",
	"exacerbates":                    "exacerbated_by",
	"exacerbated_by":                 "exacerbates",
	"prevents":                       "prevented_by",
	"prevented_by":                   "prevents",
	"predisposes_to_condition":       "predisposed_to_by",
	"predisposed_to_by":              "predisposes_to_condition",
	"disrupts":                       "disrupted_by",
	"disrupted_by":                   "disrupts",
	"regulates":                      "regulated_by",
	"regulated_by":                   "regulates",
	"positively_regulates":           "positively_regulated_by",
	"positively_regulated_by":        "positively_regulates",
	"negatively_regulates":           "negatively_regulated_by",
	"negatively_regulated_by":        "negatively_regulates",
	"gene_associated_with_condition": "condition_associated_with_gene",
	"condition_associated_with_gene": "gene_associated_with_condition",
	"has_adverse_event":              "adverse_event_of",
	"adverse_event_of":               "has_adverse_event",
	"biomarker_for":                  "has_biomarker",
	"has_biomarker":                  "biomarker_for",
	// symmetric predicates invert to themselves
	"interacts_with":             "interacts_with",
	"related_to":                 "related_to",
	"coexists_with":              "coexists_with",
	"genetically_interacts_with": "genetically_interacts_with",
	"correlated_with":            "correlated_with",
}

// TagBiolink prefixes name with "biolink:" unless it already carries the
// prefix.
func TagBiolink(name string) string {
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}

// SanitizeBiolinkElement strips a leading "biolink:" prefix and normalizes
// case and internal spacing to the canonical snake_case form predicates and
// categories are stored under.
func SanitizeBiolinkElement(s string) string {
	s = strings.TrimPrefix(s, prefix)
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// IsPredicate reports whether p (with or without the "biolink:" prefix) is
// in the recognized predicate set.
func IsPredicate(p string) bool {
	_, ok := predicates[SanitizeBiolinkElement(p)]
	return ok
}

// InvertPredicate returns the registered inverse of p, or p unchanged if no
// inverse is registered (symmetric predicate, or an unknown predicate;
// callers are expected to have already logged the latter upstream).
func InvertPredicate(p string) string {
	bare := SanitizeBiolinkElement(p)
	tagged := strings.HasPrefix(p, prefix)
	inv, ok := inverses[bare]
	if !ok {
		return p
	}
	if tagged {
		return TagBiolink(inv)
	}
	return inv
}
