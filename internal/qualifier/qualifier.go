// Package qualifier composes human-readable qualified predicate strings
// from a kedge's qualifier bag, in both forward and inverse form.
package qualifier

import (
	"strings"

	"github.com/kgraph-hub/trapi-summary/internal/biolink"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

type sidePiece struct {
	key    string
	prefix string
}

// sideOrder is the fixed concatenation order: direction, aspect, form or
// variant, part, derivative.
var sideOrder = []sidePiece{
	{"direction", ""},
	{"aspect", ""},
	{"form_or_variant", "of a "},
	{"part", "of the "},
	{"derivative", ""},
}

const qualifiedPredicateKey = "qualified_predicate"

// qualifierMap flattens a kedge's qualifier list into type_id -> value,
// the lookup table composeSide and Qualified read from. Qualifier type ids
// this package doesn't recognize are simply never looked up, so they're
// omitted rather than surfaced.
func qualifierMap(qs []trapi.Qualifier) map[string]string {
	m := make(map[string]string, len(qs))
	for _, q := range qs {
		m[q.QualifierTypeID] = q.QualifierValue
	}
	return m
}

// composeSide concatenates the side's ("subject" or "object") qualifier
// values in sideOrder, each preceded by its fixed prefix, space-joined.
func composeSide(side string, qm map[string]string) string {
	var pieces []string
	for _, sp := range sideOrder {
		v := qm[side+"_"+sp.key+"_qualifier"]
		if v == "" {
			continue
		}
		pieces = append(pieces, sp.prefix+v)
	}
	return strings.Join(pieces, " ")
}

// composeQualified assembles "{subjStr} {predicate} {objStr} of", with the
// " of" suffix attached only when objStr is non-empty.
func composeQualified(predicate, subjStr, objStr string) string {
	var pieces []string
	if subjStr != "" {
		pieces = append(pieces, subjStr)
	}
	pieces = append(pieces, predicate)
	if objStr != "" {
		pieces = append(pieces, objStr, "of")
	}
	return strings.Join(pieces, " ")
}

// Qualified composes edge's qualified predicate string. When inverted is
// true, the subject/object qualifier strings are swapped and the base
// predicate is inverted via biolink.InvertPredicate. An edge with no
// qualifiers and no qualified_predicate override just returns its (possibly
// inverted) raw predicate.
func Qualified(edge trapi.KEdge, inverted bool) string {
	if len(edge.Qualifiers) == 0 {
		if inverted {
			return biolink.InvertPredicate(edge.Predicate)
		}
		return edge.Predicate
	}

	qm := qualifierMap(edge.Qualifiers)
	basePredicate := edge.Predicate
	if qp := qm[qualifiedPredicateKey]; qp != "" {
		basePredicate = qp
	}

	subjStr := composeSide("subject", qm)
	objStr := composeSide("object", qm)

	if inverted {
		basePredicate = biolink.InvertPredicate(basePredicate)
		subjStr, objStr = objStr, subjStr
	}

	return composeQualified(basePredicate, subjStr, objStr)
}
