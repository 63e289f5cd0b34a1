// Package annotation classifies an opaque, semi-structured node annotation
// record (as returned by the out-of-scope annotation service) and exposes
// pure per-class field extractors. The classifier itself never calls the
// network; it only inspects whatever map it is handed.
package annotation

import "context"

// Annotation is an opaque semi-structured record keyed by source, e.g.
// {"mondo": {...}, "disease_ontology": {...}, "chembl": {...}}.
type Annotation map[string]interface{}

// Class is the coarse classification of an annotation record.
type Class int

const (
	ClassUnknown Class = iota
	ClassDisease
	ClassChemical
	ClassGene
)

// Classify dispatches on the presence of a few key fields: disease_ontology
// means disease; any of chebi/chembl/ndc means chemical; symbol means gene.
func Classify(a Annotation) Class {
	if _, ok := a["disease_ontology"]; ok {
		return ClassDisease
	}
	if hasAny(a, "chebi", "chembl", "ndc") {
		return ClassChemical
	}
	if _, ok := a["symbol"]; ok {
		return ClassGene
	}
	return ClassUnknown
}

func hasAny(a Annotation, keys ...string) bool {
	for _, k := range keys {
		if _, ok := a[k]; ok {
			return true
		}
	}
	return false
}

// Client is the out-of-scope annotation service boundary. The core
// summarizer never calls this; it is used by front-end plumbing only,
// declared here purely as the documented seam.
type Client interface {
	Annotate(ctx context.Context, curies []string) (map[string]Annotation, error)
}

func section(a Annotation, key string) map[string]interface{} {
	m, _ := a[key].(map[string]interface{})
	return m
}

func str(m map[string]interface{}, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	s, ok := m[key].(string)
	return s, ok
}
