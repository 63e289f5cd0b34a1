// Package external declares the boundary interfaces for the collaborators
// the core summarizer never calls directly: the annotation service, the
// ARS polling client, the query-graph builder, and the evidence-expansion
// service. internal/server takes an AnnotationClient and uses it to fill
// in missing node annotations before summarizing; the rest have no
// implementation in this repository, the real ARS/query-graph/evidence
// collaborators are out of scope.
//
// internal/summarizer.Summarize depends on none of these directly; they
// exist as the documented seam between the core pipeline and whatever
// front end calls it.
package external

import (
	"context"

	"github.com/kgraph-hub/trapi-summary/internal/annotation"
	"github.com/kgraph-hub/trapi-summary/internal/model"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

// AnnotationClient is the out-of-scope node-annotation service: given a
// batch of curies, return their annotation blobs.
type AnnotationClient = annotation.Client

// ARSClient polls the Automated Reasoning System for an inferred query's
// answers, identified by its pk (the ARS record id).
type ARSClient interface {
	Poll(ctx context.Context, pk string) ([]trapi.Answer, bool, error)
}

// QueryGraphBuilder constructs the TRAPI query graph/message for an
// inferred query type and seed curie before it is sent to agents.
type QueryGraphBuilder interface {
	Build(ctx context.Context, queryType, curie string) (trapi.Message, error)
}

// EvidenceExpander resolves a single publication id to its full
// publication record (title, abstract snippet, date) beyond what
// internal/publication's pattern-matching default can produce.
type EvidenceExpander interface {
	Expand(ctx context.Context, pubID string) (model.Publication, error)
}
