// Package model holds the summary-domain types the merge pipeline produces:
// summary nodes/edges, paths, results, publications, and the final summary
// object. Plain structs with json tags; no behavior lives here.
package model

import (
	"github.com/kgraph-hub/trapi-summary/internal/rules"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

// SummaryNode is one entry of the final summary's nodes map.
type SummaryNode struct {
	Names      []string `json:"names"`
	Curies     []string `json:"curies"`
	Categories []string `json:"categories,omitempty"`
	Aras       []string `json:"aras"`

	// Annotation-derived fields populated by node rules (internal/rules).
	Description     string   `json:"description,omitempty"`
	FdaApproval     *int     `json:"fda_approval_status,omitempty"`
	ChebiRoles      []Role   `json:"chebi_roles,omitempty"`
	DrugIndications []string `json:"drug_indications,omitempty"`
	Otc             string   `json:"otc_status,omitempty"`
	Species         string   `json:"species,omitempty"`
}

// Role is a CHEBI high-level role, e.g. {id: "CHEBI:35610", name: "agonist"}.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SummaryEdge is one entry of the final summary's edges map, keyed by its
// qualified-predicate path key.
type SummaryEdge struct {
	Subject     string      `json:"subject"`
	Object      string      `json:"object"`
	Predicate   string      `json:"predicate"`
	Qualifiers  interface{} `json:"qualifiers,omitempty"`
	Aras        []string    `json:"aras"`
	Publications []string   `json:"publications,omitempty"`
	Sources     []string    `json:"sources,omitempty"`

	// Snippets is populated by edge rules and consumed (then dropped) by
	// the publication splicer.
	Snippets map[string]Snippet `json:"-"`
}

// Snippet is one entry of an edge's snippets attribute.
type Snippet struct {
	Sentence        string `json:"sentence"`
	PublicationDate string `json:"publication date"`
}

// Publication is one entry of the final summary's publications map.
type Publication struct {
	Type    string  `json:"type"`
	URL     string  `json:"url"`
	Snippet *string `json:"snippet"`
	Pubdate *string `json:"pubdate"`
}

// PathEntry is one entry of the final summary's paths map.
type PathEntry struct {
	Subgraph []string `json:"subgraph"`
	Aras     []string `json:"aras"`
}

// ResultEntry is one entry of the final summary's results list.
type ResultEntry struct {
	Subject  string   `json:"subject"`
	Object   string   `json:"object"`
	DrugName string   `json:"drug_name"`
	Paths    []string `json:"paths"`
	Score    float64  `json:"score"`
}

// Meta is the final summary's meta block.
type Meta struct {
	Qid                      string   `json:"qid"`
	Aras                     []string `json:"aras"`
	ObjectAspectQualifier    string   `json:"object_aspect_qualifier,omitempty"`
	ObjectDirectionQualifier string   `json:"object_direction_qualifier,omitempty"`
}

// FinalSummary is the pipeline's output object.
type FinalSummary struct {
	Meta         Meta                   `json:"meta"`
	Results      []ResultEntry          `json:"results"`
	Paths        map[string]*PathEntry  `json:"paths"`
	Nodes        map[string]*SummaryNode `json:"nodes"`
	Edges        map[string]*SummaryEdge `json:"edges"`
	Publications map[string]Publication `json:"publications"`
}

// SummaryFragment is a single agent's intermediate contribution to the
// final summary, produced by internal/fragment and consumed by
// internal/merge.
type SummaryFragment struct {
	Paths [][]string // flattened node/edge/node/.../node sequences
	Nodes []FragmentNode
	Edges []FragmentEdge
	// Scores maps a canonical drug curie to the normalized_score of each
	// result it was the subject of (one entry appended per result).
	Scores map[string][]float64
}

// FragmentNode carries one canonicalized rnode plus the transforms its
// contributing knode produced.
type FragmentNode struct {
	Key        string
	Transforms []rules.Transform
}

// FragmentEdge carries one qualified-predicate redge key plus the
// transforms its contributing kedge produced. BasePredicate and Qualifiers
// preserve the raw kedge fields (pre-composition) so the merger can
// synthesize the structurally-mirrored inverse edge without re-reading the
// original TRAPI message.
type FragmentEdge struct {
	Key           string
	Subject       string
	Object        string
	Predicate     string
	BasePredicate string
	Inverted      bool
	Qualifiers    []trapi.Qualifier
	Transforms    []rules.Transform
}

// CondensedSummary pairs an agent identifier with the fragment it
// contributed, in the order fragments should be folded (agent-insertion
// order; determinism depends on preserving this order).
type CondensedSummary struct {
	Agent    string
	Fragment SummaryFragment
}
