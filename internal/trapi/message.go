// Package trapi holds the TRAPI wire types the pipeline consumes: a
// knowledge graph of nodes and edges, and a list of result bindings over
// that graph. Plain structs with json tags; no behavior lives here.
package trapi

// Attribute is a single TRAPI attribute entry on a node or edge.
type Attribute struct {
	AttributeTypeID string      `json:"attribute_type_id"`
	Value           interface{} `json:"value"`
}

// KNode is a node in a knowledge graph.
type KNode struct {
	Name       string      `json:"name"`
	Categories []string    `json:"categories,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Qualifier is one entry of a qualified edge's qualifier list.
type Qualifier struct {
	QualifierTypeID string `json:"qualifier_type_id"`
	QualifierValue  string `json:"qualifier_value"`
}

// KEdge is an edge in a knowledge graph.
type KEdge struct {
	Subject    string      `json:"subject"`
	Object     string      `json:"object"`
	Predicate  string      `json:"predicate"`
	Qualifiers []Qualifier `json:"qualifiers,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// KnowledgeGraph is the knowledge_graph section of a TRAPI message.
type KnowledgeGraph struct {
	Nodes map[string]KNode `json:"nodes"`
	Edges map[string]KEdge `json:"edges"`
}

// NodeBinding is one entry of a result's node_bindings or edge_bindings
// list (edge bindings reuse the same {id} shape TRAPI uses for nodes).
type NodeBinding struct {
	ID string `json:"id"`
}

// Result is one result entry of a TRAPI message: the node/edge bindings
// that realize the query graph for this particular answer, plus an
// optional per-agent normalized score.
type Result struct {
	NodeBindings    map[string][]NodeBinding `json:"node_bindings"`
	EdgeBindings    map[string][]NodeBinding `json:"edge_bindings"`
	NormalizedScore *float64                 `json:"normalized_score,omitempty"`
}

// Message is a single agent's full TRAPI message: the knowledge graph it
// built plus the results it extracted from that graph.
type Message struct {
	KnowledgeGraph KnowledgeGraph `json:"knowledge_graph"`
	Results        []Result       `json:"results"`
}

// Answer pairs an agent identifier with the TRAPI message it returned.
type Answer struct {
	Agent   string  `json:"agent"`
	Message Message `json:"message"`
}

// SubjectBindingKey and ObjectBindingKey are the fixed node_bindings keys
// an inferred drug/gene/chemical query uses: the chemical end of the path
// is always bound at "sn" (subject node), the disease/gene end at "on"
// (object node).
const (
	SubjectBindingKey = "sn"
	ObjectBindingKey  = "on"
)
