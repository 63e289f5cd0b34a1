package rules

// Attribute type ids edge rules read off a kedge. PublicationsAttrID and
// SnippetsAttrID feed internal/publication; the two knowledge-source ids
// are renamed into a single flat "sources" list.
const (
	PublicationsAttrID          = "biolink:publications"
	SnippetsAttrID              = "biolink:publication_snippets"
	PrimaryKnowledgeSourceID    = "biolink:primary_knowledge_source"
	AggregatorKnowledgeSourceID = "biolink:aggregator_knowledge_source"
)

// EdgeRules is the fixed rule set the fragment producer runs over every
// kedge: aggregate publication ids, pass through the raw snippets map, and
// flatten both knowledge-source attribute kinds into one sources list.
var EdgeRules = RuleSet{
	AggregateAttributes([]string{PublicationsAttrID}, "publications"),
	AggregateAttributes([]string{PrimaryKnowledgeSourceID, AggregatorKnowledgeSourceID}, "sources"),
	RenameAndTransformAttribute(SnippetsAttrID, "snippets", func(v interface{}) interface{} { return v }),
}
