package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kgraph-hub/trapi-summary/internal/annotation"
)

func TestNodeRulesAggregateNamesAcrossAgents(t *testing.T) {
	acc := map[string]interface{}{}
	apply(acc, NodeRules.Build(map[string]interface{}{"name": "Acetaminophen"})...)
	apply(acc, NodeRules.Build(map[string]interface{}{"name": "Tylenol"})...)

	assert.Equal(t, []interface{}{"Acetaminophen", "Tylenol"}, acc["names"])
}

func TestNodeRulesDispatchAnnotation(t *testing.T) {
	ann := annotation.Annotation{
		"chembl": map[string]interface{}{"max_phase": 4, "availability_type": "2"},
		"unii":   map[string]interface{}{"ncit_description": "An analgesic."},
	}
	obj := map[string]interface{}{
		"attributes": []interface{}{
			map[string]interface{}{"attribute_type_id": AnnotationAttributeID, "value": ann},
		},
	}
	acc := apply(map[string]interface{}{}, NodeRules.Build(obj)...)
	assert.Equal(t, "An analgesic.", acc["description"])
	assert.Equal(t, 4, acc["fda_approval_status"])
	assert.Equal(t, "Over the counter", acc["otc_status"])
}

func TestEdgeRulesAggregatePublications(t *testing.T) {
	obj := map[string]interface{}{
		"attributes": []interface{}{
			map[string]interface{}{"attribute_type_id": PublicationsAttrID, "value": []interface{}{"PMID:1"}},
			map[string]interface{}{"attribute_type_id": PrimaryKnowledgeSourceID, "value": "infores:a"},
		},
	}
	acc := apply(map[string]interface{}{}, EdgeRules.Build(obj)...)
	assert.Equal(t, []interface{}{"PMID:1"}, acc["publications"])
	assert.Equal(t, []interface{}{"infores:a"}, acc["sources"])
}
