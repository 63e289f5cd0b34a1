package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgraph-hub/trapi-summary/internal/model"
	"github.com/kgraph-hub/trapi-summary/internal/rules"
)

func TestMergeEmptyFragments(t *testing.T) {
	merger := NewMerger(nil)
	summary := merger.Merge("Q1", nil)

	assert.Equal(t, "Q1", summary.Meta.Qid)
	assert.Empty(t, summary.Meta.Aras)
	assert.Empty(t, summary.Results)
	assert.Empty(t, summary.Paths)
	assert.Empty(t, summary.Nodes)
	assert.Empty(t, summary.Edges)
	assert.Empty(t, summary.Publications)
}

func TestMergeSingleDirectEdge(t *testing.T) {
	nameTransform := rules.NodeRules.Build(map[string]interface{}{"name": "acetaminophen"})
	fallbackTransform := rules.NodeRules.Build(map[string]interface{}{})
	edgeTransform := rules.EdgeRules.Build(map[string]interface{}{})

	score := 0.5
	fragment := model.SummaryFragment{
		Paths: [][]string{{"CHEBI:1", "biolink:treats", "MONDO:1"}},
		Nodes: []model.FragmentNode{
			{Key: "CHEBI:1", Transforms: nameTransform},
			{Key: "MONDO:1", Transforms: fallbackTransform},
		},
		Edges: []model.FragmentEdge{
			{
				Key:           "edgekey",
				Subject:       "CHEBI:1",
				Object:        "MONDO:1",
				Predicate:     "biolink:treats",
				BasePredicate: "biolink:treats",
				Qualifiers:    nil,
				Transforms:    edgeTransform,
			},
		},
		Scores: map[string][]float64{"CHEBI:1": {score}},
	}

	merger := NewMerger(nil)
	summary := merger.Merge("Q1", []model.CondensedSummary{{Agent: "agentA", Fragment: fragment}})

	require.Len(t, summary.Results, 1)
	assert.Equal(t, 0.5, summary.Results[0].Score)
	assert.Equal(t, "CHEBI:1", summary.Results[0].Subject)
	assert.Equal(t, "MONDO:1", summary.Results[0].Object)
	assert.Equal(t, "acetaminophen", summary.Results[0].DrugName)

	require.Len(t, summary.Paths, 1)

	// forward + synthesized inverse
	assert.Len(t, summary.Edges, 2)

	node := summary.Nodes["CHEBI:1"]
	require.NotNil(t, node)
	assert.Equal(t, []string{"acetaminophen"}, node.Names)
	assert.Contains(t, node.Aras, "agentA")

	fallbackNode := summary.Nodes["MONDO:1"]
	require.NotNil(t, fallbackNode)
	assert.Equal(t, []string{"MONDO:1"}, fallbackNode.Names)
	assert.Equal(t, []string{"MONDO:1"}, fallbackNode.Curies)
}

func TestMergeDeduplicatesRepeatedAgent(t *testing.T) {
	nodeTransforms := rules.NodeRules.Build(map[string]interface{}{})
	edgeTransforms := rules.EdgeRules.Build(map[string]interface{}{})
	fragment := model.SummaryFragment{
		Paths: [][]string{{"CHEBI:1", "biolink:treats", "MONDO:1"}},
		Nodes: []model.FragmentNode{
			{Key: "CHEBI:1", Transforms: nodeTransforms},
			{Key: "MONDO:1", Transforms: nodeTransforms},
		},
		Edges: []model.FragmentEdge{
			{Key: "edgekey", Subject: "CHEBI:1", Object: "MONDO:1", Predicate: "biolink:treats", BasePredicate: "biolink:treats", Transforms: edgeTransforms},
		},
		Scores: map[string][]float64{"CHEBI:1": {1.0}},
	}

	merger := NewMerger(nil)
	summary := merger.Merge("Q1", []model.CondensedSummary{
		{Agent: "agentA", Fragment: fragment},
		{Agent: "agentA", Fragment: fragment},
	})

	assert.Equal(t, []string{"agentA"}, summary.Meta.Aras)
	assert.Equal(t, []string{"agentA"}, summary.Nodes["CHEBI:1"].Aras)
}

func TestMergeUnionsPublicationsAcrossAgents(t *testing.T) {
	nodeTransforms := rules.NodeRules.Build(map[string]interface{}{})
	edgeTransformsA := rules.EdgeRules.Build(map[string]interface{}{
		"attributes": []interface{}{
			map[string]interface{}{"attribute_type_id": "biolink:publications", "value": "PMID:1"},
		},
	})
	edgeTransformsB := rules.EdgeRules.Build(map[string]interface{}{
		"attributes": []interface{}{
			map[string]interface{}{"attribute_type_id": "biolink:publications", "value": "PMID:2"},
		},
	})

	fragmentFor := func(transforms []rules.Transform) model.SummaryFragment {
		return model.SummaryFragment{
			Paths: [][]string{{"CHEBI:1", "biolink:treats", "MONDO:1"}},
			Nodes: []model.FragmentNode{
				{Key: "CHEBI:1", Transforms: nodeTransforms},
				{Key: "MONDO:1", Transforms: nodeTransforms},
			},
			Edges: []model.FragmentEdge{
				{Key: "k1", Subject: "CHEBI:1", Object: "MONDO:1", Predicate: "biolink:treats", BasePredicate: "biolink:treats", Transforms: transforms},
			},
			Scores: map[string][]float64{"CHEBI:1": {1.0}},
		}
	}

	merger := NewMerger(nil)
	summary := merger.Merge("Q1", []model.CondensedSummary{
		{Agent: "agentA", Fragment: fragmentFor(edgeTransformsA)},
		{Agent: "agentB", Fragment: fragmentFor(edgeTransformsB)},
	})

	require.Contains(t, summary.Publications, "PMID:1")
	require.Contains(t, summary.Publications, "PMID:2")
}

func TestMergeInvertsEdgePredicate(t *testing.T) {
	nodeTransforms := rules.NodeRules.Build(map[string]interface{}{})
	edgeTransforms := rules.EdgeRules.Build(map[string]interface{}{})
	fragment := model.SummaryFragment{
		Paths: [][]string{{"CHEBI:1", "biolink:treats", "MONDO:1"}},
		Nodes: []model.FragmentNode{
			{Key: "CHEBI:1", Transforms: nodeTransforms},
			{Key: "MONDO:1", Transforms: nodeTransforms},
		},
		Edges: []model.FragmentEdge{
			{Key: "k1", Subject: "CHEBI:1", Object: "MONDO:1", Predicate: "biolink:treats", BasePredicate: "biolink:treats", Transforms: edgeTransforms},
		},
		Scores: map[string][]float64{"CHEBI:1": {1.0}},
	}
	merger := NewMerger(nil)
	summary := merger.Merge("Q1", []model.CondensedSummary{{Agent: "agentA", Fragment: fragment}})

	var found bool
	for _, e := range summary.Edges {
		if e.Subject == "MONDO:1" && e.Object == "CHEBI:1" {
			found = true
			assert.Equal(t, "biolink:treated_by", e.Predicate)
		}
	}
	assert.True(t, found)
}
