package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgraph-hub/trapi-summary/internal/annotation"
	"github.com/kgraph-hub/trapi-summary/internal/config"
	"github.com/kgraph-hub/trapi-summary/internal/model"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

// stubAnnotator is a fixed-table internal/external.AnnotationClient test
// double: it never touches the network, it just looks curies up in a map.
type stubAnnotator struct {
	byCurie map[string]annotation.Annotation
}

func (s stubAnnotator) Annotate(_ context.Context, curies []string) (map[string]annotation.Annotation, error) {
	out := make(map[string]annotation.Annotation, len(curies))
	for _, c := range curies {
		if a, ok := s.byCurie[c]; ok {
			out[c] = a
		}
	}
	return out, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		MaxHops:         3,
		IDPatterns:      map[string]string{"PMID:": "pubmed"},
		AraToInforesMap: map[string]string{"agentA": "infores:agent-a"},
		Server:          config.ServerConfig{ListenAddr: ":0", CacheSize: 16},
	}
}

func doSummarize(t *testing.T, srv *Server, body SummarizeRequest) (int, model.FinalSummary) {
	r := srv.SetupRouter()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/summarize", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var summary model.FinalSummary
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	}
	return w.Code, summary
}

func TestSummarizeTranslatesAras(t *testing.T) {
	srv, err := NewServer(testConfig(), nil)
	require.NoError(t, err)

	msg := trapi.Message{
		KnowledgeGraph: trapi.KnowledgeGraph{
			Nodes: map[string]trapi.KNode{
				"CHEBI:1": {Name: "acetaminophen"},
				"MONDO:1": {Name: "some disease"},
			},
			Edges: map[string]trapi.KEdge{
				"e1": {Subject: "CHEBI:1", Object: "MONDO:1", Predicate: "biolink:treats"},
			},
		},
		Results: []trapi.Result{{
			NodeBindings: map[string][]trapi.NodeBinding{
				trapi.SubjectBindingKey: {{ID: "CHEBI:1"}},
				trapi.ObjectBindingKey:  {{ID: "MONDO:1"}},
			},
			EdgeBindings: map[string][]trapi.NodeBinding{"e": {{ID: "e1"}}},
		}},
	}

	code, summary := doSummarize(t, srv, SummarizeRequest{
		Qid:     "Q1",
		Answers: []trapi.Answer{{Agent: "agentA", Message: msg}},
	})

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"infores:agent-a"}, summary.Meta.Aras)
}

func TestSummarizeEchoesQualifiers(t *testing.T) {
	srv, err := NewServer(testConfig(), nil)
	require.NoError(t, err)

	code, summary := doSummarize(t, srv, SummarizeRequest{
		Qid:                      "Q1",
		Answers:                  nil,
		ObjectAspectQualifier:    "activity",
		ObjectDirectionQualifier: "increased",
	})

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "activity", summary.Meta.ObjectAspectQualifier)
	assert.Equal(t, "increased", summary.Meta.ObjectDirectionQualifier)
}

func TestSummarizeRejectsMissingQid(t *testing.T) {
	srv, err := NewServer(testConfig(), nil)
	require.NoError(t, err)

	code, _ := doSummarize(t, srv, SummarizeRequest{Answers: nil})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSummarizeCachesRepeatedRequest(t *testing.T) {
	srv, err := NewServer(testConfig(), nil)
	require.NoError(t, err)

	req := SummarizeRequest{Qid: "Q1", Answers: nil}

	code1, first := doSummarize(t, srv, req)
	require.Equal(t, http.StatusOK, code1)
	assert.Equal(t, 1, srv.cache.Len())

	code2, second := doSummarize(t, srv, req)
	require.Equal(t, http.StatusOK, code2)
	assert.Equal(t, first, second)
}

func TestSummarizeFillsInMissingAnnotations(t *testing.T) {
	annotator := stubAnnotator{byCurie: map[string]annotation.Annotation{
		"CHEBI:1": {"chebi": map[string]interface{}{"definition": "a drug"}},
	}}
	srv, err := NewServer(testConfig(), annotator)
	require.NoError(t, err)

	msg := trapi.Message{
		KnowledgeGraph: trapi.KnowledgeGraph{
			Nodes: map[string]trapi.KNode{
				"CHEBI:1": {Name: "acetaminophen"},
				"MONDO:1": {Name: "some disease"},
			},
			Edges: map[string]trapi.KEdge{
				"e1": {Subject: "CHEBI:1", Object: "MONDO:1", Predicate: "biolink:treats"},
			},
		},
		Results: []trapi.Result{{
			NodeBindings: map[string][]trapi.NodeBinding{
				trapi.SubjectBindingKey: {{ID: "CHEBI:1"}},
				trapi.ObjectBindingKey:  {{ID: "MONDO:1"}},
			},
			EdgeBindings: map[string][]trapi.NodeBinding{"e": {{ID: "e1"}}},
		}},
	}

	code, summary := doSummarize(t, srv, SummarizeRequest{
		Qid:     "Q1",
		Answers: []trapi.Answer{{Agent: "agentA", Message: msg}},
	})

	require.Equal(t, http.StatusOK, code)
	node, ok := summary.Nodes["CHEBI:1"]
	require.True(t, ok)
	assert.Equal(t, "a drug", node.Description)
}
