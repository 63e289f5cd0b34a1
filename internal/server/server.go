// Package server is the HTTP boundary wrapping internal/summarizer.Summarize:
// config-supplied defaults, request-id correlation, a process-lifetime
// response cache, and ara_to_infores_map translation.
package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/google/uuid"
	"github.com/kgraph-hub/trapi-summary/internal/config"
	"github.com/kgraph-hub/trapi-summary/internal/external"
	"github.com/kgraph-hub/trapi-summary/internal/model"
	"github.com/kgraph-hub/trapi-summary/internal/rules"
	"github.com/kgraph-hub/trapi-summary/internal/summarizer"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

type Server struct {
	cfg       *config.Config
	cache     *lru.Cache[string, model.FinalSummary]
	annotator external.AnnotationClient
}

// annotator may be nil; cfg.Server.CacheSize sizes the response cache.
func NewServer(cfg *config.Config, annotator external.AnnotationClient) (*Server, error) {
	cache, err := lru.New[string, model.FinalSummary](cfg.Server.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, cache: cache, annotator: annotator}, nil
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(requestID())
	r.POST("/summarize", s.Summarize)
	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("request_id", uuid.NewString())
		c.Next()
	}
}

type SummarizeRequest struct {
	Qid                      string         `json:"qid"`
	MaxHops                  int            `json:"max_hops,omitempty"`
	Answers                  []trapi.Answer `json:"answers"`
	ObjectAspectQualifier    string         `json:"object_aspect_qualifier,omitempty"`
	ObjectDirectionQualifier string         `json:"object_direction_qualifier,omitempty"`
}

func (s *Server) Summarize(c *gin.Context) {
	requestID, _ := c.Get("request_id")

	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[%v] invalid summarize request: %v", requestID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	maxHops := req.MaxHops
	if maxHops == 0 {
		maxHops = s.cfg.MaxHops
	}

	cacheKey, ok := hashRequest(req)
	if ok {
		if cached, hit := s.cache.Get(cacheKey); hit {
			c.JSON(http.StatusOK, s.translate(echoQualifiers(cached, req)))
			return
		}
	}

	req.Answers = s.annotate(c.Request.Context(), req.Answers)

	summary, err := summarizer.SummarizeWithIDPatterns(c.Request.Context(), req.Qid, req.Answers, maxHops, s.cfg.IDPatterns)
	if err != nil {
		log.Printf("[%v] summarize failed: %v", requestID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ok {
		s.cache.Add(cacheKey, summary)
	}

	c.JSON(http.StatusOK, s.translate(echoQualifiers(summary, req)))
}

// applied after the cache lookup so a cache hit still echoes this
// request's qualifiers, not the ones that originally populated the entry.
func echoQualifiers(summary model.FinalSummary, req SummarizeRequest) model.FinalSummary {
	summary.Meta.ObjectAspectQualifier = req.ObjectAspectQualifier
	summary.Meta.ObjectDirectionQualifier = req.ObjectDirectionQualifier
	return summary
}

func (s *Server) translate(summary model.FinalSummary) model.FinalSummary {
	if len(s.cfg.AraToInforesMap) == 0 {
		return summary
	}
	translated := make([]string, len(summary.Meta.Aras))
	for i, agent := range summary.Meta.Aras {
		if infores, ok := s.cfg.AraToInforesMap[agent]; ok {
			translated[i] = infores
		} else {
			translated[i] = agent
		}
	}
	summary.Meta.Aras = translated
	return summary
}

// ok is false if req doesn't marshal; caller skips caching rather than
// failing the request over it.
func hashRequest(req SummarizeRequest) (string, bool) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), true
}

// a nil annotator, or one that errors, leaves answers untouched.
func (s *Server) annotate(ctx context.Context, answers []trapi.Answer) []trapi.Answer {
	if s.annotator == nil {
		return answers
	}

	pending := map[string]struct{}{}
	for _, a := range answers {
		for curie, node := range a.Message.KnowledgeGraph.Nodes {
			if !hasAnnotationAttribute(node) {
				pending[curie] = struct{}{}
			}
		}
	}
	if len(pending) == 0 {
		return answers
	}

	curies := make([]string, 0, len(pending))
	for curie := range pending {
		curies = append(curies, curie)
	}

	annotations, err := s.annotator.Annotate(ctx, curies)
	if err != nil {
		log.Printf("annotation lookup failed: %v", err)
		return answers
	}

	for i := range answers {
		for curie, node := range answers[i].Message.KnowledgeGraph.Nodes {
			if hasAnnotationAttribute(node) {
				continue
			}
			a, ok := annotations[curie]
			if !ok {
				continue
			}
			node.Attributes = append(node.Attributes, trapi.Attribute{
				AttributeTypeID: rules.AnnotationAttributeID,
				Value:           a,
			})
			answers[i].Message.KnowledgeGraph.Nodes[curie] = node
		}
	}
	return answers
}

func hasAnnotationAttribute(node trapi.KNode) bool {
	for _, attr := range node.Attributes {
		if attr.AttributeTypeID == rules.AnnotationAttributeID {
			return true
		}
	}
	return false
}
