package merge

import (
	"strings"

	"github.com/kgraph-hub/trapi-summary/internal/model"
	"github.com/kgraph-hub/trapi-summary/internal/trapi"
)

type edgeIdentity struct {
	Subject       string
	Object        string
	Predicate     string
	BasePredicate string
	Inverted      bool
	Qualifiers    []trapi.Qualifier
}

func nodeFromAcc(acc map[string]interface{}) *model.SummaryNode {
	n := &model.SummaryNode{
		Names:           toStringSlice(acc["names"]),
		Curies:          toStringSlice(acc["curies"]),
		Categories:      toStringSlice(acc["categories"]),
		Aras:            toStringSlice(acc["aras"]),
		Description:     toString(acc["description"]),
		Otc:             toString(acc["otc_status"]),
		Species:         toString(acc["species"]),
		DrugIndications: toStringSlice(acc["drug_indications"]),
	}
	if v, ok := acc["fda_approval_status"]; ok && v != nil {
		phase := toInt(v)
		n.FdaApproval = &phase
	}
	if rolesRaw, ok := acc["chebi_roles"].([]interface{}); ok {
		for _, r := range rolesRaw {
			m, ok := r.(map[string]interface{})
			if !ok {
				continue
			}
			n.ChebiRoles = append(n.ChebiRoles, model.Role{ID: toString(m["id"]), Name: toString(m["name"])})
		}
	}
	return n
}

func edgeFromAcc(id edgeIdentity, acc map[string]interface{}) *model.SummaryEdge {
	return &model.SummaryEdge{
		Subject:      id.Subject,
		Object:       id.Object,
		Predicate:    id.Predicate,
		Aras:         toStringSlice(acc["aras"]),
		Publications: toStringSlice(acc["publications"]),
		Sources:      toStringSlice(acc["sources"]),
		Snippets:     snippetsFromAcc(acc["snippets"]),
	}
}

func snippetsFromAcc(v interface{}) map[string]model.Snippet {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]model.Snippet, len(m))
	for id, raw := range m {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		out[id] = model.Snippet{
			Sentence:        toString(entry["sentence"]),
			PublicationDate: toString(entry["publication date"]),
		}
	}
	return out
}

func dedupeNode(n *model.SummaryNode) {
	n.Names = dedupeStrings(n.Names)
	n.Curies = dedupeStrings(n.Curies)
	n.Categories = dedupeStrings(n.Categories)
	n.Aras = dedupeStrings(n.Aras)
	n.DrugIndications = dedupeStrings(n.DrugIndications)
	n.ChebiRoles = dedupeRoles(n.ChebiRoles)
}

func dedupeEdge(e *model.SummaryEdge) {
	e.Aras = dedupeStrings(e.Aras)
	e.Publications = dedupeStrings(e.Publications)
	e.Sources = dedupeStrings(e.Sources)
}

func dedupeRoles(roles []model.Role) []model.Role {
	seen := map[string]struct{}{}
	var out []model.Role
	for _, r := range roles {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}

func dedupeStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func toStringSlice(v interface{}) []string {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func toInt(v interface{}) int {
	switch t := v.(type) {
	case int:
		return t
	case int64:
		return int(t)
	case float64:
		return int(t)
	default:
		return 0
	}
}
