package fragment

import "github.com/kgraph-hub/trapi-summary/internal/trapi"

func nodeObj(n trapi.KNode) map[string]interface{} {
	return map[string]interface{}{
		"name":       n.Name,
		"categories": stringsToInterfaces(n.Categories),
		"attributes": attributesToList(n.Attributes),
	}
}

func edgeObj(e trapi.KEdge) map[string]interface{} {
	return map[string]interface{}{
		"attributes": attributesToList(e.Attributes),
	}
}

func attributesToList(attrs []trapi.Attribute) []interface{} {
	out := make([]interface{}, len(attrs))
	for i, a := range attrs {
		out[i] = map[string]interface{}{
			"attribute_type_id": a.AttributeTypeID,
			"value":             a.Value,
		}
	}
	return out
}

func stringsToInterfaces(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
