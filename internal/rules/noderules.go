package rules

import "github.com/kgraph-hub/trapi-summary/internal/annotation"

// AnnotationAttributeID is the attribute_type_id this pipeline uses to
// carry an opaque annotation.Annotation record on a knode, populated by
// the out-of-scope front-end annotation lookup before the node ever
// reaches the core. Node rules never call the annotation service
// themselves; they only read whatever record already rode in on the
// attribute.
const AnnotationAttributeID = "biolink:annotation"

// NodeRules is the fixed rule set the fragment producer runs over every
// knode: accumulate name/categories across agents, and dispatch the
// annotation-derived scalar and list fields through internal/annotation.
var NodeRules = RuleSet{
	AggregateProperty("name", "names"),
	AggregateProperty("categories", "categories"),

	RenameAndTransformAttribute(AnnotationAttributeID, "description", func(v interface{}) interface{} {
		d, ok := annotation.GetDescription(asAnnotation(v))
		if !ok {
			return nil
		}
		return d
	}),
	RenameAndTransformAttribute(AnnotationAttributeID, "curies", func(v interface{}) interface{} {
		return toInterfaceSlice(annotation.GetCuries(asAnnotation(v)))
	}),
	RenameAndTransformAttribute(AnnotationAttributeID, "fda_approval_status", func(v interface{}) interface{} {
		phase := annotation.GetFdaApproval(asAnnotation(v))
		if phase == nil {
			return nil
		}
		return *phase
	}),
	RenameAndTransformAttribute(AnnotationAttributeID, "otc_status", func(v interface{}) interface{} {
		otc := annotation.GetOtc(asAnnotation(v))
		if otc == "" {
			return nil
		}
		return otc
	}),
	RenameAndTransformAttribute(AnnotationAttributeID, "drug_indications", func(v interface{}) interface{} {
		return toInterfaceSlice(annotation.GetDrugIndications(asAnnotation(v)))
	}),
	RenameAndTransformAttribute(AnnotationAttributeID, "species", func(v interface{}) interface{} {
		species, ok := annotation.GetSpecies(asAnnotation(v))
		if !ok {
			return nil
		}
		return species
	}),
	RenameAndTransformAttribute(AnnotationAttributeID, "chebi_roles", func(v interface{}) interface{} {
		roles := annotation.GetChebiRoles(asAnnotation(v), annotation.DefaultRoleLookup)
		out := make([]interface{}, len(roles))
		for i, r := range roles {
			out[i] = map[string]interface{}{"id": r.ID, "name": r.Name}
		}
		return out
	}),
}

func asAnnotation(v interface{}) annotation.Annotation {
	if a, ok := v.(annotation.Annotation); ok {
		return a
	}
	if m, ok := v.(map[string]interface{}); ok {
		return annotation.Annotation(m)
	}
	return nil
}

func toInterfaceSlice(ss []string) interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
