package annotation

import "strings"

func diseaseDescription(a Annotation) (string, bool) {
	def, ok := str(section(a, "disease_ontology"), "def")
	if !ok {
		return "", false
	}
	if i := strings.IndexByte(def, '['); i >= 0 {
		def = def[:i]
	}
	return strings.TrimSpace(def), true
}

// diseaseMeshCuries collects MESH xrefs from mondo.xrefs.mesh and
// disease_ontology.xrefs.mesh, in that order, prefixing each with "MESH:".
// Missing sections are skipped, not errors.
func diseaseMeshCuries(a Annotation) []string {
	var out []string
	for _, source := range []string{"mondo", "disease_ontology"} {
		xrefs := section(section(a, source), "xrefs")
		if xrefs == nil {
			continue
		}
		for _, v := range asList(xrefs["mesh"]) {
			id, ok := v.(string)
			if !ok || id == "" {
				continue
			}
			out = append(out, "MESH:"+id)
		}
	}
	return out
}

// asList coerces a value that may be a scalar, a []interface{}, or nil into
// a []interface{}; nil yields a nil slice, which callers can still range
// over unconditionally.
func asList(v interface{}) []interface{} {
	if v == nil {
		return nil
	}
	if list, ok := v.([]interface{}); ok {
		return list
	}
	return []interface{}{v}
}
