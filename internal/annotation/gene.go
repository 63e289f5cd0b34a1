package annotation

import "strconv"

// speciesByTaxon is the fixed taxid -> species name map; unrecognized
// taxa return ("", false).
var speciesByTaxon = map[string]string{
	"9606": "Human",
}

func geneDescription(a Annotation) (string, bool) {
	v, ok := a["summary"].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func geneSpecies(a Annotation) (string, bool) {
	taxid := taxonKey(a["taxid"])
	if taxid == "" {
		return "", false
	}
	name, ok := speciesByTaxon[taxid]
	return name, ok
}

func taxonKey(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.Itoa(int(t))
	default:
		return ""
	}
}
