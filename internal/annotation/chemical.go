package annotation

import (
	"strconv"
	"strings"
)

// Names is the {commercial, generic} name set for a chemical annotation.
type Names struct {
	Commercial []string `json:"commercial"`
	Generic    []string `json:"generic"`
}

func chemicalNames(a Annotation) Names {
	names := Names{Commercial: []string{}, Generic: []string{}}
	seenCommercial := map[string]struct{}{}
	seenGeneric := map[string]struct{}{}

	for _, entry := range asList(a["ndc"]) {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if v, ok := str(m, "proprietaryname"); ok && v != "" {
			v = strings.ToLower(v)
			if _, dup := seenCommercial[v]; !dup {
				seenCommercial[v] = struct{}{}
				names.Commercial = append(names.Commercial, v)
			}
		}
		if v, ok := str(m, "nonproprietaryname"); ok && v != "" {
			v = strings.ToLower(v)
			if _, dup := seenGeneric[v]; !dup {
				seenGeneric[v] = struct{}{}
				names.Generic = append(names.Generic, v)
			}
		}
	}
	return names
}

func chemicalDescription(a Annotation) (string, bool) {
	if v, ok := str(section(a, "unii"), "ncit_description"); ok && v != "" {
		return v, true
	}
	if v, ok := str(section(a, "chebi"), "definition"); ok && v != "" {
		return v, true
	}
	return "", false
}

func chemicalFdaApproval(a Annotation) int {
	chembl := section(a, "chembl")
	if chembl == nil {
		return 0
	}
	switch v := chembl["max_phase"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func chemicalDrugIndications(a Annotation) []string {
	chembl := section(a, "chembl")
	if chembl == nil {
		return nil
	}
	var out []string
	for _, entry := range asList(chembl["drug_indications"]) {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if id, ok := str(m, "mesh_id"); ok && id != "" {
			out = append(out, id)
		}
	}
	return out
}

// otcLabels maps chembl's numeric availability_type to a human label.
var otcLabels = map[string]string{
	"2":  "Over the counter",
	"1":  "Prescription only",
	"0":  "Discontinued",
	"-2": "Withdrawn",
}

func chemicalOtc(a Annotation) string {
	chembl := section(a, "chembl")
	if chembl == nil {
		return "Other"
	}
	key := availabilityKey(chembl["availability_type"])
	if label, ok := otcLabels[key]; ok {
		return label
	}
	return "Other"
}

func availabilityKey(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.Itoa(int(t))
	default:
		return ""
	}
}
