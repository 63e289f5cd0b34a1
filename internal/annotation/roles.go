package annotation

// RoleLookup resolves a CHEBI role id to a human-readable high-level role
// name. A miss (unrecognized role id) returns ("", false) and the role is
// dropped.
type RoleLookup func(roleID string) (name string, ok bool)

// roleNamesByID is the small static CHEBI role table backing
// DefaultRoleLookup. Real role resolution would hit the CHEBI ontology
// service; this covers the handful of high-level roles the pipeline's own
// tests and demo CLI exercise.
var roleNamesByID = map[string]string{
	"CHEBI:35610": "agonist",
	"CHEBI:35222": "antagonist",
	"CHEBI:38161": "anti-inflammatory agent",
	"CHEBI:23888": "drug",
	"CHEBI:35471": "antineoplastic agent",
	"CHEBI:35480": "antidepressant",
	"CHEBI:35209": "pharmaceutical",
}

// DefaultRoleLookup is the pipeline's built-in RoleLookup.
func DefaultRoleLookup(roleID string) (string, bool) {
	name, ok := roleNamesByID[roleID]
	return name, ok
}

// Role is a single recognized CHEBI high-level role.
type Role struct {
	ID   string
	Name string
}

func chemicalChebiRoles(a Annotation, lookup RoleLookup) []Role {
	chebi := section(a, "chebi")
	if chebi == nil {
		return nil
	}
	rel := section(chebi, "relationship")
	if rel == nil {
		return nil
	}
	var out []Role
	for _, v := range asList(rel["has_role"]) {
		id, ok := v.(string)
		if !ok || id == "" {
			continue
		}
		name, ok := lookup(id)
		if !ok {
			continue
		}
		out = append(out, Role{ID: id, Name: name})
	}
	return out
}
