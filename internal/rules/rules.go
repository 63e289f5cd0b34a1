// Package rules implements the attribute-rule DSL: composable "mapping
// rules" over a TRAPI node/edge represented as a plain map, each producing
// a Transform that mutates a shared accumulator. Rules are pure in obj;
// only the returned Transform touches acc, and only once per application,
// matching the fold-many-fragments-into-one-accumulator shape
// internal/merge drives.
package rules

import "strings"

// Transform mutates an accumulator map in place, writing or extending one
// field.
type Transform func(acc map[string]interface{})

// Rule derives a Transform from a source object. A Rule may return nil to
// contribute nothing (e.g. renameAndTransformAttribute with no matching
// attribute).
type Rule func(obj map[string]interface{}) Transform

// RuleSet is an ordered list of rules applied to the same source object.
type RuleSet []Rule

// Build runs every rule in rs against obj and collects the non-nil
// transforms, in rule order.
func (rs RuleSet) Build(obj map[string]interface{}) []Transform {
	var out []Transform
	for _, r := range rs {
		if t := r(obj); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// GetProperty reads obj[key] and sets it unchanged on acc; nil when absent.
func GetProperty(key string) Rule {
	return func(obj map[string]interface{}) Transform {
		v := obj[key]
		return func(acc map[string]interface{}) {
			acc[key] = v
		}
	}
}

// TransformProperty reads obj[key], maps it through fn, and sets the result
// on acc.
func TransformProperty(key string, fn func(interface{}) interface{}) Rule {
	return func(obj map[string]interface{}) Transform {
		v := fn(obj[key])
		return func(acc map[string]interface{}) {
			acc[key] = v
		}
	}
}

// RenameProperty reads obj[key] and stores it under the dotted path on acc.
func RenameProperty(key, path string) Rule {
	return func(obj map[string]interface{}) Transform {
		v := obj[key]
		return func(acc map[string]interface{}) {
			setPath(acc, path, v)
		}
	}
}

// AggregateProperty appends obj[key] (scalars become a singleton list, then
// spread) onto the list living at path, creating it as [] when obj[key] is
// absent.
func AggregateProperty(key, path string) Rule {
	return func(obj map[string]interface{}) Transform {
		v, has := obj[key]
		return func(acc map[string]interface{}) {
			doUpdate(acc, path, v, has && v != nil)
		}
	}
}

// AggregatePropertyWhen aggregates obj[key] onto path only when pred(v) is
// true; otherwise it still ensures path exists as [].
func AggregatePropertyWhen(key, path string, pred func(interface{}) bool) Rule {
	return func(obj map[string]interface{}) Transform {
		v := obj[key]
		should := pred(v)
		return func(acc map[string]interface{}) {
			doUpdate(acc, path, v, should)
		}
	}
}

// doUpdate is the shared aggregation primitive behind AggregateProperty and
// AggregatePropertyWhen. Per the spec's own open question over the
// undefined `update` identifier in getPropertyWhen, both primitives route
// through this single helper rather than duplicating the list-append logic.
func doUpdate(acc map[string]interface{}, path string, v interface{}, should bool) {
	existing, _ := getPath(acc, path).([]interface{})
	if existing == nil {
		existing = []interface{}{}
	}
	if should {
		existing = append(existing, toList(v)...)
	}
	setPath(acc, path, existing)
}

// RenameAndTransformAttribute scans obj["attributes"] (a []interface{} of
// {attribute_type_id, value} maps) for the first entry whose
// attribute_type_id equals attrID, and assigns fn(value) at path. No match
// contributes nothing.
func RenameAndTransformAttribute(attrID, path string, fn func(interface{}) interface{}) Rule {
	return func(obj map[string]interface{}) Transform {
		for _, raw := range toList(obj["attributes"]) {
			m, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			if m["attribute_type_id"] != attrID {
				continue
			}
			v := fn(m["value"])
			return func(acc map[string]interface{}) {
				setPath(acc, path, v)
			}
		}
		return nil
	}
}

// AggregateAttributes concatenates the values of every attribute in
// obj["attributes"] whose attribute_type_id is in attrIDs onto the list at
// acc[tgtKey].
func AggregateAttributes(attrIDs []string, tgtKey string) Rule {
	return AggregateAndTransformAttributes(attrIDs, tgtKey, func(v interface{}) interface{} { return v })
}

// AggregateAndTransformAttributes is AggregateAttributes with each matching
// value mapped through fn before concatenation. tgtKey is always
// initialized to []interface{}{} even when zero attributes match, rather
// than left absent.
func AggregateAndTransformAttributes(attrIDs []string, tgtKey string, fn func(interface{}) interface{}) Rule {
	idSet := make(map[string]struct{}, len(attrIDs))
	for _, id := range attrIDs {
		idSet[id] = struct{}{}
	}
	return func(obj map[string]interface{}) Transform {
		collected := []interface{}{}
		for _, raw := range toList(obj["attributes"]) {
			m, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			typeID, _ := m["attribute_type_id"].(string)
			if _, match := idSet[typeID]; !match {
				continue
			}
			collected = append(collected, toList(fn(m["value"]))...)
		}
		return func(acc map[string]interface{}) {
			existing, _ := getPath(acc, tgtKey).([]interface{})
			if existing == nil {
				existing = []interface{}{}
			}
			setPath(acc, tgtKey, append(existing, collected...))
		}
	}
}

// toList coerces a value that may be nil, a scalar, or a []interface{}
// into a []interface{}; nil yields nil (not a singleton list of nil).
func toList(v interface{}) []interface{} {
	if v == nil {
		return nil
	}
	if l, ok := v.([]interface{}); ok {
		return l
	}
	return []interface{}{v}
}

func setPath(acc map[string]interface{}, path string, v interface{}) {
	parts := strings.Split(path, ".")
	cur := acc
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			cur[p] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = v
}

func getPath(acc map[string]interface{}, path string) interface{} {
	parts := strings.Split(path, ".")
	cur := interface{}(acc)
	for _, p := range parts {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur = m[p]
	}
	return cur
}
