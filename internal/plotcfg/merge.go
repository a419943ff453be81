// Package plotcfg normalizes plotting configurations: it merges
// per-plot settings over shared defaults and strips options that must
// not be forwarded to the rendering layer.
package plotcfg

// Tree is a nested string-keyed configuration mapping, as produced by
// decoding a YAML document.
type Tree = map[string]interface{}

// Merge deep-merges two trees with left precedence and returns a new
// tree sharing no storage with either input. Keys only in secondary are
// copied over; keys in both recurse when both values are trees and are
// otherwise taken wholesale from primary, even when the shapes differ
// (a scalar in primary replaces a whole subtree in secondary).
func Merge(primary, secondary Tree) Tree {
	merged := deepCopy(secondary)
	for key, value := range primary {
		sv, inSecondary := merged[key]
		if inSecondary {
			pt, pOK := value.(Tree)
			st, sOK := sv.(Tree)
			if pOK && sOK {
				merged[key] = Merge(pt, st)
				continue
			}
		}
		merged[key] = deepCopyValue(value)
	}
	return merged
}

// FilterSection returns a copy of section without the denylisted keys.
// Denylisted keys that are absent are not an error.
func FilterSection(section Tree, denylist []string) Tree {
	filtered := make(Tree, len(section))
	for key, value := range section {
		if contains(denylist, key) {
			continue
		}
		filtered[key] = deepCopyValue(value)
	}
	return filtered
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func deepCopy(t Tree) Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Tree:
		return deepCopy(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}
