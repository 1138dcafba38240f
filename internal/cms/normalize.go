package cms

import "encoding/json"

// The backend emits relations in two shapes depending on which version of
// the content API served the record: a flattened object, or a
// {data:{id,attributes:{...}}} wrapper (lists likewise). normalizeRaw
// rewrites a decoded JSON tree into the flattened form once, at fetch time,
// so only the canonical shape reaches the rest of the codebase.
func normalizeRaw(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return raw, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.Marshal(normalizeValue(v))
}

func normalizeValue(v any) any {
	switch node := v.(type) {
	case map[string]any:
		if inner, ok := relationWrapper(node); ok {
			return normalizeValue(inner)
		}
		if flat, ok := flattenEntry(node); ok {
			return normalizeValue(flat)
		}
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[k] = normalizeValue(val)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}

// relationWrapper matches {data: ...} (optionally with a meta sibling) and
// returns the wrapped value. A null data yields nil, which encodes back to
// JSON null and lands in a nil pointer or empty slice.
func relationWrapper(m map[string]any) (any, bool) {
	inner, ok := m["data"]
	if !ok {
		return nil, false
	}
	for k := range m {
		if k != "data" && k != "meta" {
			return nil, false
		}
	}
	return inner, true
}

// flattenEntry merges {id, attributes:{...}} into a single object.
func flattenEntry(m map[string]any) (map[string]any, bool) {
	id, hasID := m["id"]
	attrs, hasAttrs := m["attributes"].(map[string]any)
	if !hasID || !hasAttrs {
		return nil, false
	}
	out := make(map[string]any, len(attrs)+1)
	for k, val := range attrs {
		out[k] = val
	}
	out["id"] = id
	return out, true
}
