package renderer

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
)

// Flatten projects v's JSON form onto dot-path keys such as
// "meta.order_number". Maps recurse; sequences of scalars are joined with
// ","; sequences holding maps or sequences are dropped.
func Flatten(v any) (map[string]string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	out := make(map[string]string)
	flattenInto(out, "", tree)
	return out, nil
}

func flattenInto(out map[string]string, prefix string, v any) {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flattenInto(out, key, child)
		}
	case []any:
		parts := make([]string, 0, len(node))
		for _, el := range node {
			if !isScalar(el) {
				return
			}
			parts = append(parts, cast.ToString(el))
		}
		if prefix != "" {
			out[prefix] = strings.Join(parts, ",")
		}
	default:
		if prefix != "" {
			out[prefix] = cast.ToString(node)
		}
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return false
	default:
		return true
	}
}
