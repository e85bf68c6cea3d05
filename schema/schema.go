package schema

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is an immutable JSON Schema document. The Engine caches compiled
// validators keyed by Document identity, so load a document once and reuse
// the pointer; parsing the same bytes twice yields two cache entries.
type Document struct {
	value any
}

// FromValue wraps an already-decoded schema value (typically map[string]any).
// YAML-style map[any]any nodes are normalized to map[string]any.
func FromValue(v any) *Document {
	return &Document{value: normalizeValue(v)}
}

// ParseJSON decodes a JSON schema document.
func ParseJSON(data []byte) (*Document, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("schema: parse json: %w", err)
	}
	return &Document{value: v}, nil
}

// ParseYAML decodes a YAML schema document.
func ParseYAML(data []byte) (*Document, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("schema: parse yaml: %w", err)
	}
	return &Document{value: normalizeValue(v)}, nil
}

// Value returns the decoded document. Callers must not mutate it.
func (d *Document) Value() any { return d.value }

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}

// RootPath is the JSON Pointer reported for whole-instance failures.
const RootPath = "/"

// Error is a single structured failure reported by the engine.
type Error struct {
	Path    string // JSON Pointer into the instance; RootPath for the root.
	Message string
}

// Errors is the engine's failure list. It implements error for callers that
// want to bubble it up directly.
type Errors []Error

func (es Errors) Error() string {
	if len(es) == 0 {
		return ""
	}
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.Path+": "+e.Message)
	}
	return "schema: " + strings.Join(parts, "; ")
}
