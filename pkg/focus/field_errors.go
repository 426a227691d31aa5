package focus

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldError holds the messages reported for one field.
type FieldError struct {
	Field    string
	Messages []string
}

// FieldErrors is an ordered field-to-messages mapping. Slice order is the
// enumeration order FocusFirstError relies on.
type FieldErrors []FieldError

// First returns the first field identifier, or false when there is none.
func (fe FieldErrors) First() (string, bool) {
	if len(fe) == 0 {
		return "", false
	}
	return fe[0].Field, true
}

// Fields lists the field identifiers in order.
func (fe FieldErrors) Fields() []string {
	if len(fe) == 0 {
		return nil
	}
	out := make([]string, 0, len(fe))
	for _, entry := range fe {
		out = append(out, entry.Field)
	}
	return out
}

// Add appends messages for field, merging into an existing entry so the
// field keeps its original position.
func (fe FieldErrors) Add(field string, messages ...string) FieldErrors {
	for i := range fe {
		if fe[i].Field == field {
			fe[i].Messages = append(fe[i].Messages, messages...)
			return fe
		}
	}
	return append(fe, FieldError{Field: field, Messages: append([]string(nil), messages...)})
}

// FieldErrorsFromMap converts an unordered map. Go maps carry no order, so
// keys are sorted to keep the result deterministic.
func FieldErrorsFromMap(m map[string][]string) FieldErrors {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(FieldErrors, 0, len(keys))
	for _, key := range keys {
		out = append(out, FieldError{Field: key, Messages: append([]string(nil), m[key]...)})
	}
	return out
}

// ParseFieldErrors decodes a YAML or JSON object into FieldErrors, keeping
// document key order. Values may be a message, a list of messages, null, or
// a nested object whose keys are joined with dots.
func ParseFieldErrors(data []byte) (FieldErrors, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("focus: decode field errors: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("focus: field errors must be an object, got %s", nodeKind(root))
	}

	var out FieldErrors
	if err := collectFieldErrors(root, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func collectFieldErrors(node *yaml.Node, prefix string, out *FieldErrors) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := strings.TrimSpace(node.Content[i].Value)
		value := node.Content[i+1]
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch value.Kind {
		case yaml.MappingNode:
			if err := collectFieldErrors(value, path, out); err != nil {
				return err
			}
		case yaml.SequenceNode:
			messages := make([]string, 0, len(value.Content))
			for _, item := range value.Content {
				if item.Kind != yaml.ScalarNode {
					return fmt.Errorf("focus: field %q: messages must be scalars, got %s", path, nodeKind(item))
				}
				messages = append(messages, item.Value)
			}
			*out = out.Add(path, messages...)
		case yaml.ScalarNode:
			if value.Tag == "!!null" {
				*out = out.Add(path)
				continue
			}
			*out = out.Add(path, value.Value)
		case yaml.AliasNode:
			if value.Alias != nil && value.Alias.Kind == yaml.ScalarNode {
				*out = out.Add(path, value.Alias.Value)
				continue
			}
			return fmt.Errorf("focus: field %q: unsupported alias", path)
		default:
			return fmt.Errorf("focus: field %q: unsupported value %s", path, nodeKind(value))
		}
	}
	return nil
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
