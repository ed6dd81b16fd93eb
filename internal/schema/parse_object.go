package schema

import "regexp"

func parseObjectKeywords(obj map[string]any, s *Schema, draft Draft) {
	if props, ok := obj["properties"].(map[string]any); ok {
		s.Properties = namedSubschemas(props, s)
	}
	if pp, ok := obj["patternProperties"].(map[string]any); ok {
		s.PatternProperties = namedSubschemas(pp, s)
		s.compiledProperties = make([]*regexp.Regexp, len(s.PatternProperties))
	}
	s.AdditionalProperties = parseBoolOrSchema(obj["additionalProperties"], s)
	if pn, present := obj["propertyNames"]; present {
		if child, err := Parse(pn, s, s.BaseURI); err == nil {
			s.PropertyNames = child
		}
	}
	if req, ok := obj["required"].([]any); ok {
		for _, r := range req {
			if rs, ok := r.(string); ok {
				s.Required = append(s.Required, rs)
			}
		}
	}
	s.MinProperties = intPtr(obj["minProperties"])
	s.MaxProperties = intPtr(obj["maxProperties"])

	if dr, ok := obj["dependentRequired"].(map[string]any); ok {
		s.DependentRequired = map[string][]string{}
		for k, v := range dr {
			if arr, ok := v.([]any); ok {
				for _, item := range arr {
					if str, ok := item.(string); ok {
						s.DependentRequired[k] = append(s.DependentRequired[k], str)
					}
				}
			}
		}
	}
	if ds, ok := obj["dependentSchemas"].(map[string]any); ok {
		s.DependentSchemas = namedSubschemas(ds, s)
	}
	// draft-7 and earlier `dependencies` may hold either a schema or an
	// array of required property names per key; dispatch on shape.
	if deps, ok := obj["dependencies"].(map[string]any); ok {
		for k, v := range deps {
			switch dv := v.(type) {
			case []any:
				if s.DependentRequired == nil {
					s.DependentRequired = map[string][]string{}
				}
				for _, item := range dv {
					if str, ok := item.(string); ok {
						s.DependentRequired[k] = append(s.DependentRequired[k], str)
					}
				}
			default:
				if child, err := Parse(dv, s, s.BaseURI); err == nil {
					s.DependentSchemas = append(s.DependentSchemas, NamedSchema{Name: k, Schema: child})
				}
			}
		}
	}
	_ = draft
}

func parseBoolOrSchema(raw any, parent *Schema) *BoolOrSchema {
	if raw == nil {
		return nil
	}
	if b, ok := raw.(bool); ok {
		return &BoolOrSchema{IsBool: true, Bool: b}
	}
	child, err := Parse(raw, parent, parent.BaseURI)
	if err != nil {
		return nil
	}
	return &BoolOrSchema{Schema: child}
}

func intPtr(raw any) *int {
	switch v := raw.(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		return &v
	}
	return nil
}
