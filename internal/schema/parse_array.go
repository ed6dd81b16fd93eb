package schema

func parseArrayKeywords(obj map[string]any, s *Schema) {
	// Draft 4-6 encode tuple validation as `items: [schema, ...]` with a
	// separate `additionalItems`; draft 2019-09+ splits this into
	// `prefixItems` + `items`. Normalize both onto PrefixItems/Items so the
	// validator only has one shape to walk, mirroring how the teacher's own
	// custom UnmarshalJSON remaps items-as-array to PrefixItems.
	switch items := obj["items"].(type) {
	case []any:
		for _, raw := range items {
			if child, err := Parse(raw, s, s.BaseURI); err == nil {
				s.PrefixItems = append(s.PrefixItems, child)
			}
		}
		if ai, present := obj["additionalItems"]; present {
			if child, err := Parse(ai, s, s.BaseURI); err == nil {
				s.Items = child
			}
		}
	case nil:
		// absent
	default:
		if child, err := Parse(items, s, s.BaseURI); err == nil {
			s.Items = child
		}
	}
	if pi, ok := obj["prefixItems"].([]any); ok {
		for _, raw := range pi {
			if child, err := Parse(raw, s, s.BaseURI); err == nil {
				s.PrefixItems = append(s.PrefixItems, child)
			}
		}
	}
	if c, present := obj["contains"]; present {
		if child, err := Parse(c, s, s.BaseURI); err == nil {
			s.Contains = child
		}
	}
	s.MinContains = intPtr(obj["minContains"])
	s.MaxContains = intPtr(obj["maxContains"])
	if u, ok := obj["uniqueItems"].(bool); ok {
		s.UniqueItems = u
	}
	s.MinItems = intPtr(obj["minItems"])
	s.MaxItems = intPtr(obj["maxItems"])
}

func parseStringKeywords(obj map[string]any, s *Schema) {
	s.MinLength = intPtr(obj["minLength"])
	s.MaxLength = intPtr(obj["maxLength"])
	if p, ok := str(obj["pattern"]); ok {
		s.Pattern = p
	}
	if f, ok := str(obj["format"]); ok {
		s.Format = f
	}
}

func parseComposition(obj map[string]any, s *Schema) error {
	var err error
	s.AllOf, err = parseSchemaList(obj["allOf"], s)
	if err != nil {
		return err
	}
	s.AnyOf, err = parseSchemaList(obj["anyOf"], s)
	if err != nil {
		return err
	}
	s.OneOf, err = parseSchemaList(obj["oneOf"], s)
	if err != nil {
		return err
	}
	if n, present := obj["not"]; present {
		if child, err := Parse(n, s, s.BaseURI); err == nil {
			s.Not = child
		}
	}
	if v, present := obj["if"]; present {
		if child, err := Parse(v, s, s.BaseURI); err == nil {
			s.If = child
		}
	}
	if v, present := obj["then"]; present {
		if child, err := Parse(v, s, s.BaseURI); err == nil {
			s.Then = child
		}
	}
	if v, present := obj["else"]; present {
		if child, err := Parse(v, s, s.BaseURI); err == nil {
			s.Else = child
		}
	}
	return nil
}

func parseSchemaList(raw any, parent *Schema) ([]*Schema, error) {
	arr, ok := raw.([]any)
	if !ok {
		return nil, nil
	}
	out := make([]*Schema, 0, len(arr))
	for _, item := range arr {
		child, err := Parse(item, parent, parent.BaseURI)
		if err != nil {
			continue
		}
		out = append(out, child)
	}
	return out, nil
}
