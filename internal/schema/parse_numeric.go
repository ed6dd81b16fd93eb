package schema

// parseNumericKeywords parses minimum/maximum/exclusiveMinimum/
// exclusiveMaximum/multipleOf, folding the draft-4 boolean form of the
// exclusive keywords into the corresponding bound: `{"minimum":0,
// "exclusiveMinimum":true}` becomes an ExclusiveMinimum of 0 with Minimum
// cleared, exactly as draft-6+ would express it directly.
func parseNumericKeywords(obj map[string]any, s *Schema, draft Draft) error {
	minimum, err := numPtr(obj["minimum"])
	if err != nil {
		return err
	}
	maximum, err := numPtr(obj["maximum"])
	if err != nil {
		return err
	}
	s.Minimum = minimum
	s.Maximum = maximum

	switch em := obj["exclusiveMinimum"].(type) {
	case bool:
		if em && s.Minimum != nil {
			s.ExclusiveMinimum = s.Minimum
			s.Minimum = nil
		}
	default:
		if v, err := numPtr(obj["exclusiveMinimum"]); err == nil {
			s.ExclusiveMinimum = v
		}
	}
	switch em := obj["exclusiveMaximum"].(type) {
	case bool:
		if em && s.Maximum != nil {
			s.ExclusiveMaximum = s.Maximum
			s.Maximum = nil
		}
	default:
		if v, err := numPtr(obj["exclusiveMaximum"]); err == nil {
			s.ExclusiveMaximum = v
		}
	}

	mult, err := numPtr(obj["multipleOf"])
	if err != nil {
		return err
	}
	s.MultipleOf = mult
	_ = draft
	return nil
}

func numPtr(raw any) (*Rat, error) {
	if raw == nil {
		return nil, nil
	}
	r, err := NewRat(raw)
	if err != nil {
		// A malformed numeric keyword is ignored, not fatal, per spec's
		// "when a keyword's value is of the wrong shape, it is ignored".
		return nil, nil
	}
	return r, nil
}
