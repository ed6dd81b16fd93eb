package schema

import (
	"regexp"
	"strings"

	"jsonls/internal/jsonpointer"
)

// RefResolver fetches the schema an external $ref points to, given the
// ref's document part (fragment already stripped) and the base URI it
// should be resolved against. Structurally identical to validator.Resolver;
// declared separately here to avoid a schema<->validator import cycle.
type RefResolver interface {
	Resolve(baseURI, ref string) (target *Schema, newBaseURI string, err error)
}

// Deref follows s.Ref chains until reaching a schema with no $ref of its
// own, per spec §4.4 ("always follow $ref first"). Same-document fragments
// ("#", "#/a/b") resolve directly against s.Root()'s Raw; external refs
// consult resolver (nil is fine when none is wired — resolution then just
// stops at the unresolved $ref node, since path resolution has no
// diagnostic channel of its own to report a fetch failure on). A revisited
// URI also stops resolution where it stands, rather than looping on a
// cycle.
func Deref(s *Schema, baseURI string, resolver RefResolver) *Schema {
	visited := map[string]bool{}
	cur, curBase := s, baseURI
	for cur != nil && cur.Ref != "" {
		if strings.HasPrefix(cur.Ref, "#") {
			uri := curBase + cur.Ref
			if visited[uri] {
				return cur
			}
			visited[uri] = true
			segments, err := jsonpointer.Parse(cur.Ref)
			if err != nil {
				return cur
			}
			root := cur.Root()
			raw, ok := jsonpointer.Resolve(root.Raw, segments)
			if !ok {
				return cur
			}
			target, perr := Parse(raw, root, root.BaseURI)
			if perr != nil {
				return cur
			}
			cur = target
			continue
		}

		if resolver == nil {
			return cur
		}
		docPart, fragment := splitExternalRef(cur.Ref)
		target, newBase, err := resolver.Resolve(curBase, docPart)
		if err != nil {
			return cur
		}
		visitKey := newBase + fragment
		if visited[visitKey] {
			return cur
		}
		visited[visitKey] = true
		if fragment != "" {
			fragSegments, ferr := jsonpointer.Parse(fragment)
			if ferr != nil {
				return cur
			}
			raw, ok := jsonpointer.Resolve(target.Raw, fragSegments)
			if !ok {
				return cur
			}
			target, err = Parse(raw, target.Root(), newBase)
			if err != nil {
				return cur
			}
		}
		cur = target
		curBase = newBase
	}
	return cur
}

// splitExternalRef splits an external $ref into its document part and
// fragment (fragment includes the leading '#' when present), e.g.
// "other.json#/definitions/Foo" -> ("other.json", "#/definitions/Foo").
func splitExternalRef(ref string) (docPart, fragment string) {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		return ref[:i], ref[i:]
	}
	return ref, ""
}

// baseURIOf returns s's own base URI, falling back to its root's when s
// carries none (the boolean-schema shorthand never sets one).
func baseURIOf(s *Schema) string {
	if s == nil {
		return ""
	}
	if s.BaseURI != "" {
		return s.BaseURI
	}
	return s.Root().BaseURI
}

// ResolveSegment finds the sub-schema reached by descending one JSON
// Pointer segment from s, per spec §4.4, following $ref first via resolver
// (nil is fine for schemas with no external $ref to chase).
func ResolveSegment(s *Schema, segment string, isArrayIndex bool, index int, resolver RefResolver) *Schema {
	s = Deref(s, baseURIOf(s), resolver)
	if s == nil {
		return nil
	}
	if isArrayIndex {
		if index < len(s.PrefixItems) {
			return s.PrefixItems[index]
		}
		if s.Items != nil {
			return s.Items
		}
		return nil
	}
	for _, p := range s.Properties {
		if p.Name == segment {
			return p.Schema
		}
	}
	for i, pp := range s.PatternProperties {
		re := s.compiledPatternAt(i)
		if re != nil && re.MatchString(segment) {
			return pp.Schema
		}
	}
	if s.AdditionalProperties != nil && !s.AdditionalProperties.IsBool {
		return s.AdditionalProperties.Schema
	}
	return nil
}

// compiledPatternAt lazily compiles the i-th patternProperties regex,
// caching the result on the schema node.
func (s *Schema) compiledPatternAt(i int) *regexp.Regexp {
	if s.compiledProperties == nil || i >= len(s.compiledProperties) {
		return nil
	}
	if s.compiledProperties[i] == nil {
		if re, err := regexp.Compile(s.PatternProperties[i].Name); err == nil {
			s.compiledProperties[i] = re
		}
	}
	return s.compiledProperties[i]
}

// ResolvePath applies ResolveSegment for each pointer segment in order,
// dereferencing $ref (via resolver) both before the first segment and
// after every step, short-circuiting as soon as one step returns nil.
// Branches through allOf/anyOf/oneOf/if-then-else union the candidates
// reachable at the current segment before descending.
func ResolvePath(s *Schema, segments []string, resolver RefResolver) *Schema {
	cur := Deref(s, baseURIOf(s), resolver)
	for _, seg := range segments {
		candidates := unionBranches(cur)
		var next *Schema
		for _, c := range candidates {
			idx, isIdx := parseIndex(seg)
			if found := ResolveSegment(c, seg, isIdx, idx, resolver); found != nil {
				next = Deref(found, baseURIOf(found), resolver)
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// unionBranches returns s plus every schema reachable through its
// allOf/anyOf/oneOf branches and if/then/else, since §4.4 requires
// descending through composition when resolving a path.
func unionBranches(s *Schema) []*Schema {
	out := []*Schema{s}
	out = append(out, s.AllOf...)
	out = append(out, s.AnyOf...)
	out = append(out, s.OneOf...)
	if s.Then != nil {
		out = append(out, s.Then)
	}
	if s.Else != nil {
		out = append(out, s.Else)
	}
	return out
}

func parseIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	n := 0
	for _, c := range seg {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
