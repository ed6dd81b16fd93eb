package schema

import (
	"net/url"
	"strings"
)

// resolveRelative resolves ref against base the way a browser resolves a
// relative link: absolute refs pass through, scheme-relative and
// path-relative refs are joined against base.
func resolveRelative(base, ref string) string {
	if ref == "" {
		return base
	}
	if isAbsoluteURI(ref) {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil || base == "" {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

func isAbsoluteURI(s string) bool {
	i := strings.Index(s, ":")
	if i <= 0 {
		return false
	}
	scheme := s[:i]
	for _, c := range scheme {
		if !(c == '+' || c == '-' || c == '.' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}

// dirURIOf derives the base URI used to resolve a relative $ref found
// within a schema fetched from uri: everything up to the final path
// segment, matching path.Dir semantics for URIs.
func dirURIOf(uri string) string {
	i := strings.LastIndex(uri, "/")
	if i < 0 {
		return uri
	}
	return uri[:i+1]
}
