// Package jsonpointer implements RFC 6901 JSON Pointer parsing and
// resolution against generic decoded JSON values (map[string]any,
// []any, and scalars).
package jsonpointer

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse splits a pointer string ("/a/0/b") into unescaped segments.
// An empty pointer or "#" yields a zero-length slice.
func Parse(pointer string) ([]string, error) {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" {
		return nil, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("jsonpointer: pointer must start with '/': %q", pointer)
	}
	parts := strings.Split(pointer[1:], "/")
	segments := make([]string, len(parts))
	for i, p := range parts {
		segments[i] = unescape(p)
	}
	return segments, nil
}

// Escape encodes a single raw token ("~" -> "~0", "/" -> "~1").
func Escape(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	token = strings.ReplaceAll(token, "/", "~1")
	return token
}

func unescape(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}

// Resolve walks segments against a generic decoded JSON value, descending
// through map[string]any by key and []any by decimal index.
func Resolve(root any, segments []string) (any, bool) {
	cur := root
	for _, seg := range segments {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Join builds a pointer string from segments, for diagnostics and hover
// locations.
func Join(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(Escape(s))
	}
	return b.String()
}
