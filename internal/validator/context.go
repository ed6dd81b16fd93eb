// Package validator walks a decoded JSON value against a schema.Schema,
// producing diag.Diagnostic values. It never panics across Validate: every
// failure becomes a diagnostic, per spec's "the validator collects; it
// never throws".
package validator

import (
	"maps"

	"jsonls/internal/diag"
	"jsonls/internal/regexcache"
	"jsonls/internal/schema"
)

// Resolver fetches the schema a $ref points to, given the ref string and
// the base URI it should be resolved against. Local `#`/`#/...` fragments
// are handled inside the validator itself (they need no network or disk
// access); Resolver is only consulted for refs that leave the current
// document.
type Resolver interface {
	Resolve(baseURI, ref string) (target *schema.Schema, newBaseURI string, err error)
}

// Context carries the per-call state threaded through a Validate walk:
// the current JSON Pointer path, the active base URI, the visited-$ref set
// (always cloned at branch points, never shared by mutation), and handles
// to the shared caches.
type Context struct {
	Path     []string
	BaseURI  string
	Visited  map[string]struct{}
	Regex    *regexcache.Cache
	Resolver Resolver

	// Cancelled is polled between a schema node's top-level children; when
	// it returns true, Validate returns immediately with whatever
	// diagnostics it has collected so far.
	Cancelled func() bool
}

// NewContext builds a root Context for validating against a schema whose
// base URI is baseURI.
func NewContext(baseURI string, regex *regexcache.Cache, resolver Resolver) *Context {
	return &Context{
		BaseURI: baseURI,
		Visited: map[string]struct{}{},
		Regex:   regex,
		Resolver: resolver,
	}
}

// withPath returns a shallow copy of ctx with seg appended to Path. Path is
// not shared by mutation across sibling calls (each append reslices).
func (c *Context) withPath(seg string) *Context {
	next := *c
	next.Path = append(append([]string{}, c.Path...), seg)
	return &next
}

// withVisited returns a copy of ctx with uri added to a cloned Visited set,
// per spec §9: "Visited-set cloning ... never shared by mutation, or
// sibling uses of the same reference will be spuriously flagged as
// cycles."
func (c *Context) withVisited(uri string) *Context {
	next := *c
	next.Visited = maps.Clone(c.Visited)
	next.Visited[uri] = struct{}{}
	return &next
}

// withBaseURI returns a copy of ctx pointed at a new base URI, used after
// following a $ref into a schema fetched from elsewhere.
func (c *Context) withBaseURI(uri string) *Context {
	next := *c
	next.BaseURI = uri
	return &next
}

func (c *Context) isCancelled() bool {
	return c.Cancelled != nil && c.Cancelled()
}
