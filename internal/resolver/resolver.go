// Package resolver fetches, parses, and LRU-caches JSON schemas by URI,
// and associates documents with schemas via inline $schema or a configured
// fileMatch glob.
package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	lru "github.com/hashicorp/golang-lru/v2"

	"jsonls/internal/diag"
	"jsonls/internal/schema"
)

// Association is one entry of the `json.schemas` configuration: documents
// whose URI matches any of FileMatch are validated against SchemaURL. An
// Association with no FileMatch globs matches no document.
type Association struct {
	FileMatch []string
	SchemaURL string
}

// Resolver implements schema.RefResolver-compatible fetch/cache semantics
// plus the document-to-schema association policy of spec §4.6.
type Resolver struct {
	cache *lru.Cache[string, *schema.Schema]
	http  *http.Client

	mu       sync.Mutex
	inflight map[string]*inflightFetch

	associations []Association

	// FetchFailures records URIs that have already produced a
	// SchemaFetchFailure warning this session, so repeats are suppressed
	// per spec §7 ("once per URI per session").
	failuresMu sync.Mutex
	failures   map[string]bool
}

type inflightFetch struct {
	done   chan struct{}
	result *schema.Schema
	err    error
}

// CacheCapacity is the LRU size spec §3 fixes at 32.
const CacheCapacity = 32

// New builds a Resolver with a fresh LRU cache and a 10-second-timeout
// HTTP client, matching spec §4.6's fetch timeout.
func New() *Resolver {
	cache, _ := lru.New[string, *schema.Schema](CacheCapacity)
	return &Resolver{
		cache:    cache,
		http:     &http.Client{Timeout: 10 * time.Second},
		inflight: map[string]*inflightFetch{},
		failures: map[string]bool{},
	}
}

// SetAssociations replaces the configured json.schemas fileMatch
// associations, in registration order (first match wins).
func (r *Resolver) SetAssociations(assocs []Association) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.associations = assocs
}

// AssociateDocument implements spec §4.6's document↔schema priority:
// inline $schema first, then fileMatch glob in registration order, else
// none.
func (r *Resolver) AssociateDocument(documentURI string, inlineSchema string) (schemaURI string, ok bool) {
	if inlineSchema != "" {
		return inlineSchema, true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.associations {
		for _, glob := range a.FileMatch {
			if matched, _ := doublestar.Match(glob, documentURI); matched {
				return a.SchemaURL, true
			}
			if matched, _ := doublestar.Match(glob, strings.TrimPrefix(documentURI, "file://")); matched {
				return a.SchemaURL, true
			}
		}
	}
	return "", false
}

// Resolve fetches (or returns from cache) the schema at uri, matching the
// validator.Resolver interface: newBaseURI is uri's own directory, used to
// resolve further relative $refs inside the fetched schema.
func (r *Resolver) Resolve(baseURI, ref string) (*schema.Schema, string, error) {
	uri := resolveAgainst(baseURI, ref)
	s, err := r.Fetch(context.Background(), uri)
	if err != nil {
		return nil, "", err
	}
	return s, baseURIOf(uri), nil
}

// Fetch returns the cached schema at uri, or fetches, parses, and caches
// it. Concurrent fetches of the same uri coalesce onto one request.
func (r *Resolver) Fetch(ctx context.Context, uri string) (*schema.Schema, error) {
	if s, ok := r.cache.Get(uri); ok {
		return s, nil
	}

	r.mu.Lock()
	if f, ok := r.inflight[uri]; ok {
		r.mu.Unlock()
		<-f.done
		return f.result, f.err
	}
	f := &inflightFetch{done: make(chan struct{})}
	r.inflight[uri] = f
	r.mu.Unlock()

	s, err := r.fetchAndParse(ctx, uri)
	f.result, f.err = s, err
	close(f.done)

	r.mu.Lock()
	delete(r.inflight, uri)
	r.mu.Unlock()

	if err != nil {
		return nil, err
	}
	r.cache.Add(uri, s)
	return s, nil
}

// FailureDiagnostic returns a SchemaFetchFailure diagnostic for uri the
// first time it is called for that URI in this process, and (zero value,
// false) on every subsequent call, per spec §7's "once per URI per
// session".
func (r *Resolver) FailureDiagnostic(uri string, cause error) (diag.Diagnostic, bool) {
	r.failuresMu.Lock()
	defer r.failuresMu.Unlock()
	if r.failures[uri] {
		return diag.Diagnostic{}, false
	}
	r.failures[uri] = true
	return diag.New(diag.SchemaFetchFailure, nil, fmt.Sprintf("could not load schema %q: %v", uri, cause)), true
}

func (r *Resolver) fetchAndParse(ctx context.Context, uri string) (*schema.Schema, error) {
	body, err := r.fetchBytes(ctx, uri)
	if err != nil {
		return nil, err
	}

	var raw any
	if strings.HasSuffix(uri, ".yaml") || strings.HasSuffix(uri, ".yml") {
		err = yaml.Unmarshal(body, &raw)
	} else {
		err = json.Unmarshal(body, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("resolver: parsing %q: %w", uri, err)
	}
	return schema.Parse(raw, nil, baseURIOf(uri))
}

func (r *Resolver) fetchBytes(ctx context.Context, uri string) ([]byte, error) {
	switch {
	case strings.HasPrefix(uri, "file://"):
		path := strings.TrimPrefix(uri, "file://")
		return os.ReadFile(path)
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, err
		}
		resp, err := r.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("resolver: fetching %q: HTTP %d", uri, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	default:
		return nil, fmt.Errorf("resolver: unsupported scheme for %q", uri)
	}
}

func resolveAgainst(baseURI, ref string) string {
	if strings.Contains(ref, "://") {
		return ref
	}
	if strings.HasPrefix(ref, "/") {
		i := strings.Index(baseURI, "://")
		if i < 0 {
			return ref
		}
		j := strings.Index(baseURI[i+3:], "/")
		if j < 0 {
			return baseURI + ref
		}
		return baseURI[:i+3+j] + ref
	}
	return baseURIOf(baseURI) + ref
}

func baseURIOf(uri string) string {
	i := strings.LastIndex(uri, "/")
	if i < 0 {
		return uri
	}
	return uri[:i+1]
}
