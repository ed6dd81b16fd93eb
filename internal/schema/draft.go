package schema

import "strings"

// Draft identifies which JSON Schema keyword dialect a Schema node uses.
type Draft string

const (
	D4       Draft = "D4"
	D6       Draft = "D6"
	D7       Draft = "D7"
	D2019_09 Draft = "D2019_09"
	D2020_12 Draft = "D2020_12"

	// DefaultDraft is used at the root when $schema is absent.
	DefaultDraft = D7
)

// draftFromSchemaURI maps a $schema value to a Draft, defaulting to
// DefaultDraft for anything unrecognized so parsing never fails on an
// unusual $schema value.
func draftFromSchemaURI(uri string) Draft {
	switch {
	case containsAny(uri, "draft-04", "draft4"):
		return D4
	case containsAny(uri, "draft-06", "draft6"):
		return D6
	case containsAny(uri, "draft-07", "draft7"):
		return D7
	case containsAny(uri, "2019-09"):
		return D2019_09
	case containsAny(uri, "2020-12"):
		return D2020_12
	default:
		return DefaultDraft
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
