// Package slug parses and formats multi-tenant identifiers. A slug is the
// raw tenant identifier as supplied by a caller: either a single delimited
// string ("acme+umbrella") or a list of path segments already split by a
// router (["acme", "umbrella"]).
package slug

import (
	"regexp"
	"strings"
)

// Separator is the canonical separator used when formatting a slug.
const Separator = "+"

// A run of raw or percent-encoded separators counts as a single separator.
var reSeparators = regexp.MustCompile(`(?i)(%2B|%2C|[+,])+`)

// Parse normalizes a raw delimited slug into an ordered list of tenant IDs.
// "+", ",", "%2B" and "%2C" are treated interchangeably as separators; runs
// of separators collapse into one; each segment is whitespace-trimmed and
// empty segments are dropped. Order is preserved and duplicates are kept.
func Parse(raw string) []string {
	normalized := reSeparators.ReplaceAllString(raw, Separator)

	ids := make([]string, 0, strings.Count(normalized, Separator)+1)
	for _, segment := range strings.Split(normalized, Separator) {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			ids = append(ids, segment)
		}
	}
	return ids
}

// ParseSegments normalizes a pre-split ordered list of segments, dropping
// empty ones. The caller is assumed to have already split on structural
// boundaries, so segments are not re-split on separator characters.
func ParseSegments(segments []string) []string {
	ids := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment != "" {
			ids = append(ids, segment)
		}
	}
	return ids
}

// Format joins tenant IDs into a canonical slug. For any ids containing no
// separator characters and no empty strings, Parse(Format(ids)) == ids.
func Format(tenantIDs []string) string {
	return strings.Join(tenantIDs, Separator)
}

// IsMultiTenant reports whether a raw slug names more than one tenant, by
// checking for the presence of a separator character. Note that this can
// disagree with IsMultiTenantSegments: a single pre-split segment containing
// a literal comma is multi-tenant here but not there.
func IsMultiTenant(raw string) bool {
	return strings.ContainsAny(raw, "+,")
}

// IsMultiTenantSegments reports whether a pre-split segment list names more
// than one tenant.
func IsMultiTenantSegments(segments []string) bool {
	return len(ParseSegments(segments)) > 1
}
