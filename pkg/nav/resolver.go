package nav

import (
	"fmt"
	"sort"
	"strings"
)

// InvalidItemError reports a navigation item that is missing a required
// field. The whole resolution call fails rather than silently dropping
// the entry, so a misconfigured item is visible to the administrator
// who configured it instead of just absent from the page.
type InvalidItemError struct {
	// Index is the position of the offending item in the input list.
	Index int

	// Field is the name of the missing field ("label" or "url").
	Field string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("navigation item %d: missing required field %q", e.Index, e.Field)
}

// Resolve orders the given navigation items and marks at most one of
// them active for currentPath.
//
// Items are sorted by SortOrder ascending; items sharing a sort order
// keep their input order. An item is active when its URL equals
// currentPath after trailing-slash normalization ("/admin" and
// "/admin/" are equivalent). When several URLs match, the first item in
// sorted order wins. External URLs never match.
//
// The input slice is not modified. Output length always equals input
// length. The call fails with *InvalidItemError if any item is missing
// its label or url.
func Resolve(items []Item, currentPath string) ([]ResolvedItem, error) {
	for i := range items {
		if strings.TrimSpace(items[i].Label) == "" {
			return nil, &InvalidItemError{Index: i, Field: "label"}
		}
		if strings.TrimSpace(items[i].URL) == "" {
			return nil, &InvalidItemError{Index: i, Field: "url"}
		}
	}

	resolved := make([]ResolvedItem, len(items))
	for i, item := range items {
		resolved[i] = ResolvedItem{Item: item}
	}

	// Stable keeps the configured order among items that share a sort
	// order, so the rendered navigation never flickers between requests.
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].SortOrder < resolved[j].SortOrder
	})

	want := normalizePath(currentPath)
	for i := range resolved {
		if isExternal(resolved[i].URL) {
			continue
		}

		if normalizePath(resolved[i].URL) == want {
			resolved[i].Active = true
			break
		}
	}

	return resolved, nil
}

// normalizePath strips a single trailing slash so "/admin" and
// "/admin/" compare equal. The root path "/" is left alone.
func normalizePath(p string) string {
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		return strings.TrimSuffix(p, "/")
	}

	return p
}

// isExternal reports whether url carries a scheme (e.g. "https://...")
// and therefore points outside the host application.
func isExternal(url string) bool {
	return strings.Contains(url, "://")
}
