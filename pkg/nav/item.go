package nav

// Item describes one entry in the bottom navigation as supplied by the
// host application configuration.
type Item struct {
	// Label is the visible text of the entry and its accessible name.
	// Required and non-empty.
	Label string `json:"label"`

	// URL is the target of the entry. Absolute path, relative path, or
	// an external URL. Required and non-empty.
	URL string `json:"url"`

	// Icon is an opaque icon identifier. Optional.
	Icon string `json:"icon,omitempty"`

	// Badge is an optional count or text marker shown next to the label.
	// Nil means no badge.
	Badge *Badge `json:"badge,omitempty"`

	// SortOrder positions the entry relative to its siblings, ascending.
	// Entries without an explicit value share the zero value and keep
	// their configured order among themselves.
	SortOrder int `json:"sortOrder,omitempty"`
}

// ResolvedItem is an Item annotated with its active state for the
// current request. At most one item in a resolved list is active.
type ResolvedItem struct {
	Item

	// Active reports whether this entry corresponds to the page
	// currently being viewed.
	Active bool `json:"active"`
}
