package nav

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// BadgeKind discriminates the two badge representations.
type BadgeKind int

const (
	// BadgeText is a free-form text badge (e.g. "new").
	BadgeText BadgeKind = iota

	// BadgeCount is a numeric badge (e.g. an unread count).
	BadgeCount
)

// Badge is the value shown next to a navigation label. Host
// configurations supply it as either a bare string or a bare integer;
// the two cases are kept explicit so the render boundary can handle
// them exhaustively.
type Badge struct {
	Kind  BadgeKind
	Text  string
	Count int
}

// TextBadge returns a text badge.
func TextBadge(text string) *Badge {
	return &Badge{Kind: BadgeText, Text: text}
}

// CountBadge returns a numeric badge.
func CountBadge(count int) *Badge {
	return &Badge{Kind: BadgeCount, Count: count}
}

// String returns the rendered form of the badge.
func (b *Badge) String() string {
	if b == nil {
		return ""
	}

	if b.Kind == BadgeCount {
		return strconv.Itoa(b.Count)
	}

	return b.Text
}

// MarshalJSON encodes the badge as the bare value the host supplied:
// a JSON string for text badges, a JSON number for count badges.
func (b Badge) MarshalJSON() ([]byte, error) {
	if b.Kind == BadgeCount {
		return json.Marshal(b.Count)
	}

	return json.Marshal(b.Text)
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (b *Badge) UnmarshalJSON(data []byte) error {
	var count int
	if err := json.Unmarshal(data, &count); err == nil {
		*b = Badge{Kind: BadgeCount, Count: count}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*b = Badge{Kind: BadgeText, Text: text}
		return nil
	}

	return fmt.Errorf("badge must be a string or an integer, got %s", data)
}

// ParseBadge converts a dynamically typed configuration value (string,
// integer, or nil) into a Badge. Nil input means no badge.
func ParseBadge(v any) (*Badge, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return TextBadge(val), nil
	case int:
		return CountBadge(val), nil
	case int64:
		return CountBadge(int(val)), nil
	case float64:
		return CountBadge(int(val)), nil
	default:
		return nil, fmt.Errorf("badge must be a string or an integer, got %T", v)
	}
}
