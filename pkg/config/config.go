// Package config loads the navigation configuration supplied by the
// host application. The file takes the place of the host framework's
// plugin registration: the loaded navigation is passed explicitly to
// the handlers, no process-wide registry.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jenilutfifauzi/bottomnav/pkg/nav"
)

// rawItem mirrors one navigation entry in the configuration file.
// Badge stays dynamically typed (string or integer) until ParseBadge
// sorts it into the explicit representation.
type rawItem struct {
	Label     string `mapstructure:"label"`
	URL       string `mapstructure:"url"`
	Icon      string `mapstructure:"icon"`
	Badge     any    `mapstructure:"badge"`
	SortOrder int    `mapstructure:"sortOrder"`
}

// rawConfig mirrors the navigation configuration file.
type rawConfig struct {
	Title       string    `mapstructure:"title"`
	AriaLabel   string    `mapstructure:"ariaLabel"`
	DefaultPath string    `mapstructure:"defaultPath"`
	Items       []rawItem `mapstructure:"items"`
}

// Load reads the navigation configuration file at path (YAML, JSON, or
// anything else viper understands by extension) and converts it into a
// nav.Navigation.
//
// Incomplete items (missing label or url) fail the load immediately, so
// a misconfiguration surfaces at startup instead of on the first
// request.
func Load(path string) (*nav.Navigation, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read navigation config: %w", err)
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse navigation config: %w", err)
	}

	items := make([]nav.Item, 0, len(raw.Items))

	for i, ri := range raw.Items {
		badge, err := nav.ParseBadge(ri.Badge)
		if err != nil {
			return nil, fmt.Errorf("navigation item %d: %w", i, err)
		}

		items = append(items, nav.Item{
			Label:     ri.Label,
			URL:       ri.URL,
			Icon:      ri.Icon,
			Badge:     badge,
			SortOrder: ri.SortOrder,
		})
	}

	n := &nav.Navigation{
		Title:       raw.Title,
		AriaLabel:   raw.AriaLabel,
		DefaultPath: raw.DefaultPath,
		Items:       items,
	}

	// Validate items up front. Resolve is a pure function, so a probe
	// against the root path exercises the same validation every request
	// would hit.
	if _, err := nav.Resolve(n.Items, "/"); err != nil {
		return nil, fmt.Errorf("invalid navigation config: %w", err)
	}

	return n, nil
}
