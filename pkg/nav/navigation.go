package nav

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jenilutfifauzi/bottomnav/pkg/metric"
)

// Navigation is the host-supplied navigation configuration: a list of
// items plus presentation metadata for the rendered partial.
type Navigation struct {
	// Title of the navigation, returned in the JSON representation.
	Title string `json:"title"`

	// AriaLabel names the navigation landmark for assistive technology.
	// Defaults to "Main navigation" when empty.
	AriaLabel string `json:"ariaLabel,omitempty"`

	// DefaultPath is the request path to resolve against when the
	// request does not carry an explicit path.
	DefaultPath string `json:"defaultPath,omitempty"`

	// Items is the list of navigation item descriptors.
	Items []Item `json:"items,omitempty"`
}

// resolution is the JSON shape of a resolved navigation response.
type resolution struct {
	Title string         `json:"title"`
	Path  string         `json:"path"`
	Items []ResolvedItem `json:"items"`
}

// currentPath picks the path to resolve against: the "path" query
// parameter when present, the configured default otherwise, and the
// request path as a last resort.
func (n *Navigation) currentPath(r *http.Request) string {
	if p := r.URL.Query().Get("path"); p != "" {
		return p
	}

	if n.DefaultPath != "" {
		return n.DefaultPath
	}

	return r.URL.Path
}

// Handler returns an HTTP handler that resolves the navigation against
// the request and responds with the resolved item list as JSON.
// Resolutions are counted on the given counter with labels
// (format, outcome).
func (n *Navigation) Handler(resolutions metric.IncrementalCounter) http.Handler {
	if resolutions == nil {
		resolutions = metric.Discard()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := n.currentPath(r)

		slog.Info("resolving navigation",
			"method", r.Method,
			"url", r.URL.Path,
			"path", path,
		)

		items, err := Resolve(n.Items, path)
		if err != nil {
			resolutions.Increment("json", "error")
			slog.Error("failed to resolve navigation", "error", err)
			http.Error(w, "invalid navigation configuration", http.StatusInternalServerError)
			return
		}

		resolutions.Increment("json", outcome(items))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(resolution{
			Title: n.Title,
			Path:  path,
			Items: items,
		}); err != nil {
			slog.Error("failed to encode navigation", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		slog.Info("navigation response sent",
			"method", r.Method,
			"url", r.URL.Path,
			"status", http.StatusOK,
		)
	})
}

// PartialHandler returns an HTTP handler that resolves the navigation
// against the request and responds with the server-rendered HTML
// partial.
func (n *Navigation) PartialHandler(rd *Renderer, resolutions metric.IncrementalCounter) http.Handler {
	if resolutions == nil {
		resolutions = metric.Discard()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := n.currentPath(r)

		slog.Info("rendering navigation partial",
			"method", r.Method,
			"url", r.URL.Path,
			"path", path,
		)

		items, err := Resolve(n.Items, path)
		if err != nil {
			resolutions.Increment("html", "error")
			slog.Error("failed to resolve navigation", "error", err)
			http.Error(w, "invalid navigation configuration", http.StatusInternalServerError)
			return
		}

		resolutions.Increment("html", outcome(items))

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)

		if err := rd.Render(w, items); err != nil {
			slog.Error("failed to render navigation partial", "error", err)
			return
		}
	})
}

// outcome classifies a resolved list for metric labeling.
func outcome(items []ResolvedItem) string {
	for i := range items {
		if items[i].Active {
			return "match"
		}
	}

	return "no_match"
}
