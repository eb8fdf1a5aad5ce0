package nav

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCounter captures metric increments for assertion.
type recordingCounter struct {
	calls [][]string
}

func (c *recordingCounter) Increment(val ...string) {
	c.calls = append(c.calls, val)
}

func testNavigation() *Navigation {
	return &Navigation{
		Title: "Admin",
		Items: []Item{
			{Label: "Dashboard", URL: "/admin", SortOrder: 1},
			{Label: "Users", URL: "/admin/users", SortOrder: 2, Badge: CountBadge(4)},
		},
	}
}

func TestHandler_ResolvesQueryPath(t *testing.T) {
	n := testNavigation()

	req := httptest.NewRequest(http.MethodGet, "/nav?path=/admin/users/", nil)
	rec := httptest.NewRecorder()

	n.Handler(nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got struct {
		Title string         `json:"title"`
		Path  string         `json:"path"`
		Items []ResolvedItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, "Admin", got.Title)
	assert.Equal(t, "/admin/users/", got.Path)
	require.Len(t, got.Items, 2)
	assert.False(t, got.Items[0].Active)
	assert.True(t, got.Items[1].Active)
	require.NotNil(t, got.Items[1].Badge)
	assert.Equal(t, 4, got.Items[1].Badge.Count)
}

func TestHandler_DefaultPathFallback(t *testing.T) {
	n := testNavigation()
	n.DefaultPath = "/admin"

	req := httptest.NewRequest(http.MethodGet, "/nav", nil)
	rec := httptest.NewRecorder()

	n.Handler(nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got resolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, "/admin", got.Path)
	assert.True(t, got.Items[0].Active)
}

func TestHandler_RequestPathFallback(t *testing.T) {
	n := &Navigation{
		Items: []Item{{Label: "Nav", URL: "/nav"}},
	}

	req := httptest.NewRequest(http.MethodGet, "/nav", nil)
	rec := httptest.NewRecorder()

	n.Handler(nil).ServeHTTP(rec, req)

	var got resolution
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.True(t, got.Items[0].Active)
}

func TestHandler_InvalidConfiguration(t *testing.T) {
	n := &Navigation{
		Items: []Item{{URL: "/broken"}},
	}

	counter := &recordingCounter{}
	req := httptest.NewRequest(http.MethodGet, "/nav", nil)
	rec := httptest.NewRecorder()

	n.Handler(counter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Len(t, counter.calls, 1)
	assert.Equal(t, []string{"json", "error"}, counter.calls[0])
}

func TestHandler_CountsOutcome(t *testing.T) {
	n := testNavigation()
	counter := &recordingCounter{}
	h := n.Handler(counter)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nav?path=/admin", nil))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nav?path=/elsewhere", nil))

	require.Len(t, counter.calls, 2)
	assert.Equal(t, []string{"json", "match"}, counter.calls[0])
	assert.Equal(t, []string{"json", "no_match"}, counter.calls[1])
}

func TestPartialHandler(t *testing.T) {
	n := testNavigation()
	counter := &recordingCounter{}

	req := httptest.NewRequest(http.MethodGet, "/nav/partial?path=/admin", nil)
	rec := httptest.NewRecorder()

	n.PartialHandler(NewRenderer(n.AriaLabel), counter).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `<nav class="bottom-nav"`)
	assert.Contains(t, body, `aria-current="page"`)
	assert.Contains(t, body, `href="/admin"`)

	require.Len(t, counter.calls, 1)
	assert.Equal(t, []string{"html", "match"}, counter.calls[0])
}

func TestPartialHandler_InvalidConfiguration(t *testing.T) {
	n := &Navigation{
		Items: []Item{{Label: "NoURL"}},
	}

	req := httptest.NewRequest(http.MethodGet, "/nav/partial", nil)
	rec := httptest.NewRecorder()

	n.PartialHandler(NewRenderer(""), nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
