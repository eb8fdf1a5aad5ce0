package nav

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBadge(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *Badge
	}{
		{"nil", nil, nil},
		{"string", "new", TextBadge("new")},
		{"int", 5, CountBadge(5)},
		{"int64", int64(7), CountBadge(7)},
		{"float from yaml", float64(3), CountBadge(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBadge(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBadge_Invalid(t *testing.T) {
	_, err := ParseBadge(true)
	require.Error(t, err)
}

func TestBadge_UnmarshalJSON(t *testing.T) {
	var b Badge

	require.NoError(t, json.Unmarshal([]byte(`3`), &b))
	assert.Equal(t, BadgeCount, b.Kind)
	assert.Equal(t, 3, b.Count)

	require.NoError(t, json.Unmarshal([]byte(`"beta"`), &b))
	assert.Equal(t, BadgeText, b.Kind)
	assert.Equal(t, "beta", b.Text)

	require.Error(t, json.Unmarshal([]byte(`{"nope":1}`), &b))
}

func TestBadge_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(CountBadge(9))
	require.NoError(t, err)
	assert.Equal(t, `9`, string(out))

	out, err = json.Marshal(TextBadge("new"))
	require.NoError(t, err)
	assert.Equal(t, `"new"`, string(out))
}

func TestBadge_String(t *testing.T) {
	var none *Badge
	assert.Equal(t, "", none.String())
	assert.Equal(t, "12", CountBadge(12).String())
	assert.Equal(t, "new", TextBadge("new").String())
}
