package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTechnology(t *testing.T) {
	tests := []struct {
		raw  string
		want Technology
	}{
		{"React", Technology{Name: "React"}},
		{"React:react", Technology{Name: "React", IconSlug: "react"}},
		// only the last colon separates the slug
		{"Node.js:v2:nodejs", Technology{Name: "Node.js:v2", IconSlug: "nodejs"}},
		{":go", Technology{Name: "", IconSlug: "go"}},
		{"", Technology{}},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseTechnology(tc.raw))
		})
	}
}

func TestTechnologyString(t *testing.T) {
	assert.Equal(t, "React", Technology{Name: "React"}.String())
	assert.Equal(t, "React:react", Technology{Name: "React", IconSlug: "react"}.String())
}

func TestTechnologyUnmarshalAcceptsBothForms(t *testing.T) {
	var fromObject Technology
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Go","iconSlug":"go"}`), &fromObject))
	assert.Equal(t, Technology{Name: "Go", IconSlug: "go"}, fromObject)

	var fromString Technology
	require.NoError(t, json.Unmarshal([]byte(`"Go:go"`), &fromString))
	assert.Equal(t, Technology{Name: "Go", IconSlug: "go"}, fromString)

	var list []Technology
	require.NoError(t, json.Unmarshal([]byte(`["React:react",{"name":"Postgres"}]`), &list))
	assert.Equal(t, []Technology{{Name: "React", IconSlug: "react"}, {Name: "Postgres"}}, list)
}
