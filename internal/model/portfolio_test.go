package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProjectsRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		projects Projects
	}{
		{name: "empty", projects: Projects{}},
		{name: "single without url", projects: Projects{
			{ProjectName: "CLI", ProjectDescription: "A tool", Technologies: "Go"},
		}},
		{name: "ordered with unicode", projects: Projects{
			{ProjectName: "Zeta", ProjectURL: strPtr("https://z.example"), ProjectDescription: "Überarbeitet — v2\nline two", Technologies: "Go, SQLite"},
			{ProjectName: "Alpha", ProjectURL: strPtr(""), ProjectDescription: `quotes "and" \ slashes`, Technologies: ""},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeProjects(tt.projects)
			require.NoError(t, err)

			decoded, err := DecodeProjects(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.projects, decoded)
		})
	}
}

func TestEncodeProjects_Nil(t *testing.T) {
	encoded, err := EncodeProjects(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestProjectsValueScan(t *testing.T) {
	in := Projects{{ProjectName: "Site", ProjectURL: strPtr("https://x.example"), ProjectDescription: "d", Technologies: "t"}}

	v, err := in.Value()
	require.NoError(t, err)

	var fromString, fromBytes Projects
	require.NoError(t, fromString.Scan(v))
	require.NoError(t, fromBytes.Scan([]byte(v.(string))))
	assert.Equal(t, in, fromString)
	assert.Equal(t, in, fromBytes)

	var fromNil Projects
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)

	assert.Error(t, fromNil.Scan(42))
	assert.Error(t, fromNil.Scan("{not json"))
}

func TestPortfolioClone(t *testing.T) {
	orig := Portfolio{FullName: "Jane Doe", Projects: Projects{{ProjectName: "A", ProjectDescription: "old"}}}

	cp := orig.Clone()
	cp.Projects[0].ProjectDescription = "new"

	assert.Equal(t, "old", orig.Projects[0].ProjectDescription)
	assert.Equal(t, "Jane Doe", cp.FullName)
}
