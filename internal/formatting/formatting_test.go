package formatting

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"etctl/internal/cdnrepo"
)

func sampleRepo() (*cdnrepo.Repo, cdnrepo.CurrentPackages) {
	variant := "8Base-FOO-1.0-Tools"
	repo := &cdnrepo.Repo{
		ID: 42,
		Attrs: map[string]interface{}{
			"id":            42,
			"name":          "redhat-foo-tools",
			"release_type":  "Primary",
			"content_type":  "Docker",
			"arch":          "multi",
			"use_for_tps":   false,
			"variants":      []string{"8Base-FOO-1.0-Tools"},
			"package_names": []string{"foo-container"},
		},
	}
	packages := cdnrepo.CurrentPackages{
		"foo-container": {
			"latest":    {ID: 1},
			"latest-v2": {ID: 2, Variant: &variant},
		},
	}
	return repo, packages
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"table", "yaml", "json"} {
		format, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(format))
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available formats: table, yaml, json")
}

func TestYAMLFormatter_RoundTrips(t *testing.T) {
	repo, packages := sampleRepo()

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).FormatRepo(&buf, repo, packages))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "redhat-foo-tools", decoded["name"])
	assert.NotContains(t, decoded, "package_names", "packages replaces the derived key")

	// Tags come back in declaration shape: bare strings and single-key
	// variant mappings.
	pkgs, ok := decoded["packages"].(map[string]interface{})
	require.True(t, ok)
	tags, ok := pkgs["foo-container"].([]interface{})
	require.True(t, ok)
	require.Len(t, tags, 2)
	assert.Equal(t, "latest", tags[0])
	assert.Equal(t, map[string]interface{}{
		"latest-v2": map[string]interface{}{"variant": "8Base-FOO-1.0-Tools"},
	}, tags[1])
}

func TestJSONFormatter_RoundTrips(t *testing.T) {
	repo, packages := sampleRepo()

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).FormatRepo(&buf, repo, packages))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "redhat-foo-tools", decoded["name"])
	assert.NotContains(t, decoded, "package_names")
}

func TestTableFormatter(t *testing.T) {
	repo, packages := sampleRepo()

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).FormatRepo(&buf, repo, packages))

	output := buf.String()
	assert.Contains(t, output, "redhat-foo-tools")
	assert.Contains(t, output, "FIELD")
	assert.Contains(t, output, "PACKAGE")
	assert.Contains(t, output, "latest-v2")
	assert.Contains(t, output, "8Base-FOO-1.0-Tools")
}

func TestTableFormatter_NoTagTableWithoutPackages(t *testing.T) {
	repo, _ := sampleRepo()

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).FormatRepo(&buf, repo, cdnrepo.CurrentPackages{}))

	assert.NotContains(t, buf.String(), "TAG TEMPLATE")
}
