package cdnrepo

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareTagSettings(t *testing.T) {
	tests := []struct {
		name     string
		current  TagSetting
		desired  TagSetting
		expected []string
	}{
		{
			name:     "both unrestricted",
			current:  TagSetting{},
			desired:  TagSetting{},
			expected: nil,
		},
		{
			name:     "same variant",
			current:  TagSetting{Variant: strPtr("V1")},
			desired:  TagSetting{Variant: strPtr("V1")},
			expected: nil,
		},
		{
			name:    "removing variant",
			current: TagSetting{Variant: strPtr("V1")},
			desired: TagSetting{},
			expected: []string{
				`removing "V1" variant from foo "beta" tag template`,
			},
		},
		{
			name:    "adding variant",
			current: TagSetting{},
			desired: TagSetting{Variant: strPtr("V1")},
			expected: []string{
				`adding "V1" variant to foo "beta" tag template`,
			},
		},
		{
			name:    "changing variant",
			current: TagSetting{Variant: strPtr("V1")},
			desired: TagSetting{Variant: strPtr("V2")},
			expected: []string{
				`changing foo "beta" variant from "V1" to "V2"`,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, compareTagSettings("foo", "beta", tc.current, tc.desired))
		})
	}
}

// Check mode never touches the client, so a nil client proves no mutating
// call can possibly be issued while still exercising the full diff walk.
func TestEnsurePackageTags_CheckMode(t *testing.T) {
	current := map[string]CurrentTag{
		"stale":  {ID: 1},
		"keep":   {ID: 2},
		"modify": {ID: 3, Variant: strPtr("V1")},
	}
	desired := map[string]TagSetting{
		"keep":   {},
		"modify": {},
		"fresh":  {Variant: strPtr("V2")},
	}

	changes, err := ensurePackageTags(context.Background(), nil, "repo1", "foo", true, current, desired)
	require.NoError(t, err)

	expected := []string{
		`removing "stale" tag template from "foo"`,
		`removing "V1" variant from foo "modify" tag template`,
		`adding "fresh" tag template to "foo"`,
	}
	assert.Equal(t, expected, changes)
}

// Every template in current union desired must land in exactly one of the
// delete/modify/add categories.
func TestEnsurePackageTags_PartitionsTemplates(t *testing.T) {
	current := map[string]CurrentTag{
		"a": {ID: 1},
		"b": {ID: 2, Variant: strPtr("V1")},
		"c": {ID: 3},
	}
	desired := map[string]TagSetting{
		"b": {Variant: strPtr("V2")},
		"c": {},
		"d": {},
		"e": {Variant: strPtr("V1")},
	}

	changes, err := ensurePackageTags(context.Background(), nil, "repo1", "pkg", true, current, desired)
	require.NoError(t, err)

	mentioned := map[string]int{}
	for _, change := range changes {
		for template := range map[string]struct{}{"a": {}, "b": {}, "c": {}, "d": {}, "e": {}} {
			if strings.Contains(change, `"`+template+`"`) {
				mentioned[template]++
			}
		}
	}

	// a deleted, b modified, d and e added; c is unchanged on both sides.
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "d": 1, "e": 1}, mentioned)
	assert.Len(t, changes, 4)
}

func TestEnsurePackageTags_NoChanges(t *testing.T) {
	current := map[string]CurrentTag{
		"latest": {ID: 1},
		"beta":   {ID: 2, Variant: strPtr("V1")},
	}
	desired := map[string]TagSetting{
		"latest": {},
		"beta":   {Variant: strPtr("V1")},
	}

	changes, err := ensurePackageTags(context.Background(), nil, "repo1", "foo", true, current, desired)
	require.NoError(t, err)
	assert.Empty(t, changes)
}
