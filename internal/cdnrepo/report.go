package cdnrepo

import (
	"etctl/internal/settings"
)

// diffKeysToCopy are read-only, server-derived attributes carried from the
// before side into the after side of the diff payload so they do not show
// up as spurious removals.
//
// quay_enabled derives from the product version. external_name is readonly
// today but probably will not be once docker-pulp goes away.
var diffKeysToCopy = []string{"quay_enabled", "external_name"}

// tagForDisplay renders one canonical tag back into the declared style: a
// bare string when unrestricted, a single-key mapping when restricted.
func tagForDisplay(tagTemplate string, setting TagSetting) interface{} {
	if setting.Variant == nil {
		return tagTemplate
	}
	return map[string]interface{}{
		tagTemplate: map[string]interface{}{"variant": *setting.Variant},
	}
}

// packageListForDiff re-expresses the canonical mapping in the declared
// list-of-tags shape, sorted by tag template so output is deterministic.
func packageListForDiff(packages DesiredPackages) map[string]interface{} {
	result := make(map[string]interface{}, len(packages))
	for packageName, tags := range packages {
		list := make([]interface{}, 0, len(tags))
		for _, tagTemplate := range sortedKeys(tags) {
			list = append(list, tagForDisplay(tagTemplate, tags[tagTemplate]))
		}
		result[packageName] = list
	}
	return result
}

// ForDisplay renders the remote mapping in the declared list-of-tags
// shape, for the read-only inspection surface.
func (c CurrentPackages) ForDisplay() map[string]interface{} {
	return packageListForDiff(c.Settings())
}

// prepareDiffData builds the structured before/after payload for one
// repository. The packages mapping replaces the redundant derived
// package_names key on both sides. A nil before means the repository is
// being created.
func prepareDiffData(before, after map[string]interface{}, beforePackages, afterPackages DesiredPackages, name string) *settings.DiffData {
	after = copyAttrs(after)
	after["packages"] = packageListForDiff(afterPackages)
	delete(after, "package_names")

	if before != nil {
		before = copyAttrs(before)
		before["packages"] = packageListForDiff(beforePackages)
		delete(before, "package_names")
	}

	return settings.TaskDiffData(before, after, name, "cdn repo", diffKeysToCopy, nil)
}

func copyAttrs(attrs map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(attrs))
	for key, value := range attrs {
		copied[key] = value
	}
	return copied
}
