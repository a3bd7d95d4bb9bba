package cdnrepo

// Normalize converts the declared packages mapping into the canonical
// template-keyed form. Keying by template deduplicates repeated templates
// within a package: templates must be unique per package, and the
// canonical form enforces that by construction rather than rejecting
// duplicates. With repeated templates the last occurrence wins.
func Normalize(packages map[string][]TagSpec) DesiredPackages {
	normalized := make(DesiredPackages, len(packages))
	for packageName, tags := range packages {
		settings := make(map[string]TagSetting, len(tags))
		for _, tag := range tags {
			settings[tag.Template] = TagSetting{Variant: tag.Variant}
		}
		normalized[packageName] = settings
	}
	return normalized
}
