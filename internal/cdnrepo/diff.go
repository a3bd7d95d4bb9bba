package cdnrepo

import (
	"context"
	"fmt"
)

// compareTagSettings describes the changes needed to move one tag template
// from its stored settings to the desired settings. Only the variant
// restriction is compared today; further per-tag settings would slot in
// here.
func compareTagSettings(packageName, tagTemplate string, current, desired TagSetting) []string {
	switch {
	case current.Variant == nil && desired.Variant == nil:
		return nil
	case current.Variant != nil && desired.Variant == nil:
		return []string{fmt.Sprintf("removing %q variant from %s %q tag template",
			*current.Variant, packageName, tagTemplate)}
	case current.Variant == nil && desired.Variant != nil:
		return []string{fmt.Sprintf("adding %q variant to %s %q tag template",
			*desired.Variant, packageName, tagTemplate)}
	case *current.Variant == *desired.Variant:
		return nil
	default:
		return []string{fmt.Sprintf("changing %s %q variant from %q to %q",
			packageName, tagTemplate, *current.Variant, *desired.Variant)}
	}
}

// ensurePackageTags converges the tag set for one package and returns the
// human-readable changes. Deletions run before modifications, which run
// before additions, so a template or variant moving within the package
// never collides with its own old association mid-run. Templates are
// walked in sorted order purely so reports are stable.
func ensurePackageTags(ctx context.Context, client RESTClient, repoName, packageName string, checkMode bool, currentTags map[string]CurrentTag, desiredTags map[string]TagSetting) ([]string, error) {
	var changes []string

	// Tags to remove.
	for _, tagTemplate := range sortedKeys(currentTags) {
		if _, wanted := desiredTags[tagTemplate]; wanted {
			continue
		}
		changes = append(changes, fmt.Sprintf("removing %q tag template from %q", tagTemplate, packageName))
		if checkMode {
			continue
		}
		if err := deletePackageTag(ctx, client, currentTags[tagTemplate].ID); err != nil {
			return changes, err
		}
	}

	// Tags to modify (change the variant restriction).
	for _, tagTemplate := range sortedKeys(currentTags) {
		desiredTag, wanted := desiredTags[tagTemplate]
		if !wanted {
			continue
		}
		currentTag := currentTags[tagTemplate]
		differences := compareTagSettings(packageName, tagTemplate, TagSetting{Variant: currentTag.Variant}, desiredTag)
		if len(differences) == 0 {
			continue
		}
		changes = append(changes, differences...)
		if checkMode {
			continue
		}
		if err := editPackageTag(ctx, client, currentTag.ID, desiredTag); err != nil {
			return changes, err
		}
	}

	// Tags to add.
	for _, tagTemplate := range sortedKeys(desiredTags) {
		if _, exists := currentTags[tagTemplate]; exists {
			continue
		}
		changes = append(changes, fmt.Sprintf("adding %q tag template to %q", tagTemplate, packageName))
		if checkMode {
			continue
		}
		if err := addPackageTag(ctx, client, repoName, packageName, tagTemplate, desiredTags[tagTemplate].Variant); err != nil {
			return changes, err
		}
	}

	return changes, nil
}

// ensurePackagesTags converges the tags for every package known on either
// side: the declared mapping, the tag listing, and the zero-tag packages
// named only on the repository record. Packages are independent, so the
// name ordering only serves report stability.
//
// The reassembled current state is returned alongside the changes so the
// caller can build the before side of the diff payload.
func ensurePackagesTags(ctx context.Context, client RESTClient, repoName string, checkMode bool, desired DesiredPackages, repoPackageNames []string) ([]string, CurrentPackages, error) {
	current, err := GetPackageTags(ctx, client, repoName)
	if err != nil {
		return nil, nil, err
	}
	current = current.withPackageNames(repoPackageNames)

	universe := map[string]struct{}{}
	for packageName := range current {
		universe[packageName] = struct{}{}
	}
	for packageName := range desired {
		universe[packageName] = struct{}{}
	}

	var changes []string
	for _, packageName := range sortedKeys(universe) {
		packageChanges, err := ensurePackageTags(ctx, client, repoName, packageName, checkMode,
			current[packageName], desired[packageName])
		changes = append(changes, packageChanges...)
		if err != nil {
			return changes, current, err
		}
	}
	return changes, current, nil
}
