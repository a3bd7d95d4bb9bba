package cdnrepo

import (
	"context"
	"fmt"

	"etctl/internal/settings"
	"etctl/pkg/logging"
)

// Result is the outcome of reconciling one declared repository.
type Result struct {
	// Changed reports whether anything differed (or, in check mode,
	// would differ).
	Changed bool

	// Changes is the ordered human-readable change list.
	Changes []string

	// Diff is the structured before/after payload, present whenever
	// something changed.
	Diff *settings.DiffData
}

// Ensure reconciles one declared CDN repository against the server,
// creating it when absent and converging attributes, variant membership
// and package tags when present.
//
// In check mode every operation is still computed and described, but no
// mutating call is issued; the change list is identical to what a real run
// would produce from the same starting state. A second run against
// converged state reports no changes.
func Ensure(ctx context.Context, client RESTClient, checkMode bool, params Params) (*Result, error) {
	result := &Result{}
	desired := Normalize(params.Packages)
	declared := params.settings()

	repo, err := GetRepo(ctx, client, params.Name)
	if err != nil {
		return nil, err
	}

	if repo == nil {
		result.Changed = true
		result.Changes = append(result.Changes, fmt.Sprintf("created %s", params.Name))
		result.Diff = prepareDiffData(nil, declared, nil, desired, params.Name)
		if checkMode {
			return result, nil
		}
		repo, err = createRepo(ctx, client, declared)
		if err != nil {
			return nil, err
		}
		logging.Info("CDNRepo", "created cdn repo %s (id %d)", params.Name, repo.ID)
	}

	differences := settings.Diff(repo.Attrs, declared)
	if len(differences) > 0 {
		result.Changed = true
		result.Changes = append(result.Changes, settings.Describe(differences)...)
		if !checkMode {
			if err := editRepo(ctx, client, repo.ID, differences); err != nil {
				return nil, err
			}
			logging.Info("CDNRepo", "edited %d attribute(s) on cdn repo %s", len(differences), params.Name)
		}
	}

	tagChanges, currentPackages, err := ensurePackagesTags(ctx, client, params.Name, checkMode, desired, repo.packageNames())
	if err != nil {
		return nil, err
	}
	if len(tagChanges) > 0 {
		result.Changed = true
		result.Changes = append(result.Changes, tagChanges...)
	}

	// Keep the creation diff if the repository was just created.
	if result.Changed && result.Diff == nil {
		result.Diff = prepareDiffData(repo.Attrs, declared, currentPackages.Settings(), desired, params.Name)
	}

	return result, nil
}
