package cdnrepo

import (
	"context"
	"fmt"
	"net/http"

	"etctl/internal/errata"
	"etctl/internal/settings"
)

// cdnRepoAPIData translates flattened settings into the wire shape the
// mutate API expects. The read APIs report "arch" and "variants"; the
// mutate API wants "arch_name" and "variant_names" for the same semantic
// attributes.
func cdnRepoAPIData(flat map[string]interface{}) map[string]interface{} {
	cdnRepo := make(map[string]interface{}, len(flat))
	for key, value := range flat {
		switch key {
		case "arch":
			cdnRepo["arch_name"] = value
		case "variants":
			cdnRepo["variant_names"] = value
		default:
			cdnRepo[key] = value
		}
	}
	return map[string]interface{}{"cdn_repo": cdnRepo}
}

// createRepo creates the repository and assembles the record from the
// creation response, saving the follow-up lookup.
func createRepo(ctx context.Context, client RESTClient, declared map[string]interface{}) (*Repo, error) {
	resp, err := client.Post(ctx, cdnReposEndpoint, cdnRepoAPIData(declared))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, errata.NewAPIError(http.MethodPost, cdnReposEndpoint, resp)
	}
	var payload struct {
		Data repoRecord `json:"data"`
	}
	if err := resp.JSON(&payload); err != nil {
		return nil, fmt.Errorf("decoding cdn_repos creation response: %w", err)
	}
	return assembleRepo(payload.Data), nil
}

// editRepo applies attribute changes to an existing repository. Only the
// changed keys are sent.
func editRepo(ctx context.Context, client RESTClient, repoID int, changes []settings.Change) error {
	changed := make(map[string]interface{}, len(changes))
	for _, change := range changes {
		changed[change.Key] = change.New
	}
	endpoint := fmt.Sprintf("%s/%d", cdnReposEndpoint, repoID)
	resp, err := client.Put(ctx, endpoint, cdnRepoAPIData(changed))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errata.NewAPIError(http.MethodPut, endpoint, resp)
	}
	return nil
}

// addPackageTag creates one tag association. A nil variant creates the tag
// without a variant restriction.
func addPackageTag(ctx context.Context, client RESTClient, repoName, packageName, tagTemplate string, variant *string) error {
	tagSettings := map[string]interface{}{
		"cdn_repo_name": repoName,
		"package_name":  packageName,
		"tag_template":  tagTemplate,
	}
	if variant != nil {
		tagSettings["variant_name"] = *variant
	}
	resp, err := client.Post(ctx, packageTagsEndpoint, map[string]interface{}{"cdn_repo_package_tag": tagSettings})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return errata.NewAPIError(http.MethodPost, packageTagsEndpoint, resp)
	}
	return nil
}

// editPackageTag updates the variant restriction on one tag association.
// A nil desired variant clears the restriction.
func editPackageTag(ctx context.Context, client RESTClient, tagID int, desired TagSetting) error {
	var tagSettings map[string]interface{}
	if desired.Variant != nil {
		tagSettings = map[string]interface{}{"variant_name": *desired.Variant}
	} else {
		tagSettings = map[string]interface{}{"variant_id": nil}
	}
	endpoint := fmt.Sprintf("%s/%d", packageTagsEndpoint, tagID)
	resp, err := client.Put(ctx, endpoint, map[string]interface{}{"cdn_repo_package_tag": tagSettings})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errata.NewAPIError(http.MethodPut, endpoint, resp)
	}
	return nil
}

// deletePackageTag removes one tag association.
func deletePackageTag(ctx context.Context, client RESTClient, tagID int) error {
	endpoint := fmt.Sprintf("%s/%d", packageTagsEndpoint, tagID)
	resp, err := client.Delete(ctx, endpoint)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return errata.NewAPIError(http.MethodDelete, endpoint, resp)
	}
	return nil
}
