package cdnrepo

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"etctl/internal/errata"
)

// PageSize is the fixed page size for the package tag listing.
const PageSize = 100

const (
	cdnReposEndpoint    = "api/v1/cdn_repos"
	packageTagsEndpoint = "api/v1/cdn_repo_package_tags"
)

// RESTClient is the narrow transport surface the reconciler needs.
type RESTClient interface {
	Get(ctx context.Context, endpoint string, params url.Values) (*errata.Response, error)
	Post(ctx context.Context, endpoint string, body interface{}) (*errata.Response, error)
	Put(ctx context.Context, endpoint string, body interface{}) (*errata.Response, error)
	Delete(ctx context.Context, endpoint string) (*errata.Response, error)
}

// repoRecord is the wire shape of one cdn_repos element.
type repoRecord struct {
	ID            int                    `json:"id"`
	Attributes    map[string]interface{} `json:"attributes"`
	Relationships struct {
		Arch struct {
			Name string `json:"name"`
		} `json:"arch"`
		Variants []struct {
			Name string `json:"name"`
		} `json:"variants"`
		Packages []struct {
			Name string `json:"name"`
		} `json:"packages"`
	} `json:"relationships"`
}

// assembleRepo flattens a wire record into the comparable Repo shape. The
// read API reports arch, variants and packages as relationships; the
// flattened record carries them as plain attribute keys.
func assembleRepo(record repoRecord) *Repo {
	attrs := make(map[string]interface{}, len(record.Attributes)+4)
	for key, value := range record.Attributes {
		attrs[key] = value
	}
	attrs["id"] = record.ID
	attrs["arch"] = record.Relationships.Arch.Name

	variants := make([]string, 0, len(record.Relationships.Variants))
	for _, variant := range record.Relationships.Variants {
		variants = append(variants, variant.Name)
	}
	attrs["variants"] = variants

	names := make([]string, 0, len(record.Relationships.Packages))
	for _, pkg := range record.Relationships.Packages {
		names = append(names, pkg.Name)
	}
	attrs["package_names"] = names

	return &Repo{ID: record.ID, Attrs: attrs}
}

// GetRepo looks up a CDN repository by its unique name. A nil Repo with a
// nil error means the repository does not exist yet; more than one match
// is a ConflictError.
func GetRepo(ctx context.Context, client RESTClient, name string) (*Repo, error) {
	params := url.Values{}
	params.Set("filter[name]", name)
	resp, err := client.Get(ctx, cdnReposEndpoint, params)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errata.NewAPIError(http.MethodGet, cdnReposEndpoint, resp)
	}

	var payload struct {
		Data []repoRecord `json:"data"`
	}
	if err := resp.JSON(&payload); err != nil {
		return nil, fmt.Errorf("decoding cdn_repos response: %w", err)
	}
	if len(payload.Data) == 0 {
		return nil, nil
	}
	if len(payload.Data) > 1 {
		return nil, &ConflictError{ResourceType: "cdn repo", ResourceName: name, Count: len(payload.Data)}
	}
	return assembleRepo(payload.Data[0]), nil
}

// packageTagRecord is the wire shape of one cdn_repo_package_tags element.
type packageTagRecord struct {
	ID         int `json:"id"`
	Attributes struct {
		TagTemplate string `json:"tag_template"`
	} `json:"attributes"`
	Relationships struct {
		Package struct {
			Name string `json:"name"`
		} `json:"package"`
		Variant *struct {
			Name string `json:"name"`
		} `json:"variant"`
	} `json:"relationships"`
}

func getPackageTagsPage(ctx context.Context, client RESTClient, name string, pageNumber int) ([]packageTagRecord, error) {
	params := url.Values{}
	params.Set("page[size]", strconv.Itoa(PageSize))
	params.Set("page[number]", strconv.Itoa(pageNumber))
	params.Set("filter[cdn_repo_name]", name)
	resp, err := client.Get(ctx, packageTagsEndpoint, params)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errata.NewAPIError(http.MethodGet, packageTagsEndpoint, resp)
	}

	var payload struct {
		Data []packageTagRecord `json:"data"`
	}
	if err := resp.JSON(&payload); err != nil {
		return nil, fmt.Errorf("decoding cdn_repo_package_tags page %d: %w", pageNumber, err)
	}
	return payload.Data, nil
}

// GetPackageTags looks up the variant restrictions for every package tag
// of this repository, reassembling the paginated listing into the
// canonical mapping.
//
// The listing carries no total count, so the loop keeps fetching while a
// page came back full; an exactly-full final page costs one extra, empty
// request. Packages with zero tags never appear in this listing at all:
// discover them through the repository record and merge with
// withPackageNames.
func GetPackageTags(ctx context.Context, client RESTClient, name string) (CurrentPackages, error) {
	var elements []packageTagRecord
	for pageNumber := 1; ; pageNumber++ {
		found, err := getPackageTagsPage(ctx, client, name, pageNumber)
		if err != nil {
			return nil, err
		}
		elements = append(elements, found...)
		if len(found) < PageSize {
			break
		}
	}

	packages := CurrentPackages{}
	for _, element := range elements {
		packageName := element.Relationships.Package.Name
		if packages[packageName] == nil {
			packages[packageName] = map[string]CurrentTag{}
		}
		tag := CurrentTag{ID: element.ID}
		if element.Relationships.Variant != nil {
			variantName := element.Relationships.Variant.Name
			tag.Variant = &variantName
		}
		packages[packageName][element.Attributes.TagTemplate] = tag
	}
	return packages, nil
}

// withPackageNames fills in an empty tag map for every named package the
// tag listing omitted. The repository record and the tag listing report
// different package universes; together they are complete.
func (c CurrentPackages) withPackageNames(names []string) CurrentPackages {
	for _, name := range names {
		if c[name] == nil {
			c[name] = map[string]CurrentTag{}
		}
	}
	return c
}

// CurrentState fetches the repository record and its reassembled package
// tag mapping in one call. A nil Repo means the repository does not exist.
func CurrentState(ctx context.Context, client RESTClient, name string) (*Repo, CurrentPackages, error) {
	repo, err := GetRepo(ctx, client, name)
	if err != nil || repo == nil {
		return repo, nil, err
	}
	packages, err := GetPackageTags(ctx, client, name)
	if err != nil {
		return nil, nil, err
	}
	return repo, packages.withPackageNames(repo.packageNames()), nil
}
