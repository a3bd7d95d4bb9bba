package cdnrepo

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ReleaseTypes are the accepted release_type values. The release type can
// be chosen when creating a repository but not changed afterwards.
var ReleaseTypes = []string{"Primary", "EUS", "LongLife"}

// ContentTypes are the accepted content_type values. Like the release
// type, the content type is immutable once the repository exists.
var ContentTypes = []string{"Binary", "Debuginfo", "Source", "Docker"}

// Arches are the accepted arch values. "multi" is only valid (and
// mandatory) for Docker repositories.
var Arches = []string{
	"i386", "ia64", "s390", "x86_64", "s390x", "ppc", "ppc64", "aarch64",
	"ppc64le", "multi",
}

const (
	// ContentTypeDocker identifies container repositories, which carry
	// extra constraints (arch "multi", no TPS scheduling, packages).
	ContentTypeDocker = "Docker"

	// ArchMulti is the only arch the server accepts for Docker repos.
	ArchMulti = "multi"

	// ArchDefault is the server's arch default for non-Docker repos.
	ArchDefault = "x86_64"
)

// Params is the declared configuration for one CDN repository.
type Params struct {
	Name        string               `yaml:"name"`
	ReleaseType string               `yaml:"release_type"`
	ContentType string               `yaml:"content_type"`
	Arch        string               `yaml:"arch,omitempty"`
	UseForTPS   bool                 `yaml:"use_for_tps,omitempty"`
	Variants    []string             `yaml:"variants"`
	Packages    map[string][]TagSpec `yaml:"packages,omitempty"`
}

// settings returns the declared parameters in the flat shape the settings
// differ consumes. package_names is derived from the packages mapping; tag
// detail is reconciled separately against the tag listing API.
func (p Params) settings() map[string]interface{} {
	names := make([]string, 0, len(p.Packages))
	for name := range p.Packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return map[string]interface{}{
		"name":          p.Name,
		"release_type":  p.ReleaseType,
		"content_type":  p.ContentType,
		"arch":          p.Arch,
		"use_for_tps":   p.UseForTPS,
		"variants":      p.Variants,
		"package_names": names,
	}
}

// TagSpec is one declared tag for a package: a bare tag template, or a
// template restricted to a single variant. The two declared shapes (a
// plain string, or a single-key mapping carrying a variant restriction)
// are resolved here, at the declaration boundary; nothing downstream
// branches on shape again.
type TagSpec struct {
	Template string
	Variant  *string
}

// UnmarshalYAML decodes either declared shape:
//
//	- latest
//	- my-restricted-tag:
//	    variant: 8Base-FOO-1.0-Tools
func (t *TagSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag != "!!str" {
			return &ValidationError{Message: fmt.Sprintf("unexpected tag declaration %q: must be a string or a single-key mapping", node.Value)}
		}
		t.Template = node.Value
		t.Variant = nil
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return &ValidationError{Message: fmt.Sprintf("tag declaration mapping must have exactly one key, got %d", len(node.Content)/2)}
		}
		var template string
		if err := node.Content[0].Decode(&template); err != nil {
			return &ValidationError{Message: fmt.Sprintf("tag declaration key: %v", err)}
		}
		var restriction struct {
			Variant string `yaml:"variant"`
		}
		if err := node.Content[1].Decode(&restriction); err != nil {
			return &ValidationError{Message: fmt.Sprintf("tag %q restriction: %v", template, err)}
		}
		t.Template = template
		if restriction.Variant != "" {
			t.Variant = &restriction.Variant
		} else {
			t.Variant = nil
		}
		return nil
	default:
		return &ValidationError{Message: "unexpected tag declaration: must be a string or a single-key mapping"}
	}
}

// MarshalYAML renders the declared shape back out: a bare string for an
// unrestricted tag, a single-key mapping otherwise.
func (t TagSpec) MarshalYAML() (interface{}, error) {
	if t.Variant == nil {
		return t.Template, nil
	}
	return map[string]map[string]string{
		t.Template: {"variant": *t.Variant},
	}, nil
}

// TagSetting is the canonical per-template value shared by declared and
// remote state. A nil Variant means the tag applies to all variants of the
// repository.
type TagSetting struct {
	Variant *string
}

// CurrentTag is one remote tag association: the canonical setting plus the
// remote identity needed to edit or delete it.
type CurrentTag struct {
	ID      int
	Variant *string
}

// DesiredPackages is the canonical packages mapping:
// package name -> tag template -> setting. Keying the inner map by
// template makes templates unique per package by construction.
type DesiredPackages map[string]map[string]TagSetting

// CurrentPackages is the remote counterpart of DesiredPackages, carrying
// the remote identity of every association. A package present with an
// empty inner map exists on the repository but has no tags.
type CurrentPackages map[string]map[string]CurrentTag

// Settings drops the remote identities, leaving the canonical shape shared
// with declared state.
func (c CurrentPackages) Settings() DesiredPackages {
	settings := make(DesiredPackages, len(c))
	for packageName, tags := range c {
		converted := make(map[string]TagSetting, len(tags))
		for tagTemplate, tag := range tags {
			converted[tagTemplate] = TagSetting{Variant: tag.Variant}
		}
		settings[packageName] = converted
	}
	return settings
}

// Repo is the live CDN repository record, flattened for comparison with
// declared parameters. Attrs carries every attribute the server reported
// plus the relationship-derived arch, variants and package_names keys.
type Repo struct {
	ID    int
	Attrs map[string]interface{}
}

// Name returns the repository name from the record attributes.
func (r *Repo) Name() string {
	name, _ := r.Attrs["name"].(string)
	return name
}

func (r *Repo) packageNames() []string {
	names, _ := r.Attrs["package_names"].([]string)
	return names
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
