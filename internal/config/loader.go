package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"etctl/internal/cdnrepo"
	"etctl/pkg/logging"
)

// File is a parsed declaration file: the CDN repositories to reconcile,
// in declaration order.
type File struct {
	CDNRepos []cdnrepo.Params `yaml:"cdn_repos"`
}

// Load reads a declaration file, applies defaults and validates every
// declaration. Validation failures abort before any remote call.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	logging.Info("Config", "loaded %d cdn repo declaration(s) from %s", len(file.CDNRepos), path)
	return file, nil
}

// Parse parses and validates declaration file content.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	for i := range file.CDNRepos {
		ApplyDefaults(&file.CDNRepos[i])
		if err := Validate(file.CDNRepos[i]); err != nil {
			return nil, fmt.Errorf("cdn repo %q: %w", file.CDNRepos[i].Name, err)
		}
	}
	return &file, nil
}
