// Package formatting renders fetched server state for the read-only
// inspection commands, with support for multiple output formats (table,
// YAML, JSON).
package formatting

import (
	"fmt"
	"io"
	"strings"

	"etctl/internal/cdnrepo"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatTable OutputFormat = "table" // Rich table output
	FormatYAML  OutputFormat = "yaml"  // YAML output
	FormatJSON  OutputFormat = "json"  // JSON output
)

// Formats lists the accepted output format names.
var Formats = []OutputFormat{FormatTable, FormatYAML, FormatJSON}

// ParseFormat resolves a format name from a CLI flag.
func ParseFormat(name string) (OutputFormat, error) {
	for _, format := range Formats {
		if name == string(format) {
			return format, nil
		}
	}
	names := make([]string, 0, len(Formats))
	for _, format := range Formats {
		names = append(names, string(format))
	}
	return "", fmt.Errorf("unknown output format '%s'. Available formats: %s", name, strings.Join(names, ", "))
}

// Formatter renders one repository and its package tag mappings.
type Formatter interface {
	FormatRepo(out io.Writer, repo *cdnrepo.Repo, packages cdnrepo.CurrentPackages) error
}

// NewFormatter creates the appropriate formatter for the format.
func NewFormatter(format OutputFormat) Formatter {
	switch format {
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatJSON:
		return &JSONFormatter{}
	case FormatTable:
		fallthrough
	default:
		return &TableFormatter{}
	}
}

// repoForOutput flattens the repository and its package tags into one
// structure for serialized output, replacing the derived package_names key
// with the full packages mapping.
func repoForOutput(repo *cdnrepo.Repo, packages cdnrepo.CurrentPackages) map[string]interface{} {
	output := make(map[string]interface{}, len(repo.Attrs)+1)
	for key, value := range repo.Attrs {
		output[key] = value
	}
	delete(output, "package_names")
	output["packages"] = packages.ForDisplay()
	return output
}
