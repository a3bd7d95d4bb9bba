package formatting

import (
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"etctl/internal/cdnrepo"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct{}

// FormatRepo renders the repository attributes as a field/value table,
// followed by one row per package tag association.
func (f *TableFormatter) FormatRepo(out io.Writer, repo *cdnrepo.Repo, packages cdnrepo.CurrentPackages) error {
	attrs := table.NewWriter()
	attrs.SetOutputMirror(out)
	attrs.AppendHeader(table.Row{"Field", "Value"})
	keys := make([]string, 0, len(repo.Attrs))
	for key := range repo.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := repo.Attrs[key]
		// Multi-valued attributes read better one per line.
		if list, ok := value.([]string); ok {
			value = strings.Join(list, "\n")
		}
		attrs.AppendRow(table.Row{key, value})
	}
	attrs.Render()

	if len(packages) == 0 {
		return nil
	}

	tags := table.NewWriter()
	tags.SetOutputMirror(out)
	tags.AppendHeader(table.Row{"Package", "Tag template", "Variant"})
	packageNames := make([]string, 0, len(packages))
	for packageName := range packages {
		packageNames = append(packageNames, packageName)
	}
	sort.Strings(packageNames)
	for _, packageName := range packageNames {
		templates := make([]string, 0, len(packages[packageName]))
		for tagTemplate := range packages[packageName] {
			templates = append(templates, tagTemplate)
		}
		sort.Strings(templates)
		for _, tagTemplate := range templates {
			variant := ""
			if v := packages[packageName][tagTemplate].Variant; v != nil {
				variant = *v
			}
			tags.AppendRow(table.Row{packageName, tagTemplate, variant})
		}
	}
	tags.Render()
	return nil
}
