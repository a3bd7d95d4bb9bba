package formatting

import (
	"encoding/json"
	"io"

	"etctl/internal/cdnrepo"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct{}

// FormatRepo renders the repository as an indented JSON document.
func (f *JSONFormatter) FormatRepo(out io.Writer, repo *cdnrepo.Repo, packages cdnrepo.CurrentPackages) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(repoForOutput(repo, packages))
}
