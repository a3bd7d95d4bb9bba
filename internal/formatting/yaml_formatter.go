package formatting

import (
	"io"

	"gopkg.in/yaml.v3"

	"etctl/internal/cdnrepo"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct{}

// FormatRepo renders the repository as a YAML document in the same shape
// as a declaration file entry, so output can seed new declarations.
func (f *YAMLFormatter) FormatRepo(out io.Writer, repo *cdnrepo.Repo, packages cdnrepo.CurrentPackages) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(repoForOutput(repo, packages)); err != nil {
		return err
	}
	return encoder.Close()
}
