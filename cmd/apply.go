package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"etctl/internal/cdnrepo"
	"etctl/internal/config"
	"etctl/internal/errata"
)

var (
	applyFile  string
	applyCheck bool
	applyDiff  bool
	applyQuiet bool
)

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Reconcile declared CDN repositories against the server",
	Long: `Reconcile every CDN repository declared in a YAML file against the
Errata Tool, creating missing repositories and converging attributes,
variant membership and package tags on existing ones.

With --check, etctl reports exactly what a real run would change without
issuing any mutating call.

Examples:
  etctl apply -f cdn-repos.yaml
  etctl apply -f cdn-repos.yaml --check --diff`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "Path to the declaration file (required)")
	applyCmd.MarkFlagRequired("file")
	applyCmd.Flags().BoolVar(&applyCheck, "check", false, "Report what would change without applying anything")
	applyCmd.Flags().BoolVar(&applyDiff, "diff", false, "Show the before/after diff payload for changed repositories")
	applyCmd.Flags().BoolVarP(&applyQuiet, "quiet", "q", false, "Suppress non-essential output")
}

func runApply(cmd *cobra.Command, args []string) error {
	file, err := config.Load(applyFile)
	if err != nil {
		return err
	}
	if len(file.CDNRepos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to reconcile")
		return nil
	}

	client := errata.NewClientFromEnv()
	ctx := cmd.Context()

	changedAny := false
	for _, params := range file.CDNRepos {
		result, err := reconcileRepo(ctx, client, params)
		if err != nil {
			fmt.Fprintln(os.Stderr, text.FgRed.Sprintf("failed to reconcile cdn repo %s", params.Name))
			return err
		}
		printResult(cmd, params.Name, result)
		if result.Changed {
			changedAny = true
		}
	}

	if !changedAny && !applyQuiet {
		fmt.Fprintln(cmd.OutOrStdout(), "ok: nothing to change")
	}
	return nil
}

// reconcileRepo runs one reconcile with a progress spinner unless quiet
// mode is enabled.
func reconcileRepo(ctx context.Context, client *errata.Client, params cdnrepo.Params) (*cdnrepo.Result, error) {
	var s *spinner.Spinner
	if !applyQuiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Reconciling cdn repo %s...", params.Name)
		s.Start()
	}

	result, err := cdnrepo.Ensure(ctx, client, applyCheck, params)

	if s != nil {
		s.Stop()
	}
	return result, err
}

func printResult(cmd *cobra.Command, name string, result *cdnrepo.Result) {
	out := cmd.OutOrStdout()

	if !result.Changed {
		if !applyQuiet {
			fmt.Fprintf(out, "%s: no changes\n", name)
		}
		return
	}

	header := "changed"
	if applyCheck {
		header = "would change"
	}
	fmt.Fprintf(out, "%s: %s\n", name, text.FgYellow.Sprint(header))
	for _, change := range result.Changes {
		fmt.Fprintf(out, "  %s\n", change)
	}

	if applyDiff && result.Diff != nil {
		rendered, err := yaml.Marshal(result.Diff)
		if err != nil {
			fmt.Fprintln(os.Stderr, text.FgRed.Sprintf("failed to render diff for %s: %v", name, err))
			return
		}
		fmt.Fprintf(out, "--- %s\n+++ %s\n%s", result.Diff.BeforeHeader, result.Diff.AfterHeader, rendered)
	}
}
