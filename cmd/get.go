package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"etctl/internal/cdnrepo"
	"etctl/internal/errata"
	"etctl/internal/formatting"
)

var getOutputFormat string

// Available resource types for get operations
var getResourceTypes = []string{
	"cdn-repo",
}

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get cdn-repo NAME",
	Short: "Show the current server state of a resource",
	Long: `Show the current state of a resource as the Errata Tool reports it.

Available resource types:
  cdn-repo - A CDN repository with its package tag mappings

Examples:
  etctl get cdn-repo redhat-rhceph-rhceph-4-rhel8
  etctl get cdn-repo redhat-ubi8 -o yaml`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return getResourceTypes, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&getOutputFormat, "output", "o", "table", "Output format (table, yaml, json)")
}

func runGet(cmd *cobra.Command, args []string) error {
	resourceType := args[0]
	name := args[1]

	if resourceType != "cdn-repo" {
		return fmt.Errorf("unknown resource type '%s'. Available types: %s", resourceType, strings.Join(getResourceTypes, ", "))
	}

	format, err := formatting.ParseFormat(getOutputFormat)
	if err != nil {
		return err
	}

	client := errata.NewClientFromEnv()
	ctx := cmd.Context()

	// Serialized output may be piped; keep the spinner off those formats.
	var s *spinner.Spinner
	if format == formatting.FormatTable {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Fetching cdn repo %s...", name)
		s.Start()
	}

	repo, packages, err := cdnrepo.CurrentState(ctx, client, name)

	if s != nil {
		s.Stop()
	}
	if err != nil {
		return err
	}
	if repo == nil {
		return fmt.Errorf("cdn repo %q not found", name)
	}

	return formatting.NewFormatter(format).FormatRepo(cmd.OutOrStdout(), repo, packages)
}
