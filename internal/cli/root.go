package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Source  string
	Format  string // "text" | "json" | "yaml"
	Locale  string
	Verbose bool
}

var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the progress CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "progress",
		Short:         "Inspect participant progress",
		Long:          "Search, filter and sort a participant progress dataset from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Source, "source", "data.json", "dataset file path or http(s) URL")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "en", "BCP 47 locale for name ordering")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewViewCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))

	return cmd
}
