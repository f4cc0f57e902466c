package cli

import (
	"github.com/spf13/cobra"
)

type ViewOptions struct {
	*RootOptions
	Search string
	Status string
	Sort   string
}

func NewViewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ViewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "List participants matching the search and filters",
		Long: `List participants whose name or email contains the search text,
filtered by completion status and ordered by the chosen sort option.

Sort options: name-asc, name-desc, badges-asc, badges-desc, games-asc,
games-desc, status-completed-first, status-pending-first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "case-insensitive text matched against name or email")
	cmd.Flags().StringVar(&opts.Status, "status", "all", "status filter (all|completed|pending)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "badges-desc", "sort option")

	return cmd
}

func runView(cmd *cobra.Command, opts *ViewOptions) error {
	svc, err := openDashboard(cmd, opts.RootOptions)
	if err != nil {
		return err
	}

	q, err := svc.ParseQuery(opts.Search, opts.Status, opts.Sort)
	if err != nil {
		return err
	}

	v := svc.View(cmd.Context(), q)
	return writeView(cmd.OutOrStdout(), opts.Format, v)
}
