package cli

import (
	"context"
	"fmt"

	"progress-tracker/internal/api"
	"progress-tracker/internal/constants"
	"progress-tracker/internal/loader"
	"progress-tracker/internal/logger"
	"progress-tracker/internal/progress"
	"progress-tracker/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// openDashboard loads the dataset once and wraps it in a service. A failed
// load is logged and leaves an empty dataset, as on the server.
func openDashboard(cmd *cobra.Command, opts *RootOptions) (*service.DashboardService, error) {
	tag, err := language.Parse(opts.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", opts.Locale, err)
	}

	level := zerolog.WarnLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewConsole(cmd.ErrOrStderr(), level)

	l := loader.NewWithSource(opts.Source, api.NewSourceClient(), nil, log)

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.SourceFetchTimeout)
	defer cancel()
	_ = l.Load(ctx)

	return service.New(l, progress.New(tag), nil, log), nil
}
