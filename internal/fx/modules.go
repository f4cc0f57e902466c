package fx

import (
	"progress-tracker/internal/api"
	"progress-tracker/internal/config"
	"progress-tracker/internal/database"
	"progress-tracker/internal/loader"
	"progress-tracker/internal/logger"
	"progress-tracker/internal/repository"
	"progress-tracker/internal/server"
	"progress-tracker/internal/service"
	"progress-tracker/internal/web"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewLoadEventRepository),
	// source client
	fx.Provide(api.NewSourceClient),
	fx.Provide(loader.New),
	// svc
	fx.Provide(service.NewDashboardService),
	// server
	fx.Provide(server.NewProgressServer),
	fx.Provide(web.NewDashboardHandler),
)
