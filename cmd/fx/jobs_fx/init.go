package jobs_fx

import (
	"context"

	"go.uber.org/fx"

	"fixitfast/internal/jobs"
	"fixitfast/internal/services"
	mem "fixitfast/pkg/memcache"
)

var Module = fx.Options(
	fx.Provide(provideJanitor),
	fx.Invoke(runJanitor),
)

func provideJanitor(resetTokens mem.ResetTokenStore, dashboard services.DashboardServiceInterface) *jobs.Janitor {
	return jobs.NewJanitor(resetTokens, dashboard)
}

func runJanitor(lc fx.Lifecycle, janitor *jobs.Janitor) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return janitor.Start()
		},
		OnStop: func(ctx context.Context) error {
			janitor.Stop()
			return nil
		},
	})
}
