package analytics_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"autopage/internal/repositories"
	"autopage/internal/services"
)

var Module = fx.Provide(provideAnalyticsService)

func provideAnalyticsService(
	pages repositories.PageRepository,
	purchases repositories.PurchaseRepository,
	leads repositories.LeadRepository,
	ownership services.OwnershipService,
	log *zap.Logger,
) services.AnalyticsService {
	return services.NewAnalyticsService(pages, purchases, leads, ownership, log)
}
