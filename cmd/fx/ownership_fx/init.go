package ownership_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"autopage/internal/infra"
	"autopage/internal/repositories"
	"autopage/internal/services"
)

var Module = fx.Provide(provideOwnerRepo, provideOwnershipService)

func provideOwnerRepo(store *infra.StoreClient) repositories.OwnerRepository {
	return repositories.NewOwnerRepository(store)
}

func provideOwnershipService(
	pages repositories.PageRepository,
	owners repositories.OwnerRepository,
	log *zap.Logger,
) services.OwnershipService {
	return services.NewOwnershipService(pages, owners, log)
}
