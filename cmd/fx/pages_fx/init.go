package pages_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"autopage/internal/infra"
	"autopage/internal/repositories"
	"autopage/internal/services"
)

var Module = fx.Provide(
	providePageRepo,
	provideSectionRepo,
	providePageService,
	provideSectionService,
)

func providePageRepo(store *infra.StoreClient) repositories.PageRepository {
	return repositories.NewPageRepository(store)
}

func provideSectionRepo(store *infra.StoreClient) repositories.SectionRepository {
	return repositories.NewSectionRepository(store)
}

func providePageService(
	pages repositories.PageRepository,
	sections repositories.SectionRepository,
	ownership services.OwnershipService,
	log *zap.Logger,
) services.PageService {
	return services.NewPageService(pages, sections, ownership, log)
}

func provideSectionService(
	pages repositories.PageRepository,
	sections repositories.SectionRepository,
	log *zap.Logger,
) services.SectionService {
	return services.NewSectionService(pages, sections, log)
}
