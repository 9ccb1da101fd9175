package transactions_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"autopage/internal/infra"
	"autopage/internal/repositories"
	"autopage/internal/services"
)

var Module = fx.Provide(providePurchaseRepo, provideLeadRepo, provideTransactionService)

func providePurchaseRepo(store *infra.StoreClient) repositories.PurchaseRepository {
	return repositories.NewPurchaseRepository(store)
}

func provideLeadRepo(store *infra.StoreClient) repositories.LeadRepository {
	return repositories.NewLeadRepository(store)
}

func provideTransactionService(
	pages repositories.PageRepository,
	purchases repositories.PurchaseRepository,
	leads repositories.LeadRepository,
	log *zap.Logger,
) services.TransactionService {
	return services.NewTransactionService(pages, purchases, leads, log)
}
