package controllers_fx

import (
	"go.uber.org/fx"

	"autopage/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewPagesController,
	controllers.NewSectionsController,
	controllers.NewTransactionsController,
	controllers.NewAnalyticsController,
)
