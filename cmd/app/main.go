package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"autopage/cmd/fx/analytics_fx"
	"autopage/cmd/fx/controllers_fx"
	"autopage/cmd/fx/ownership_fx"
	"autopage/cmd/fx/pages_fx"
	"autopage/cmd/fx/store_fx"
	"autopage/cmd/fx/transactions_fx"
	"autopage/internal/api/controllers"
	"autopage/internal/config"
	"autopage/pkg/middleware"
)

func main() {
	app := fx.New(
		store_fx.Module,
		ownership_fx.Module,
		pages_fx.Module,
		transactions_fx.Module,
		analytics_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatal("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	pagesController *controllers.PagesController,
	sectionsController *controllers.SectionsController,
	transactionsController *controllers.TransactionsController,
	analyticsController *controllers.AnalyticsController,
) *gin.Engine {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, pagesController, sectionsController, transactionsController, analyticsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	pagesController *controllers.PagesController,
	sectionsController *controllers.SectionsController,
	transactionsController *controllers.TransactionsController,
	analyticsController *controllers.AnalyticsController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public surface: rendering and buyer-side writes.
	r.GET("/p/:slug", pagesController.GetPublicPage)
	r.POST("/purchases", transactionsController.CreatePurchase)
	r.POST("/leads", transactionsController.CreateLead)

	auth := r.Group("/", middleware.JWTAuthMiddleware())

	pages := auth.Group("/pages")
	pages.POST("", pagesController.CreatePage)
	pages.GET("", pagesController.ListPages)
	pages.GET("/:pageId", pagesController.GetPage)
	pages.POST("/:pageId/owner", pagesController.AttachOwner)
	pages.POST("/:pageId/sections/reorder", sectionsController.ReorderSections)

	auth.PATCH("/sections/:sectionId/toggle", sectionsController.ToggleSection)
	auth.PATCH("/purchases/:purchaseId/status", transactionsController.UpdatePurchaseStatus)
	auth.PATCH("/leads/:leadId/status", transactionsController.UpdateLeadStatus)

	analytics := auth.Group("/analytics")
	analytics.GET("/page/:pageId", analyticsController.PageAnalytics)
	analytics.GET("/owner", analyticsController.OwnerAnalytics)
}
