package router

import (
	"time"

	"smartwarehouse/internal/config"
	"smartwarehouse/internal/handler"
	"smartwarehouse/internal/infra"
	"smartwarehouse/internal/middleware"
	"smartwarehouse/internal/repository"
	"smartwarehouse/internal/service"
	"smartwarehouse/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smsClient *infra.TwilioClient) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	// The dispatcher is the Notifier implementation: services hand it messages
	// post-commit, workers deliver them out-of-band.
	dispatcher := worker.NewDispatcher(rdb)

	itemSvc := service.NewItemService(itemRepo)
	inventorySvc := service.NewInventoryService(itemRepo, orderRepo, dispatcher)
	forecastSvc := service.NewForecastService(itemRepo, orderRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	itemsH := handler.NewItemsHandler(itemSvc)
	ordersH := handler.NewOrdersHandler(inventorySvc)
	uploadsH := handler.NewUploadsHandler(inventorySvc)
	forecastH := handler.NewForecastHandler(forecastSvc)
	stockH := handler.NewStockCheckHandler(itemRepo, rdb)
	testSMSH := handler.NewTestSMSHandler(smsClient)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Inventory
	r.GET("/inventory/", itemsH.ListInventory)
	r.POST("/items/", itemsH.Create)
	r.POST("/restock/", ordersH.Restock)
	r.POST("/upload-income-csv/", uploadsH.UploadIncoming)
	r.GET("/stock/:name", stockH.GetStockByName)

	// Sales
	r.POST("/orders/", ordersH.CreateOrder)
	r.POST("/upload-csv/", uploadsH.UploadOutgoing)

	// Analytics
	r.GET("/analytics/forecast/", forecastH.GetForecast)
	r.GET("/test-sms/", testSMSH.Send)

	// Swagger UI - only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
