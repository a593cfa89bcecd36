package main

import (
	"context"
	"log"

	_ "fueldepot/api/swagger" // swagger docs
	"fueldepot/internal/autosync"
	"fueldepot/internal/config"
	"fueldepot/internal/database"
	"fueldepot/internal/handler"
	"fueldepot/internal/middleware"
	"fueldepot/internal/model"
	"fueldepot/internal/notify"
	"fueldepot/internal/repository"
	"fueldepot/internal/service"
	"fueldepot/internal/sheets"
	"fueldepot/internal/storage"
	"fueldepot/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Fuel Requisition API
// @version         1.0
// @description     Fuel requisition tracker: requests, dispensing, inventory and the transaction ledger.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg := config.Load()

	db, err := database.NewConnection(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	ctx := context.Background()
	store := storage.NewGormStore(db)
	repository.EnsureSeedData(ctx, store)

	// Websocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// External relay + notifier. Env values seed the persisted config record
	// only when no record exists yet.
	relay := sheets.NewClient(ctx, store, model.SyncConfig{
		WebAppURL:        cfg.SheetWebAppURL,
		TelegramBotToken: cfg.TelegramBotToken,
		TelegramChatID:   cfg.TelegramChatID,
	})
	notifier := notify.New(relay)

	// Repository -> Service -> Handler
	userRepo := repository.NewUserRepository(store)
	vehicleRepo := repository.NewVehicleRepository(store)
	requestRepo := repository.NewRequestRepository(store)
	txRepo := repository.NewTransactionRepository(store)
	inventoryRepo := repository.NewInventoryRepository(store)

	userService := service.NewUserService(userRepo)
	vehicleService := service.NewVehicleService(vehicleRepo)
	workflowService := service.NewWorkflowService(requestRepo, txRepo, inventoryRepo, relay, notifier, wsHub)
	reportService := service.NewReportService(userRepo, vehicleRepo, requestRepo, txRepo, inventoryRepo)

	userHandler := handler.NewUserHandler(userService)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	requestHandler := handler.NewRequestHandler(workflowService, requestRepo)
	inventoryHandler := handler.NewInventoryHandler(workflowService)
	reportHandler := handler.NewReportHandler(reportService)
	syncHandler := handler.NewSyncHandler(relay, reportService)

	// Periodic snapshot mirroring + low-fuel alerts
	syncRunner := autosync.New(relay, notifier, reportService, inventoryRepo, store)
	go syncRunner.Run(ctx)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// API routing
	userHandler.RegisterRoutes(router.Group(""))
	vehicleHandler.RegisterRoutes(router.Group(""))
	requestHandler.RegisterRoutes(router.Group(""))
	inventoryHandler.RegisterRoutes(router.Group(""))
	reportHandler.RegisterRoutes(router.Group(""))
	syncHandler.RegisterRoutes(router.Group(""))

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
