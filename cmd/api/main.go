package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-agroprod-ws/internal/config"
	"go-agroprod-ws/internal/handler"
	"go-agroprod-ws/internal/middleware"
	"go-agroprod-ws/internal/model"
	"go-agroprod-ws/internal/repository"
	"go-agroprod-ws/internal/scheduler"
	"go-agroprod-ws/internal/service"
	"go-agroprod-ws/internal/ws"
	"go-agroprod-ws/pkg/clients/cloudstore"
	"go-agroprod-ws/pkg/clients/insight"
	"go-agroprod-ws/pkg/database"
	applogger "go-agroprod-ws/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	zlog := applogger.Must(applogger.New())
	defer zlog.Sync()

	// 2. Setup Database
	db := database.ConnectDB(cfg.Database.DSN)
	db.AutoMigrate(
		&model.User{},
		&model.ProductionRecord{},
		&model.PurchaseRecord{},
		&model.StockOutRecord{},
		&model.PrestationProdRecord{},
		&model.PrestationEtuvageRecord{},
		&model.MasterDataEntry{},
	)

	// 3. Seed master data and the default admin account
	seedMasterDataAndAdmin(db, zlog)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	productionRepo := repository.NewProductionRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	stockOutRepo := repository.NewStockOutRepo(db)
	prestProdRepo := repository.NewPrestationProdRepo(db)
	prestEtuvRepo := repository.NewPrestationEtuvageRepo(db)
	masterDataRepo := repository.NewMasterDataRepo(db)

	var cloudClient cloudstore.Client
	if cfg.CloudBackupEnabled() {
		cloudClient = cloudstore.NewClient(cfg.Backup.BaseURL, cfg.Backup.Token)
	}
	var aiClient insight.Client
	if cfg.AI.AnthropicKey != "" {
		aiClient = insight.NewClient(cfg.AI.AnthropicKey)
	}

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	productionService := service.NewProductionService(productionRepo, wsHub)
	stockService := service.NewStockService(purchaseRepo, stockOutRepo, wsHub)
	prestationService := service.NewPrestationService(prestProdRepo, prestEtuvRepo, wsHub)
	dashboardService := service.NewDashboardService(productionRepo)
	traceabilityService := service.NewTraceabilityService(productionRepo, purchaseRepo)
	masterDataService := service.NewMasterDataService(masterDataRepo, wsHub)
	backupService := service.NewBackupService(productionRepo, purchaseRepo, stockOutRepo,
		prestProdRepo, prestEtuvRepo, masterDataRepo, userRepo, cloudClient, zlog)
	insightService := service.NewInsightService(productionRepo, aiClient, zlog)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productionHandler := handler.NewProductionHandler(productionService)
	stockHandler := handler.NewStockHandler(stockService)
	prestationHandler := handler.NewPrestationHandler(prestationService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, traceabilityService)
	masterDataHandler := handler.NewMasterDataHandler(masterDataService)
	backupHandler := handler.NewBackupHandler(backupService)
	insightHandler := handler.NewInsightHandler(insightService)

	// 6. Nightly cloud backup
	var sched *scheduler.Scheduler
	if cfg.CloudBackupEnabled() {
		sched = scheduler.NewScheduler(backupService, cfg.Backup.CronSchedule, zlog)
		sched.Start()
	}

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "AgroProd Records v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 8. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	// Dashboard and traceability
	protected.Get("/dashboard/stats", dashboardHandler.GetStats)
	protected.Get("/dashboard/activity", dashboardHandler.GetActivity)
	protected.Get("/lots", dashboardHandler.GetLots)

	// Production journal
	production := protected.Group("/production", middleware.RequireTab(model.TabProduction))
	production.Get("/", productionHandler.GetAll)
	production.Post("/", productionHandler.Create)
	production.Put("/:id", middleware.RequireAdmin(), productionHandler.Update)
	production.Delete("/:id", middleware.RequireAdmin(), productionHandler.Delete)

	// Purchases and stock outs
	stock := protected.Group("", middleware.RequireTab(model.TabStock))
	stock.Get("/purchases", stockHandler.GetPurchases)
	stock.Post("/purchases", stockHandler.CreatePurchase)
	stock.Put("/purchases/:id", middleware.RequireAdmin(), stockHandler.UpdatePurchase)
	stock.Delete("/purchases/:id", middleware.RequireAdmin(), stockHandler.DeletePurchase)
	stock.Get("/stock-outs", stockHandler.GetStockOuts)
	stock.Post("/stock-outs", stockHandler.CreateStockOut)
	stock.Put("/stock-outs/:id", middleware.RequireAdmin(), stockHandler.UpdateStockOut)
	stock.Delete("/stock-outs/:id", middleware.RequireAdmin(), stockHandler.DeleteStockOut)
	stock.Get("/stock/status", stockHandler.GetStatus)

	// Prestations
	prestProd := protected.Group("/prestations/production", middleware.RequireTab(model.TabPrestationProd))
	prestProd.Get("/", prestationHandler.GetAllProd)
	prestProd.Post("/", prestationHandler.CreateProd)
	prestProd.Put("/:id", middleware.RequireAdmin(), prestationHandler.UpdateProd)
	prestProd.Delete("/:id", middleware.RequireAdmin(), prestationHandler.DeleteProd)

	prestEtuv := protected.Group("/prestations/etuvage", middleware.RequireTab(model.TabPrestationEtuvage))
	prestEtuv.Get("/", prestationHandler.GetAllEtuvage)
	prestEtuv.Post("/", prestationHandler.CreateEtuvage)
	prestEtuv.Put("/:id", middleware.RequireAdmin(), prestationHandler.UpdateEtuvage)
	prestEtuv.Delete("/:id", middleware.RequireAdmin(), prestationHandler.DeleteEtuvage)

	// AI insights
	protected.Post("/insights/production", middleware.RequireTab(model.TabInsights), insightHandler.GetProductionInsights)

	// Master data (reads are open to all authenticated users, writes are admin only)
	protected.Get("/master-data", masterDataHandler.GetAll)
	protected.Post("/master-data/:kind/values", middleware.RequireAdmin(), masterDataHandler.AddValue)
	protected.Delete("/master-data/:kind/values", middleware.RequireAdmin(), masterDataHandler.RemoveValue)

	// User management (admin only)
	users := protected.Group("/users", middleware.RequireAdmin())
	users.Get("/", userHandler.GetAll)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/tabs", userHandler.UpdateTabs)
	users.Delete("/:id", userHandler.Delete)

	// Backup (admin only)
	backup := protected.Group("/backup", middleware.RequireAdmin())
	backup.Get("/export", backupHandler.Export)
	backup.Post("/import", backupHandler.Import)
	backup.Post("/cloud/save", backupHandler.CloudSave)
	backup.Post("/cloud/restore", backupHandler.CloudRestore)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if sched != nil {
		sched.Stop()
	}
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedMasterDataAndAdmin populates the reference lists and creates the
// default admin account on first boot.
func seedMasterDataAndAdmin(db *gorm.DB, zlog *zap.Logger) {
	masterDataRepo := repository.NewMasterDataRepo(db)
	userRepo := repository.NewUserRepo(db)

	if err := masterDataRepo.SeedDefaults(); err != nil {
		zlog.Warn("failed to seed master data", zap.Error(err))
	}

	if _, err := userRepo.FindByUsername("admin"); err != nil {
		admin := &model.User{
			Username: "admin",
			FullName: "Administrator",
			Role:     model.RoleAdmin,
			IsActive: true,
		}
		admin.CreatedBy = "system"
		admin.UpdatedBy = "system"

		password := os.Getenv("ADMIN_DEFAULT_PASSWORD")
		if password == "" {
			password = "admin123"
		}
		if err := admin.SetPassword(password); err != nil {
			zlog.Error("failed to hash admin password", zap.Error(err))
			return
		}

		if err := userRepo.Create(admin); err != nil {
			zlog.Error("failed to create default admin", zap.Error(err))
			return
		}
		zlog.Info("default admin account created", zap.String("username", admin.Username))
	}
}
