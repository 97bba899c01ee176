package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/validator"

	_ "fintrack/internal/docs" // Import swagger docs
)

// @title           Fintrack API
// @version         1.0
// @description     Fintrack is a personal finance tracker covering bank accounts, wallets, income, expenses, transfers, budgets, and report exports.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey TokenAuth
// @in header
// @name token
// @description JWT issued at signup or login, sent as-is in the token header.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	bankService := services.NewBankService(db)
	walletService := services.NewWalletService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db)
	transferService := services.NewTransferService(db)
	budgetService := services.NewBudgetService(db)
	exportService := services.NewExportService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	bankHandler := handlers.NewBankHandler(bankService, auditService)
	walletHandler := handlers.NewWalletHandler(walletService, auditService)
	incomeHandler := handlers.NewIncomeHandler(incomeService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	transferHandler := handlers.NewTransferHandler(transferService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	exportHandler := handlers.NewExportHandler(exportService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, token")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	users := v1.Group("/users")
	users.POST("/signup", authHandler.Signup)
	users.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.Authentication(userService))

	// User routes
	usersAuth := protected.Group("/users")
	usersAuth.POST("/imageupload", authHandler.ImageUpload)
	usersAuth.GET("/getimage", authHandler.GetImage)
	usersAuth.GET("/export", exportHandler.Export)

	// Bank routes
	bank := protected.Group("/bank")
	bank.POST("/create", bankHandler.Create)
	bank.GET("/get", bankHandler.Get)
	bank.PUT("/update", bankHandler.Update)
	bank.DELETE("/delete", bankHandler.Delete)
	bank.GET("/balance", bankHandler.Balance)
	bank.POST("/transactions", bankHandler.Transactions)

	// Wallet routes
	wallet := protected.Group("/wallet")
	wallet.POST("/create", walletHandler.Create)
	wallet.PUT("/update", walletHandler.Update)
	wallet.GET("/getall", walletHandler.GetAll)
	wallet.GET("/wallets", walletHandler.Names)
	wallet.GET("/balance", walletHandler.Balance)
	wallet.DELETE("/delete", walletHandler.Delete)
	wallet.POST("/transactions", walletHandler.Transactions)

	// Income routes
	income := protected.Group("/income")
	income.POST("/add", incomeHandler.Add)
	income.PUT("/update/:id", incomeHandler.Update)
	income.GET("/get", incomeHandler.Total)
	income.GET("/all", incomeHandler.History)
	income.DELETE("/delete/:id", incomeHandler.Delete)

	// Expense routes
	expense := protected.Group("/expense")
	expense.POST("/add", expenseHandler.Add)
	expense.PUT("/update/:id", expenseHandler.Update)
	expense.GET("/get", expenseHandler.Total)
	expense.GET("/getAll", expenseHandler.History)
	expense.DELETE("/delete/:id", expenseHandler.Delete)
	expense.GET("/stats", expenseHandler.Stats)

	// Transfer routes
	transfer := protected.Group("/transfer")
	transfer.POST("/add", transferHandler.Add)
	transfer.PUT("/update/:id", transferHandler.Update)
	transfer.GET("/getall", transferHandler.GetAll)
	transfer.DELETE("/delete/:id", transferHandler.Delete)

	// Budget routes
	budget := protected.Group("/budget")
	budget.POST("/create", budgetHandler.Create)
	budget.PUT("/update/:id", budgetHandler.Update)
	budget.DELETE("/delete/:id", budgetHandler.Delete)
	budget.GET("/getall", budgetHandler.GetAll)
	budget.GET("/getbymonth", budgetHandler.GetByMonth)

	log.Infof("Starting Fintrack backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
