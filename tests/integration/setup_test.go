package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fintrack/internal/handlers"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
	os.Setenv("UPLOAD_DIR", filepath.Join(os.TempDir(), "fintrack-integration-uploads"))
	os.Setenv("EXPORT_DIR", filepath.Join(os.TempDir(), "fintrack-integration-exports"))
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.BankAccount{},
		&models.Wallet{},
		&models.Income{},
		&models.Expense{},
		&models.Transfer{},
		&models.Budget{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	bankService := services.NewBankService(db)
	walletService := services.NewWalletService(db)
	incomeService := services.NewIncomeService(db)
	expenseService := services.NewExpenseService(db)
	transferService := services.NewTransferService(db)
	budgetService := services.NewBudgetService(db)
	exportService := services.NewExportService(db)
	auditService := services.NewAuditService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	bankHandler := handlers.NewBankHandler(bankService, auditService)
	walletHandler := handlers.NewWalletHandler(walletService, auditService)
	incomeHandler := handlers.NewIncomeHandler(incomeService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	transferHandler := handlers.NewTransferHandler(transferService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	exportHandler := handlers.NewExportHandler(exportService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public routes
	users := v1.Group("/users")
	users.POST("/signup", authHandler.Signup)
	users.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.Authentication(userService))

	protectedUsers := protected.Group("/users")
	protectedUsers.POST("/imageupload", authHandler.ImageUpload)
	protectedUsers.GET("/getimage", authHandler.GetImage)
	protectedUsers.GET("/export", exportHandler.Export)

	bank := protected.Group("/bank")
	bank.POST("/create", bankHandler.Create)
	bank.GET("/get", bankHandler.Get)
	bank.PUT("/update", bankHandler.Update)
	bank.DELETE("/delete", bankHandler.Delete)
	bank.GET("/balance", bankHandler.Balance)
	bank.POST("/transactions", bankHandler.Transactions)

	wallet := protected.Group("/wallet")
	wallet.POST("/create", walletHandler.Create)
	wallet.GET("/getall", walletHandler.GetAll)
	wallet.GET("/wallets", walletHandler.Names)
	wallet.PUT("/update", walletHandler.Update)
	wallet.DELETE("/delete", walletHandler.Delete)
	wallet.GET("/balance", walletHandler.Balance)
	wallet.POST("/transactions", walletHandler.Transactions)

	income := protected.Group("/income")
	income.POST("/add", incomeHandler.Add)
	income.PUT("/update/:id", incomeHandler.Update)
	income.DELETE("/delete/:id", incomeHandler.Delete)
	income.GET("/get", incomeHandler.Total)
	income.GET("/all", incomeHandler.History)

	expense := protected.Group("/expense")
	expense.POST("/add", expenseHandler.Add)
	expense.PUT("/update/:id", expenseHandler.Update)
	expense.DELETE("/delete/:id", expenseHandler.Delete)
	expense.GET("/get", expenseHandler.Total)
	expense.GET("/getAll", expenseHandler.History)
	expense.GET("/stats", expenseHandler.Stats)

	transfer := protected.Group("/transfer")
	transfer.POST("/add", transferHandler.Add)
	transfer.PUT("/update/:id", transferHandler.Update)
	transfer.DELETE("/delete/:id", transferHandler.Delete)
	transfer.GET("/getall", transferHandler.GetAll)

	budget := protected.Group("/budget")
	budget.POST("/create", budgetHandler.Create)
	budget.PUT("/update/:id", budgetHandler.Update)
	budget.DELETE("/delete/:id", budgetHandler.Delete)
	budget.GET("/getall", budgetHandler.GetAll)
	budget.GET("/getbymonth", budgetHandler.GetByMonth)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// multipartRequest sends a multipart form with string fields and an optional
// file part, carrying the auth token.
func (app *testApp) multipartRequest(t *testing.T, path string, fields map[string]string, fileField, fileName string, fileData []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("failed to write form field %s: %v", k, err)
		}
	}
	if fileField != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, fileName))
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(fileData); err != nil {
			t.Fatalf("failed to write file data: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// signupUser registers a new user and returns the token and user ID.
func (app *testApp) signupUser(t *testing.T, email string) (token string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":"password123","pin":"1234"}`, email)
	rec := app.request("POST", "/api/v1/users/signup", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(float64)
}

// addIncome records an income entry with a receipt and returns its ID.
func (app *testApp) addIncome(t *testing.T, token, amount, source string) float64 {
	t.Helper()
	fields := map[string]string{"amount": amount, "source": source}
	rec := app.multipartRequest(t, "/api/v1/income/add", fields, "file", "receipt.png", []byte("png bytes"), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add income failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	income := result["income"].(map[string]interface{})
	return income["id"].(float64)
}

// addExpense records an expense entry with a receipt and returns its ID.
func (app *testApp) addExpense(t *testing.T, token, amount, source string) float64 {
	t.Helper()
	fields := map[string]string{"amount": amount, "source": source}
	rec := app.multipartRequest(t, "/api/v1/expense/add", fields, "file", "receipt.png", []byte("png bytes"), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add expense failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	expense := result["expense"].(map[string]interface{})
	return expense["id"].(float64)
}
