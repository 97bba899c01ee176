package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// --- mock bank service ---

type mockBankService struct {
	createBankAccountFn   func(userID uint, name string, amount int64) (*models.BankAccount, error)
	getUserBankAccountsFn func(userID uint) ([]models.BankAccount, error)
	updateBankAccountFn   func(userID uint, name string, amount int64) (int64, error)
	deleteBankAccountFn   func(userID uint, name string) error
	getBalanceFn          func(userID uint) (int64, error)
	getTransactionsFn     func(userID uint, bankName string) (*services.OriginTransactions, error)
}

func (m *mockBankService) CreateBankAccount(userID uint, name string, amount int64) (*models.BankAccount, error) {
	if m.createBankAccountFn != nil {
		return m.createBankAccountFn(userID, name, amount)
	}
	return &models.BankAccount{}, nil
}

func (m *mockBankService) GetUserBankAccounts(userID uint) ([]models.BankAccount, error) {
	if m.getUserBankAccountsFn != nil {
		return m.getUserBankAccountsFn(userID)
	}
	return []models.BankAccount{}, nil
}

func (m *mockBankService) UpdateBankAccount(userID uint, name string, amount int64) (int64, error) {
	if m.updateBankAccountFn != nil {
		return m.updateBankAccountFn(userID, name, amount)
	}
	return 1, nil
}

func (m *mockBankService) DeleteBankAccount(userID uint, name string) error {
	if m.deleteBankAccountFn != nil {
		return m.deleteBankAccountFn(userID, name)
	}
	return nil
}

func (m *mockBankService) GetBalance(userID uint) (int64, error) {
	if m.getBalanceFn != nil {
		return m.getBalanceFn(userID)
	}
	return 0, nil
}

func (m *mockBankService) GetTransactions(userID uint, bankName string) (*services.OriginTransactions, error) {
	if m.getTransactionsFn != nil {
		return m.getTransactionsFn(userID, bankName)
	}
	return &services.OriginTransactions{}, nil
}

var _ services.BankServicer = (*mockBankService)(nil)

func setupBankRouter(handler *BankHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/bank/create", handler.Create)
	auth.GET("/bank/get", handler.Get)
	auth.PUT("/bank/update", handler.Update)
	auth.DELETE("/bank/delete", handler.Delete)
	auth.GET("/bank/balance", handler.Balance)
	auth.POST("/bank/transactions", handler.Transactions)
	return r
}

func TestBankHandler_Create(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockBankService{
			createBankAccountFn: func(userID uint, name string, amount int64) (*models.BankAccount, error) {
				return &models.BankAccount{
					Base:   models.Base{ID: 1},
					UserID: userID,
					Name:   models.BankName(name),
					Amount: amount,
				}, nil
			},
		}
		handler := NewBankHandler(svc, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "POST", "/bank/create", `{"name":"Chase","amount":250000}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		bank := result["bank"].(map[string]interface{})
		if bank["name"] != "Chase" {
			t.Errorf("expected Chase, got %v", bank["name"])
		}
		if bank["amount"].(float64) != 250000 {
			t.Errorf("expected amount 250000, got %v", bank["amount"])
		}
	})

	t.Run("returns 400 on unsupported bank", func(t *testing.T) {
		handler := NewBankHandler(&mockBankService{}, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "POST", "/bank/create", `{"name":"Monopoly Bank","amount":1000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on negative amount", func(t *testing.T) {
		handler := NewBankHandler(&mockBankService{}, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "POST", "/bank/create", `{"name":"Chase","amount":-100}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 when bank already linked", func(t *testing.T) {
		svc := &mockBankService{
			createBankAccountFn: func(_ uint, _ string, _ int64) (*models.BankAccount, error) {
				return nil, apperrors.ErrDuplicateBank
			},
		}
		handler := NewBankHandler(svc, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "POST", "/bank/create", `{"name":"Chase","amount":1000}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_BANK")
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewBankHandler(&mockBankService{}, &mockAuditService{})
		r := gin.New()
		r.POST("/bank/create", handler.Create)

		rec := doRequest(r, "POST", "/bank/create", `{"name":"Chase","amount":1000}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestBankHandler_Get(t *testing.T) {
	t.Run("returns 200 with linked banks", func(t *testing.T) {
		svc := &mockBankService{
			getUserBankAccountsFn: func(_ uint) ([]models.BankAccount, error) {
				return []models.BankAccount{
					{Base: models.Base{ID: 1}, Name: "Chase"},
					{Base: models.Base{ID: 2}, Name: "Citibank"},
				}, nil
			},
		}
		handler := NewBankHandler(svc, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "GET", "/bank/get", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		banks := result["banks"].([]interface{})
		if len(banks) != 2 {
			t.Errorf("expected 2 banks, got %d", len(banks))
		}
	})
}

func TestBankHandler_Update(t *testing.T) {
	t.Run("returns 200 with updated count", func(t *testing.T) {
		handler := NewBankHandler(&mockBankService{}, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "PUT", "/bank/update", `{"name":"Chase","amount":300000}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["updated"].(float64) != 1 {
			t.Errorf("expected updated=1, got %v", result["updated"])
		}
	})

	t.Run("returns 404 when bank not linked", func(t *testing.T) {
		svc := &mockBankService{
			updateBankAccountFn: func(_ uint, _ string, _ int64) (int64, error) {
				return 0, apperrors.ErrBankNotFound
			},
		}
		handler := NewBankHandler(svc, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "PUT", "/bank/update", `{"name":"Chase","amount":300000}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "BANK_NOT_FOUND")
	})
}

func TestBankHandler_Delete(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var deletedName string
		svc := &mockBankService{
			deleteBankAccountFn: func(_ uint, name string) error {
				deletedName = name
				return nil
			},
		}
		handler := NewBankHandler(svc, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "DELETE", "/bank/delete?name=Wells%20Fargo", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if deletedName != "Wells Fargo" {
			t.Errorf("expected Wells Fargo, got %q", deletedName)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewBankHandler(&mockBankService{}, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "DELETE", "/bank/delete", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when bank not linked", func(t *testing.T) {
		svc := &mockBankService{
			deleteBankAccountFn: func(_ uint, _ string) error {
				return apperrors.ErrBankNotFound
			},
		}
		handler := NewBankHandler(svc, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "DELETE", "/bank/delete?name=Chase", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestBankHandler_Balance(t *testing.T) {
	svc := &mockBankService{
		getBalanceFn: func(_ uint) (int64, error) { return 550000, nil },
	}
	handler := NewBankHandler(svc, &mockAuditService{})
	r := setupBankRouter(handler)

	rec := doRequest(r, "GET", "/bank/balance", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["balance"].(float64) != 550000 {
		t.Errorf("expected balance 550000, got %v", result["balance"])
	}
}

func TestBankHandler_Transactions(t *testing.T) {
	t.Run("returns 200 with incomes and expenses", func(t *testing.T) {
		svc := &mockBankService{
			getTransactionsFn: func(_ uint, bankName string) (*services.OriginTransactions, error) {
				return &services.OriginTransactions{
					Incomes:  []models.Income{{Base: models.Base{ID: 1}, Amount: 5000}},
					Expenses: []models.Expense{{Base: models.Base{ID: 2}, Amount: 2000}},
				}, nil
			},
		}
		handler := NewBankHandler(svc, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "POST", "/bank/transactions", `{"name":"Chase"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if len(result["incomes"].([]interface{})) != 1 {
			t.Error("expected 1 income")
		}
		if len(result["expenses"].([]interface{})) != 1 {
			t.Error("expected 1 expense")
		}
	})

	t.Run("returns 400 on unsupported bank name", func(t *testing.T) {
		handler := NewBankHandler(&mockBankService{}, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "POST", "/bank/transactions", `{"name":"Monopoly Bank"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_BANK_NAME")
	})

	t.Run("returns 404 when bank not linked", func(t *testing.T) {
		svc := &mockBankService{
			getTransactionsFn: func(_ uint, _ string) (*services.OriginTransactions, error) {
				return nil, apperrors.ErrBankNotFound
			},
		}
		handler := NewBankHandler(svc, &mockAuditService{})
		r := setupBankRouter(handler)

		rec := doRequest(r, "POST", "/bank/transactions", `{"name":"Chase"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
