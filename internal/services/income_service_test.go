package services

import (
	"os"
	"path/filepath"
	"testing"

	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestAddIncome(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		income, err := svc.AddIncome(user.ID, IncomeInput{
			Amount:     150000,
			Source:     "salary",
			Attachment: "uploads/payslip.jpg",
		})
		testutil.AssertNoError(t, err)
		if income.ID == 0 {
			t.Fatal("expected non-zero income ID")
		}
	})

	t.Run("missing_attachment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddIncome(user.ID, IncomeInput{Amount: 100, Source: "salary"})
		testutil.AssertAppError(t, err, "ATTACHMENT_REQUIRED")
	})

	t.Run("unknown_source", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddIncome(user.ID, IncomeInput{
			Amount:     100,
			Source:     "lottery",
			Attachment: "uploads/ticket.jpg",
		})
		testutil.AssertAppError(t, err, "INVALID_INCOME_SOURCE")
	})

	t.Run("both_origins", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		bank := "Chase"
		wallet := "Cash"
		_, err := svc.AddIncome(user.ID, IncomeInput{
			Amount:     100,
			Source:     "salary",
			Attachment: "uploads/payslip.jpg",
			BankName:   &bank,
			WalletName: &wallet,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_wallet_origin", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		wallet := "Nonexistent"
		_, err := svc.AddIncome(user.ID, IncomeInput{
			Amount:     100,
			Source:     "salary",
			Attachment: "uploads/payslip.jpg",
			WalletName: &wallet,
		})
		testutil.AssertAppError(t, err, "WALLET_NOT_FOUND")
	})

	t.Run("other_users_wallet_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestWallet(t, db, other.ID, "Shared", 0)

		wallet := "Shared"
		_, err := svc.AddIncome(user.ID, IncomeInput{
			Amount:     100,
			Source:     "salary",
			Attachment: "uploads/payslip.jpg",
			WalletName: &wallet,
		})
		testutil.AssertAppError(t, err, "WALLET_NOT_FOUND")
	})
}

func TestUpdateIncome(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, user.ID, 1000)

		amount := int64(2000)
		updated, err := svc.UpdateIncome(user.ID, income.ID, IncomeUpdateFields{Amount: &amount})
		testutil.AssertNoError(t, err)
		if updated != 1 {
			t.Errorf("expected 1 row updated, got %d", updated)
		}

		// Untouched fields keep their values.
		var got int64
		db.Table("incomes").Where("id = ?", income.ID).Select("amount").Scan(&got)
		if got != 2000 {
			t.Errorf("expected amount 2000, got %d", got)
		}
	})

	t.Run("no_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, user.ID, 1000)

		_, err := svc.UpdateIncome(user.ID, income.ID, IncomeUpdateFields{})
		testutil.AssertAppError(t, err, "NO_UPDATE_FIELDS")
	})

	t.Run("other_users_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, other.ID, 1000)

		amount := int64(2000)
		_, err := svc.UpdateIncome(user.ID, income.ID, IncomeUpdateFields{Amount: &amount})
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})
}

func TestDeleteIncome(t *testing.T) {
	t.Run("removes_row_and_file", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		dir := t.TempDir()
		path := filepath.Join(dir, "receipt.jpg")
		if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
			t.Fatal(err)
		}

		income, err := svc.AddIncome(user.ID, IncomeInput{
			Amount:     100,
			Source:     "gift",
			Attachment: path,
		})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeleteIncome(user.ID, income.ID))

		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("expected attachment file to be removed")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteIncome(user.ID, 99999)
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})
}

func TestIncomeTotalAndHistory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewIncomeService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)

	testutil.CreateTestIncome(t, db, user.ID, 1000)
	testutil.CreateTestIncome(t, db, user.ID, 2500)
	testutil.CreateTestIncome(t, db, other.ID, 77777)

	total, err := svc.GetTotal(user.ID)
	testutil.AssertNoError(t, err)
	if total != 3500 {
		t.Errorf("expected total 3500, got %d", total)
	}

	page, err := svc.GetHistory(user.ID, pagination.PageRequest{Page: 1, PageSize: 1})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 2 {
		t.Errorf("expected 2 total items, got %d", page.TotalItems)
	}
	if len(page.Data) != 1 {
		t.Errorf("expected 1 item on page, got %d", len(page.Data))
	}
}
