package services

import (
	"testing"

	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestAddTransfer(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransferService(db)
		user := testutil.CreateTestUser(t, db)

		transfer, err := svc.AddTransfer(user.ID, 5000, "Alice", "Bob", true)
		testutil.AssertNoError(t, err)
		if transfer.ID == 0 {
			t.Fatal("expected non-zero transfer ID")
		}
		if !transfer.IsExpense {
			t.Error("expected outgoing transfer")
		}
	})

	t.Run("missing_party", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransferService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddTransfer(user.ID, 5000, "", "Bob", false)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateTransfer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransferService(db)
	user := testutil.CreateTestUser(t, db)
	transfer := testutil.CreateTestTransfer(t, db, user.ID, 1000, false)

	receiver := "Carol"
	updated, err := svc.UpdateTransfer(user.ID, transfer.ID, TransferUpdateFields{Receiver: &receiver})
	testutil.AssertNoError(t, err)
	if updated != 1 {
		t.Errorf("expected 1 row updated, got %d", updated)
	}

	_, err = svc.UpdateTransfer(user.ID, transfer.ID, TransferUpdateFields{})
	testutil.AssertAppError(t, err, "NO_UPDATE_FIELDS")

	_, err = svc.UpdateTransfer(user.ID, 99999, TransferUpdateFields{Receiver: &receiver})
	testutil.AssertAppError(t, err, "TRANSFER_NOT_FOUND")
}

func TestDeleteTransfer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransferService(db)
	user := testutil.CreateTestUser(t, db)
	other := testutil.CreateTestUser(t, db)
	transfer := testutil.CreateTestTransfer(t, db, user.ID, 1000, false)

	// Ownership is enforced: another user cannot delete the row.
	err := svc.DeleteTransfer(other.ID, transfer.ID)
	testutil.AssertAppError(t, err, "TRANSFER_NOT_FOUND")

	testutil.AssertNoError(t, svc.DeleteTransfer(user.ID, transfer.ID))
}

func TestGetTransfers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransferService(db)
	user := testutil.CreateTestUser(t, db)

	for i := 0; i < 3; i++ {
		testutil.CreateTestTransfer(t, db, user.ID, int64(1000*(i+1)), i%2 == 0)
	}

	page, err := svc.GetTransfers(user.ID, pagination.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 3 {
		t.Errorf("expected 3 total items, got %d", page.TotalItems)
	}
	if len(page.Data) != 2 {
		t.Errorf("expected 2 items on page, got %d", len(page.Data))
	}
	if page.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", page.TotalPages)
	}
}
