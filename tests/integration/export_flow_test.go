package integration

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strings"
	"testing"
)

func TestExportFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t, "exporter@example.com")

	t.Run("export with no data returns 404", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/users/export", "", token)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("csv export carries all record types", func(t *testing.T) {
		app.addIncome(t, token, "150000", "salary")
		app.addExpense(t, token, "4500", "food")
		rec := app.request("POST", "/api/v1/transfer/add",
			`{"amount":5000,"sender":"Me","receiver":"Landlord"}`, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("add transfer failed: %d", rec.Code)
		}
		rec = app.request("POST", "/api/v1/budget/create",
			`{"name":"Groceries","total_budget":50000}`, token)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create budget failed: %d", rec.Code)
		}

		rec = app.request("GET", "/api/v1/users/export", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("export failed: %d %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("expected text/csv, got %q", ct)
		}
		disposition := rec.Header().Get("Content-Disposition")
		if !strings.Contains(disposition, "financial-report-all-") || !strings.Contains(disposition, ".csv") {
			t.Errorf("unexpected Content-Disposition: %q", disposition)
		}

		rows, err := csv.NewReader(bytes.NewReader(rec.Body.Bytes())).ReadAll()
		if err != nil {
			t.Fatalf("body is not valid CSV: %v", err)
		}
		if len(rows) != 5 {
			t.Fatalf("expected header plus 4 records, got %d rows", len(rows))
		}
		types := map[string]bool{}
		for _, row := range rows[1:] {
			types[row[0]] = true
		}
		for _, want := range []string{"income", "expense", "transfer", "budget"} {
			if !types[want] {
				t.Errorf("missing %s record in export", want)
			}
		}
	})

	t.Run("single type export filters records", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/users/export?type=income", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("export failed: %d %s", rec.Code, rec.Body.String())
		}
		rows, err := csv.NewReader(bytes.NewReader(rec.Body.Bytes())).ReadAll()
		if err != nil {
			t.Fatalf("body is not valid CSV: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected header plus 1 income, got %d rows", len(rows))
		}
		if rows[1][0] != "income" {
			t.Errorf("expected income record, got %q", rows[1][0])
		}
	})

	t.Run("pdf export returns a pdf document", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/users/export?format=pdf", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("export failed: %d %s", rec.Code, rec.Body.String())
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/pdf") {
			t.Errorf("expected application/pdf, got %q", ct)
		}
		if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
			t.Error("expected PDF magic bytes")
		}
	})

	t.Run("unknown format returns 400", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/users/export?format=xlsx", "", token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown type returns 400", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/users/export?type=stocks", "", token)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("export is scoped to the requesting user", func(t *testing.T) {
		otherToken, _ := app.signupUser(t, "empty-exporter@example.com")
		rec := app.request("GET", "/api/v1/users/export", "", otherToken)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for user with no data, got %d", rec.Code)
		}
	})
}
