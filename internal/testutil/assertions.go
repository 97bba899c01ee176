// Package testutil holds assertion helpers shared by service and
// integration tests.
package testutil

import (
	"errors"
	"testing"

	apperrors "fintrack/internal/errors"
)

// AssertAppError fails unless err unwraps to an *AppError carrying code.
func AssertAppError(t *testing.T, err error, code string) {
	t.Helper()

	var appErr *apperrors.AppError
	switch {
	case err == nil:
		t.Fatalf("want AppError %q, got nil", code)
	case !errors.As(err, &appErr):
		t.Fatalf("want *AppError, got %T: %v", err, err)
	case appErr.Code != code:
		t.Errorf("want error code %q, got %q (%s)", code, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test immediately when err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
