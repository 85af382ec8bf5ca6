package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{name: "not found", err: NotFound("Room"), wantCode: CodeNotFound, wantStatus: http.StatusNotFound},
		{name: "validation", err: Validation("invalid", nil), wantCode: CodeValidation, wantStatus: http.StatusUnprocessableEntity},
		{name: "invalid input", err: InvalidInput("bad"), wantCode: CodeInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unauthenticated", err: Unauthenticated("no session"), wantCode: CodeUnauthenticated, wantStatus: http.StatusUnauthorized},
		{name: "forbidden", err: Forbidden("not yours"), wantCode: CodeForbidden, wantStatus: http.StatusForbidden},
		{name: "conflict", err: Conflict("taken"), wantCode: CodeConflict, wantStatus: http.StatusConflict},
		{name: "internal", err: Internal("boom", nil), wantCode: CodeInternal, wantStatus: http.StatusInternalServerError},
		{name: "store unavailable", err: StoreUnavailable(errors.New("down")), wantCode: CodeStoreUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestNotFoundWithIDDetails(t *testing.T) {
	err := NotFoundWithID("Booking", "abc123")
	if err.Details["resource"] != "Booking" || err.Details["id"] != "abc123" {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("socket closed")
	err := StoreUnavailable(cause)
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to survive errors.Is")
	}
}

func TestStatusCodeDefaultsTo500(t *testing.T) {
	err := &AppError{Code: CodeInternal, Message: "unset status"}
	if err.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.StatusCode())
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NotFound("Room")
	if got := AsAppError(appErr); got != appErr {
		t.Error("expected the same AppError back")
	}

	plain := errors.New("plain")
	got := AsAppError(plain)
	if got.Code != CodeInternal {
		t.Errorf("expected internal error wrapper, got %s", got.Code)
	}
	if !errors.Is(got, plain) {
		t.Error("expected the cause preserved")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(NotFound("Room")) {
		t.Error("expected true for AppError")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("expected false for non-AppError")
	}
}
