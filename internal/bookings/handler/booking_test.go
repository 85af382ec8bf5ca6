package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"

	"servenest/internal/auth/token"
	apperrors "servenest/pkg/errors"
	"servenest/pkg/logger"
	"servenest/pkg/middleware"
	"servenest/pkg/model"
)

type mockBookingService struct {
	createFunc       func(ctx context.Context, booking *model.Booking) (*model.InsertResult, error)
	listByOwnerFunc  func(ctx context.Context, email string, identity token.Identity) ([]*model.Booking, error)
	getForEditFunc   func(ctx context.Context, id string) (*model.Booking, error)
	getForReviewFunc func(ctx context.Context, id string) (*model.Booking, error)
	updateDateFunc   func(ctx context.Context, id string, update *model.BookingDateUpdate) (*model.UpdateResult, error)
	deleteFunc       func(ctx context.Context, id string) (*model.DeleteResult, error)
}

func (m *mockBookingService) Create(ctx context.Context, booking *model.Booking) (*model.InsertResult, error) {
	return m.createFunc(ctx, booking)
}

func (m *mockBookingService) ListByOwner(ctx context.Context, email string, identity token.Identity) ([]*model.Booking, error) {
	return m.listByOwnerFunc(ctx, email, identity)
}

func (m *mockBookingService) GetForEdit(ctx context.Context, id string) (*model.Booking, error) {
	return m.getForEditFunc(ctx, id)
}

func (m *mockBookingService) GetForReview(ctx context.Context, id string) (*model.Booking, error) {
	return m.getForReviewFunc(ctx, id)
}

func (m *mockBookingService) UpdateDate(ctx context.Context, id string, update *model.BookingDateUpdate) (*model.UpdateResult, error) {
	return m.updateDateFunc(ctx, id, update)
}

func (m *mockBookingService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return m.deleteFunc(ctx, id)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard})
}

func passthroughGate(next httprouter.Handle) httprouter.Handle { return next }

func newRouter(svc *mockBookingService, gate func(httprouter.Handle) httprouter.Handle) *httprouter.Router {
	router := httprouter.New()
	NewBookingHandler(svc, gate, testLogger()).RegisterRoutes(router)
	return router
}

func TestCreateBooking(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(_ context.Context, booking *model.Booking) (*model.InsertResult, error) {
			if booking.BookingEmail != "u@x.com" {
				t.Errorf("unexpected email: %s", booking.BookingEmail)
			}
			if booking.Snapshot["room_title"] != "Deluxe" {
				t.Errorf("expected room snapshot fields, got %v", booking.Snapshot)
			}
			return &model.InsertResult{InsertedID: "665f1e2a9b1d8f0012345678"}, nil
		},
	}
	router := newRouter(svc, passthroughGate)

	body := `{"booking_email": "u@x.com", "booking_date": "2024-05-01", "room_title": "Deluxe"}`
	req := httptest.NewRequest(http.MethodPost, "/booking-room", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.InsertResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Data.InsertedID != "665f1e2a9b1d8f0012345678" {
		t.Errorf("unexpected inserted id: %s", resp.Data.InsertedID)
	}
}

func TestCreateBookingMalformedBody(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(_ context.Context, _ *model.Booking) (*model.InsertResult, error) {
			t.Fatal("service must not be called for a malformed body")
			return nil, nil
		},
	}
	router := newRouter(svc, passthroughGate)

	req := httptest.NewRequest(http.MethodPost, "/booking-room", strings.NewReader(`{"booking_email":`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestMyBookingsWithoutSessionCookie(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	svc := &mockBookingService{
		listByOwnerFunc: func(_ context.Context, _ string, _ token.Identity) ([]*model.Booking, error) {
			t.Fatal("service must not be called without a session")
			return nil, nil
		},
	}
	router := newRouter(svc, middleware.SessionRequired(tokens, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/my-booking/u@x.com", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestMyBookingsWithSession(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	sessionToken, err := tokens.Issue(token.Identity{Email: "u@x.com"})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	svc := &mockBookingService{
		listByOwnerFunc: func(_ context.Context, email string, identity token.Identity) ([]*model.Booking, error) {
			if email != "u@x.com" || identity.Email != "u@x.com" {
				t.Errorf("unexpected call: email=%q identity=%q", email, identity.Email)
			}
			return []*model.Booking{{ID: "1", BookingEmail: email}}, nil
		},
	}
	router := newRouter(svc, middleware.SessionRequired(tokens, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/my-booking/u@x.com", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionToken})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMyBookingsForbiddenForOtherOwner(t *testing.T) {
	tokens := token.NewService("test-secret", time.Hour)
	sessionToken, err := tokens.Issue(token.Identity{Email: "attacker@x.com"})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	svc := &mockBookingService{
		listByOwnerFunc: func(_ context.Context, _ string, _ token.Identity) ([]*model.Booking, error) {
			return nil, apperrors.Forbidden("forbidden access")
		},
	}
	router := newRouter(svc, middleware.SessionRequired(tokens, testLogger()))

	req := httptest.NewRequest(http.MethodGet, "/my-booking/victim@x.com", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sessionToken})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestUpdateDateRoute(t *testing.T) {
	svc := &mockBookingService{
		updateDateFunc: func(_ context.Context, id string, update *model.BookingDateUpdate) (*model.UpdateResult, error) {
			if id != "665f1e2a9b1d8f0012345678" {
				t.Errorf("unexpected id: %s", id)
			}
			if update.UpdateDate != "2024-06-01" {
				t.Errorf("unexpected date: %s", update.UpdateDate)
			}
			return &model.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	router := newRouter(svc, passthroughGate)

	req := httptest.NewRequest(http.MethodPut, "/update-date/665f1e2a9b1d8f0012345678", strings.NewReader(`{"update_date": "2024-06-01"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteRouteNotFound(t *testing.T) {
	svc := &mockBookingService{
		deleteFunc: func(_ context.Context, id string) (*model.DeleteResult, error) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		},
	}
	router := newRouter(svc, passthroughGate)

	req := httptest.NewRequest(http.MethodDelete, "/my-booking/665f1e2a9b1d8f0012345678", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestEditAndReviewLookupsAreOpen(t *testing.T) {
	booking := &model.Booking{BookingEmail: "u@x.com", BookingDate: "2024-05-01"}
	svc := &mockBookingService{
		getForEditFunc: func(_ context.Context, _ string) (*model.Booking, error) {
			return booking, nil
		},
		getForReviewFunc: func(_ context.Context, _ string) (*model.Booking, error) {
			return booking, nil
		},
	}
	router := newRouter(svc, passthroughGate)

	for _, path := range []string{"/update-date/665f1e2a9b1d8f0012345678", "/review/665f1e2a9b1d8f0012345678"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}
