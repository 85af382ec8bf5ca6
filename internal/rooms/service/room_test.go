package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	roomserrors "servenest/internal/rooms/errors"
	"servenest/pkg/config"
	apperrors "servenest/pkg/errors"
	"servenest/pkg/logger"
	"servenest/pkg/model"
)

type mockRoomRepository struct {
	findAllFunc              func(ctx context.Context, minPrice, maxPrice *int) ([]*model.Room, error)
	findByIDFunc             func(ctx context.Context, id string) (*model.Room, error)
	updateAvailabilityFunc   func(ctx context.Context, title string, availability bool) (*mongo.UpdateResult, error)
	incrementTotalReviewFunc func(ctx context.Context, title string) (*mongo.UpdateResult, error)
}

func (m *mockRoomRepository) FindAll(ctx context.Context, minPrice, maxPrice *int) ([]*model.Room, error) {
	return m.findAllFunc(ctx, minPrice, maxPrice)
}

func (m *mockRoomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockRoomRepository) UpdateAvailability(ctx context.Context, title string, availability bool) (*mongo.UpdateResult, error) {
	return m.updateAvailabilityFunc(ctx, title, availability)
}

func (m *mockRoomRepository) IncrementTotalReview(ctx context.Context, title string) (*mongo.UpdateResult, error) {
	return m.incrementTotalReviewFunc(ctx, title)
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
}

func intPtr(v int) *int { return &v }

func TestRoomServiceListPassesBoundsThrough(t *testing.T) {
	var gotMin, gotMax *int
	repo := &mockRoomRepository{
		findAllFunc: func(_ context.Context, minPrice, maxPrice *int) ([]*model.Room, error) {
			gotMin, gotMax = minPrice, maxPrice
			return []*model.Room{{RoomTitle: "Deluxe"}}, nil
		},
	}
	svc := NewRoomService(repo, testConfig())

	rooms, err := svc.List(context.Background(), intPtr(100), intPtr(300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 1 || rooms[0].RoomTitle != "Deluxe" {
		t.Errorf("unexpected rooms: %+v", rooms)
	}
	if gotMin == nil || *gotMin != 100 {
		t.Errorf("expected minPrice 100, got %v", gotMin)
	}
	if gotMax == nil || *gotMax != 300 {
		t.Errorf("expected maxPrice 300, got %v", gotMax)
	}
}

func TestRoomServiceListEmptyResultIsEmptySlice(t *testing.T) {
	repo := &mockRoomRepository{
		findAllFunc: func(_ context.Context, _, _ *int) ([]*model.Room, error) {
			return nil, nil
		},
	}
	svc := NewRoomService(repo, testConfig())

	rooms, err := svc.List(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rooms == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(rooms) != 0 {
		t.Errorf("expected no rooms, got %d", len(rooms))
	}
}

func TestRoomServiceListStoreFailure(t *testing.T) {
	repo := &mockRoomRepository{
		findAllFunc: func(_ context.Context, _, _ *int) ([]*model.Room, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := NewRoomService(repo, testConfig())

	_, err := svc.List(context.Background(), nil, nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeStoreUnavailable {
		t.Errorf("expected code %s, got %s", apperrors.CodeStoreUnavailable, appErr.Code)
	}
	if appErr.StatusCode() != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", appErr.StatusCode())
	}
}

func TestRoomServiceGet(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		repoErr    error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "not found",
			id:         "665f1e2a9b1d8f0012345678",
			repoErr:    roomserrors.ErrNotFound,
			wantCode:   apperrors.CodeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid id",
			id:         "not-an-object-id",
			repoErr:    roomserrors.ErrInvalidID,
			wantCode:   apperrors.CodeInvalidInput,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "store failure",
			id:         "665f1e2a9b1d8f0012345678",
			repoErr:    errors.New("server selection timeout"),
			wantCode:   apperrors.CodeStoreUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRoomRepository{
				findByIDFunc: func(_ context.Context, _ string) (*model.Room, error) {
					return nil, tt.repoErr
				},
			}
			svc := NewRoomService(repo, testConfig())

			_, err := svc.Get(context.Background(), tt.id)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, appErr.Code)
			}
			if appErr.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, appErr.StatusCode())
			}
		})
	}
}

func TestRoomServiceGetEmptyID(t *testing.T) {
	repo := &mockRoomRepository{
		findByIDFunc: func(_ context.Context, _ string) (*model.Room, error) {
			t.Fatal("repository must not be called for an empty id")
			return nil, nil
		},
	}
	svc := NewRoomService(repo, testConfig())

	_, err := svc.Get(context.Background(), "")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if apperrors.AsAppError(err).Code != apperrors.CodeInvalidInput {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestRoomServiceSetAvailabilityZeroMatchIsNoOp(t *testing.T) {
	repo := &mockRoomRepository{
		updateAvailabilityFunc: func(_ context.Context, _ string, _ bool) (*mongo.UpdateResult, error) {
			return &mongo.UpdateResult{MatchedCount: 0, ModifiedCount: 0}, nil
		},
	}
	svc := NewRoomService(repo, testConfig())

	result, err := svc.SetAvailability(context.Background(), "Nonexistent", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MatchedCount != 0 || result.ModifiedCount != 0 {
		t.Errorf("expected zero counts, got %+v", result)
	}
}

func TestRoomServiceSetAvailability(t *testing.T) {
	var gotTitle string
	var gotAvailability bool
	repo := &mockRoomRepository{
		updateAvailabilityFunc: func(_ context.Context, title string, availability bool) (*mongo.UpdateResult, error) {
			gotTitle, gotAvailability = title, availability
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	svc := NewRoomService(repo, testConfig())

	result, err := svc.SetAvailability(context.Background(), "Deluxe", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTitle != "Deluxe" || gotAvailability != false {
		t.Errorf("unexpected repository call: title=%q availability=%v", gotTitle, gotAvailability)
	}
	if result.MatchedCount != 1 || result.ModifiedCount != 1 {
		t.Errorf("unexpected counts: %+v", result)
	}
}
