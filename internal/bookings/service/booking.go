package service

import (
	"context"
	"errors"

	"servenest/internal/auth/token"
	bookingserrors "servenest/internal/bookings/errors"
	"servenest/internal/bookings/repository"
	"servenest/internal/bookings/validator"
	"servenest/pkg/config"
	apperrors "servenest/pkg/errors"
	"servenest/pkg/events"
	"servenest/pkg/model"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (*model.InsertResult, error)
	ListByOwner(ctx context.Context, email string, identity token.Identity) ([]*model.Booking, error)
	GetForEdit(ctx context.Context, id string) (*model.Booking, error)
	GetForReview(ctx context.Context, id string) (*model.Booking, error)
	UpdateDate(ctx context.Context, id string, update *model.BookingDateUpdate) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (*model.InsertResult, error) {
	if err := s.validator.ValidateCreate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.StoreUnavailable(err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"booking_email", booking.BookingEmail,
		"booking_date", booking.BookingDate,
	)
	s.publish(ctx, booking.ID, events.TypeBookingCreated, map[string]any{
		"id":            booking.ID,
		"booking_email": booking.BookingEmail,
		"booking_date":  booking.BookingDate,
	})

	return &model.InsertResult{InsertedID: booking.ID}, nil
}

// ListByOwner is the one ownership-checked operation: the session
// identity must match the requested owner key or nothing is returned.
func (s *bookingService) ListByOwner(ctx context.Context, email string, identity token.Identity) ([]*model.Booking, error) {
	if email == "" {
		return nil, apperrors.InvalidInput("Owner email cannot be empty")
	}
	if identity.Email != email {
		s.cfg.Log.Warn("Booking list denied for mismatched identity",
			"requested_owner", email,
			"caller", identity.Email,
		)
		return nil, apperrors.Forbidden("forbidden access")
	}

	bookings, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "booking_email", email, "error", err)
		return nil, apperrors.StoreUnavailable(err)
	}

	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) GetForEdit(ctx context.Context, id string) (*model.Booking, error) {
	return s.getByID(ctx, id, true)
}

func (s *bookingService) GetForReview(ctx context.Context, id string) (*model.Booking, error) {
	return s.getByID(ctx, id, false)
}

func (s *bookingService) getByID(ctx context.Context, id string, excludeID bool) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	var booking *model.Booking
	var err error
	if excludeID {
		booking, err = s.repo.FindByIDWithoutID(ctx, id)
	} else {
		booking, err = s.repo.FindByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		s.cfg.Log.Error("Failed to retrieve booking", "id", id, "error", err)
		return nil, apperrors.StoreUnavailable(err)
	}

	return booking, nil
}

func (s *bookingService) UpdateDate(ctx context.Context, id string, update *model.BookingDateUpdate) (*model.UpdateResult, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	if err := s.validator.ValidateDateUpdate(update); err != nil {
		s.cfg.Log.Warn("Booking date update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	result, err := s.repo.UpdateDate(ctx, id, update.UpdateDate)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		s.cfg.Log.Error("Failed to update booking date", "id", id, "error", err)
		return nil, apperrors.StoreUnavailable(err)
	}

	s.cfg.Log.Info("Booking date updated", "id", id, "booking_date", update.UpdateDate)
	s.publish(ctx, id, events.TypeBookingDateUpdated, map[string]any{
		"id":           id,
		"booking_date": update.UpdateDate,
	})

	return &model.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return nil, apperrors.StoreUnavailable(err)
	}

	s.cfg.Log.Info("Booking deleted", "id", id)
	s.publish(ctx, id, events.TypeBookingDeleted, map[string]any{"id": id})

	return &model.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

// publish is best-effort: event delivery failures are logged and never
// surfaced to the caller whose write already succeeded.
func (s *bookingService) publish(ctx context.Context, key, eventType string, payload map[string]any) {
	if err := s.publisher.Publish(ctx, key, eventType, payload); err != nil {
		s.cfg.Log.Error("Failed to publish event", "event_type", eventType, "key", key, "error", err)
	}
}
