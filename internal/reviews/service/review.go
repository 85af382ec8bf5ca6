package service

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	roomsrepository "servenest/internal/rooms/repository"

	"servenest/internal/reviews/repository"
	"servenest/internal/reviews/validator"
	"servenest/pkg/config"
	apperrors "servenest/pkg/errors"
	"servenest/pkg/events"
	"servenest/pkg/model"
)

type ReviewService interface {
	Submit(ctx context.Context, review *model.Review) (*model.InsertResult, error)
	List(ctx context.Context) ([]*model.Review, error)
}

type reviewService struct {
	repo      repository.ReviewRepository
	roomRepo  roomsrepository.RoomRepository
	validator *validator.ReviewValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewReviewService(
	repo repository.ReviewRepository,
	roomRepo roomsrepository.RoomRepository,
	validator *validator.ReviewValidator,
	publisher events.Publisher,
	cfg *config.Config,
) ReviewService {
	return &reviewService{
		repo:      repo,
		roomRepo:  roomRepo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Submit runs both dependent writes in one transaction: the review
// insert and the room counter increment either both land or neither
// does, so total_review can never under-count after a partial failure.
// A review naming a room title with no matching document still inserts;
// the increment is a zero-match no-op in that case.
func (s *reviewService) Submit(ctx context.Context, review *model.Review) (*model.InsertResult, error) {
	if err := s.validator.Validate(review); err != nil {
		s.cfg.Log.Warn("Review validation failed", "error", err)
		return nil, apperrors.Validation("Review validation failed", map[string]any{"error": err.Error()})
	}

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.Create(sessCtx, review); err != nil {
			return apperrors.StoreUnavailable(err)
		}
		if _, err := s.roomRepo.IncrementTotalReview(sessCtx, review.RoomTitle); err != nil {
			return apperrors.StoreUnavailable(err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to submit review", "room_title", review.RoomTitle, "error", err)
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.StoreUnavailable(err)
	}

	s.cfg.Log.Info("Review submitted",
		"id", review.ID,
		"room_title", review.RoomTitle,
		"rating", review.Rating,
	)
	if err := s.publisher.Publish(ctx, review.RoomTitle, events.TypeReviewSubmitted, map[string]any{
		"id":         review.ID,
		"room_title": review.RoomTitle,
		"rating":     review.Rating,
	}); err != nil {
		s.cfg.Log.Error("Failed to publish event", "event_type", events.TypeReviewSubmitted, "error", err)
	}

	return &model.InsertResult{InsertedID: review.ID}, nil
}

func (s *reviewService) List(ctx context.Context) ([]*model.Review, error) {
	reviews, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list reviews", "error", err)
		return nil, apperrors.StoreUnavailable(err)
	}

	if reviews == nil {
		reviews = []*model.Review{}
	}
	return reviews, nil
}
