package service

import (
	"context"
	"errors"

	roomserrors "servenest/internal/rooms/errors"
	"servenest/internal/rooms/repository"
	"servenest/pkg/config"
	apperrors "servenest/pkg/errors"
	"servenest/pkg/model"
)

type RoomService interface {
	List(ctx context.Context, minPrice, maxPrice *int) ([]*model.Room, error)
	Get(ctx context.Context, id string) (*model.Room, error)
	SetAvailability(ctx context.Context, title string, availability bool) (*model.UpdateResult, error)
}

type roomService struct {
	repo repository.RoomRepository
	cfg  *config.Config
}

func NewRoomService(repo repository.RoomRepository, cfg *config.Config) RoomService {
	return &roomService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *roomService) List(ctx context.Context, minPrice, maxPrice *int) ([]*model.Room, error) {
	rooms, err := s.repo.FindAll(ctx, minPrice, maxPrice)
	if err != nil {
		s.cfg.Log.Error("Failed to list rooms", "error", err)
		return nil, apperrors.StoreUnavailable(err)
	}

	if rooms == nil {
		rooms = []*model.Room{}
	}
	return rooms, nil
}

func (s *roomService) Get(ctx context.Context, id string) (*model.Room, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Room", id)
		}
		if errors.Is(err, roomserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid room ID format")
		}
		s.cfg.Log.Error("Failed to retrieve room", "id", id, "error", err)
		return nil, apperrors.StoreUnavailable(err)
	}

	return room, nil
}

func (s *roomService) SetAvailability(ctx context.Context, title string, availability bool) (*model.UpdateResult, error) {
	if title == "" {
		return nil, apperrors.InvalidInput("Room title cannot be empty")
	}

	result, err := s.repo.UpdateAvailability(ctx, title, availability)
	if err != nil {
		s.cfg.Log.Error("Failed to update room availability", "room_title", title, "error", err)
		return nil, apperrors.StoreUnavailable(err)
	}

	if result.MatchedCount == 0 {
		s.cfg.Log.Warn("Availability update matched no room", "room_title", title)
	} else {
		s.cfg.Log.Info("Room availability updated",
			"room_title", title,
			"availability", availability,
			"modified", result.ModifiedCount,
		)
	}

	return &model.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}
