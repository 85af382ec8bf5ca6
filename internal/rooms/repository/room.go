package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	roomserrors "servenest/internal/rooms/errors"
	"servenest/pkg/config"
	mongoutil "servenest/pkg/db/mongo"
	"servenest/pkg/model"
)

const CollectionName = "rooms"

type RoomRepository interface {
	FindAll(ctx context.Context, minPrice, maxPrice *int) ([]*model.Room, error)
	FindByID(ctx context.Context, id string) (*model.Room, error)
	UpdateAvailability(ctx context.Context, title string, availability bool) (*mongo.UpdateResult, error)
	IncrementTotalReview(ctx context.Context, title string) (*mongo.UpdateResult, error)
}

type mongoRoomRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoRoomRepository(cfg *config.Config) RoomRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRoomRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// FindAll applies an inclusive price range filter. A nil bound leaves
// that side open; two nil bounds return every room.
func (r *mongoRoomRepository) FindAll(ctx context.Context, minPrice, maxPrice *int) ([]*model.Room, error) {
	ctx, cancel := mongoutil.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := buildPriceFilter(minPrice, maxPrice)

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []*model.Room
	if err = cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}

	return rooms, nil
}

func buildPriceFilter(minPrice, maxPrice *int) bson.M {
	if minPrice == nil && maxPrice == nil {
		return bson.M{}
	}

	bounds := bson.M{}
	if minPrice != nil {
		bounds["$gte"] = *minPrice
	}
	if maxPrice != nil {
		bounds["$lte"] = *maxPrice
	}
	return bson.M{"price_per_night": bounds}
}

func (r *mongoRoomRepository) FindByID(ctx context.Context, id string) (*model.Room, error) {
	ctx, cancel := mongoutil.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", roomserrors.ErrInvalidID, id)
	}

	var room model.Room
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&room)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, roomserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}

	return &room, nil
}

// UpdateAvailability keys on room_title, a deliberate secondary-key
// lookup. Zero matched documents is a valid no-op, not an error.
func (r *mongoRoomRepository) UpdateAvailability(ctx context.Context, title string, availability bool) (*mongo.UpdateResult, error) {
	ctx, cancel := mongoutil.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"availability": availability}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"room_title": title}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update room availability: %w", err)
	}

	return result, nil
}

func (r *mongoRoomRepository) IncrementTotalReview(ctx context.Context, title string) (*mongo.UpdateResult, error) {
	ctx, cancel := mongoutil.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	update := bson.M{"$inc": bson.M{"total_review": 1}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"room_title": title}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to increment room review counter: %w", err)
	}

	return result, nil
}
