package main

import (
	"github.com/joho/godotenv"

	authhandler "servenest/internal/auth/handler"
	"servenest/internal/auth/token"
	bookingshandler "servenest/internal/bookings/handler"
	bookingsrepository "servenest/internal/bookings/repository"
	bookingsservice "servenest/internal/bookings/service"
	bookingsvalidator "servenest/internal/bookings/validator"
	reviewshandler "servenest/internal/reviews/handler"
	reviewsrepository "servenest/internal/reviews/repository"
	reviewsservice "servenest/internal/reviews/service"
	reviewsvalidator "servenest/internal/reviews/validator"
	roomshandler "servenest/internal/rooms/handler"
	roomsrepository "servenest/internal/rooms/repository"
	roomsservice "servenest/internal/rooms/service"
	systemhandler "servenest/internal/system/handler"
	"servenest/pkg/app"
	"servenest/pkg/config"
	"servenest/pkg/events"
	"servenest/pkg/middleware"
)

const ServiceName = "servenest"

func main() {
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	publisher := initPublisher(cfg)
	defer func() {
		if err := publisher.Close(); err != nil {
			cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}()

	tokens := token.NewService(cfg.JWTSecret, cfg.SessionTTL)
	sessionGate := middleware.SessionRequired(tokens, cfg.Log)

	roomRepo := roomsrepository.NewMongoRoomRepository(cfg)
	roomService := roomsservice.NewRoomService(roomRepo, cfg)

	bookingRepo := bookingsrepository.NewMongoBookingRepository(cfg)
	bookingService := bookingsservice.NewBookingService(
		bookingRepo,
		bookingsvalidator.NewBookingValidator(cfg.Log),
		publisher,
		cfg,
	)

	reviewRepo := reviewsrepository.NewMongoReviewRepository(cfg)
	reviewService := reviewsservice.NewReviewService(
		reviewRepo,
		roomRepo,
		reviewsvalidator.NewReviewValidator(cfg.Log),
		publisher,
		cfg,
	)

	cfg.Log.Info("Services initialized", "database", cfg.MongoDatabaseName)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		systemhandler.NewRootHandler(cfg.Log),
		authhandler.NewAuthHandler(tokens, cfg.Production(), cfg.Log),
		roomshandler.NewRoomHandler(roomService, cfg.Log),
		bookingshandler.NewBookingHandler(bookingService, sessionGate, cfg.Log),
		reviewshandler.NewReviewHandler(reviewService, cfg.Log),
	)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if !cfg.EventsEnabled() {
		cfg.Log.Info("Event publishing disabled, no Kafka brokers configured")
		return events.NoopPublisher{}
	}

	cfg.Log.Info("Event publishing enabled",
		"brokers", cfg.KafkaBrokers,
		"topic", cfg.KafkaEventsTopic,
	)
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaEventsTopic, ServiceName, cfg.Log)
}
