package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "serveNest"
	DefaultMongoConnTimeout  = 10 * time.Second
	DefaultMongoReadTimeout  = 5 * time.Second
	DefaultMongoWriteTimeout = 5 * time.Second

	DefaultPort     = "5000"
	DefaultLogLevel = "info"
	DefaultAppEnv   = "development"

	// Session tokens live 365 days, matching the original deployment.
	DefaultSessionTTL = 365 * 24 * time.Hour

	DefaultAllowedOrigins = "http://localhost:5173"

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultKafkaEventsTopic = "servenest.events"

	ProductionEnv = "production"
)
