package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	MongoClient *mongo.Client
	DB          *mongo.Database
)

// Connect connects to MongoDB using the provided URI and database name.
// When either value is empty the store is considered not configured and
// DB stays nil; callers degrade to their documented fallbacks.
func Connect(mongoURL, dbName string) error {
	if mongoURL == "" || dbName == "" {
		zap.L().Warn("DATABASE_URL or DATABASE_NAME not set, running without a database")
		return nil
	}

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURL)

	client, err := mongo.Connect(timeoutCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(timeoutCtx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	DB = client.Database(dbName)
	zap.L().Info("Connected to MongoDB", zap.String("database", dbName))
	return nil
}

// Close disconnects from MongoDB. No-op when the store was never configured.
func Close() error {
	if MongoClient == nil {
		return nil
	}

	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := MongoClient.Disconnect(disconnectCtx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	zap.L().Info("Disconnected from MongoDB")
	return nil
}
