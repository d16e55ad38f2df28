// Package database wraps the MongoDB v2 driver connection used by the store
// adapters.
package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"

	"github.com/skillwaves/skillwaves-server/config"
)

// MongoDB holds the shared client and database handle. One instance per
// process; the driver maintains its own connection pool.
type MongoDB struct {
	config *config.MongoConfig
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

func NewMongoDB(config *config.MongoConfig) *MongoDB {
	if config.ConnectTimeout <= 0 {
		config.ConnectTimeout = 30
	}
	return &MongoDB{
		config: config,
		logger: zap.L(),
	}
}

func (m *MongoDB) Connect() error {
	m.logger.Info("Connecting to MongoDB",
		zap.String("database", m.config.Database),
		zap.String("auth_source", m.config.AuthSource),
		zap.Int("connect_timeout_seconds", m.config.ConnectTimeout))

	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(m.config.ConnectTimeout)*time.Second,
	)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(m.buildURI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetRetryWrites(true).
		SetRetryReads(true).
		SetConnectTimeout(time.Duration(m.config.ConnectTimeout) * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	if m.config.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(m.config.MaxPoolSize)
	}
	if m.config.MinPoolSize > 0 {
		clientOptions.SetMinPoolSize(m.config.MinPoolSize)
	}

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		m.logger.Error("Failed to connect to MongoDB", zap.Error(err))
		return fmt.Errorf("connect to mongodb: %w", err)
	}

	// Ping the admin database to confirm the deployment is reachable before
	// the server starts accepting requests.
	var result bson.M
	err = client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Decode(&result)
	if err != nil {
		m.logger.Error("MongoDB ping failed", zap.Error(err))
		client.Disconnect(ctx)
		return fmt.Errorf("ping mongodb: %w", err)
	}

	m.client = client
	m.db = client.Database(m.config.Database)

	m.logger.Info("Successfully connected to MongoDB",
		zap.String("database", m.config.Database))
	return nil
}

// buildURI prefers an explicit URI and otherwise assembles one from the
// configured credentials. Credentials are escaped so they survive URL
// characters.
func (m *MongoDB) buildURI() string {
	if m.config.URI != "" {
		return m.config.URI
	}

	uri := fmt.Sprintf("mongodb+srv://%s:%s@skillwavescluster.88ddzp7.mongodb.net/?retryWrites=true&w=majority",
		url.QueryEscape(m.config.Username), url.QueryEscape(m.config.Password))

	if m.config.ReplicaSet != "" {
		uri += "&replicaSet=" + m.config.ReplicaSet
	}
	if m.config.AuthSource != "" {
		uri += "&authSource=" + m.config.AuthSource
	}
	return uri
}

// Collection returns a handle on a collection in the configured database.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping verifies the primary is reachable. Used by the health endpoint.
func (m *MongoDB) Ping(ctx context.Context) error {
	if !m.IsConnected() {
		return fmt.Errorf("mongodb client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		m.logger.Error("MongoDB ping failed", zap.Error(err))
		return fmt.Errorf("ping mongodb: %w", err)
	}
	return nil
}

func (m *MongoDB) IsConnected() bool {
	return m.client != nil
}

func (m *MongoDB) Close() error {
	if m.client == nil {
		return nil
	}
	m.logger.Info("Closing MongoDB connection")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := m.client.Disconnect(ctx); err != nil {
		m.logger.Error("MongoDB disconnect error", zap.Error(err))
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	m.logger.Info("MongoDB connection closed successfully")
	return nil
}
