package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Gthulhu/priosim/config"
	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/pkg/logger"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/fx"
)

const (
	simulationRunCollection = "simulation_runs"
	connectTimeout          = 10 * time.Second
)

type Params struct {
	fx.In
	MongoConfig config.MongoDBConfig
}

// NewRepository returns the MongoDB store when it is enabled and the in-memory store otherwise.
func NewRepository(params Params) (domain.Repository, error) {
	if !params.MongoConfig.Enable {
		logger.Logger(context.Background()).Info().Msg("mongodb disabled, keeping simulation runs in memory")
		return NewMemoryRepository(), nil
	}
	return NewMongoRepository(params.MongoConfig)
}

type repo struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoRepository(cfg config.MongoDBConfig) (*repo, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI("")))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	return &repo{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

func (r *repo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
