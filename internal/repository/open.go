package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/orderdocs/internal/config"
	"github.com/nikolayk812/orderdocs/internal/port"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// CloseFunc releases the store client behind a repository.
type CloseFunc func(ctx context.Context) error

// Open connects to the store named by cfg.StoreURI and pings it once.
func Open(ctx context.Context, cfg config.Config) (port.OrderRepository, CloseFunc, error) {
	scheme, err := cfg.StoreScheme()
	if err != nil {
		return nil, nil, fmt.Errorf("cfg.StoreScheme: %w", err)
	}

	switch scheme {
	case "mongodb", "mongodb+srv":
		return openMongo(ctx, cfg)
	case "postgres", "postgresql":
		return openPostgres(ctx, cfg)
	case "memory":
		slog.Warn("using in-memory order store, data is lost on exit")
		return NewMemoryOrder(), func(context.Context) error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store scheme: %s", scheme)
	}
}

func openMongo(ctx context.Context, cfg config.Config) (port.OrderRepository, CloseFunc, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.StoreURI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo.Connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("client.Ping: %w", err)
	}

	slog.Info("connected to mongodb", "db", cfg.DBName)

	return NewMongoOrder(client.Database(cfg.DBName)), client.Disconnect, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (port.OrderRepository, CloseFunc, error) {
	pool, err := pgxpool.New(ctx, cfg.StoreURI)
	if err != nil {
		return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pool.Ping: %w", err)
	}

	repo, err := NewPostgresOrder(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("NewPostgresOrder: %w", err)
	}

	slog.Info("connected to postgres")

	closeFn := func(context.Context) error {
		pool.Close()
		return nil
	}

	return repo, closeFn, nil
}
