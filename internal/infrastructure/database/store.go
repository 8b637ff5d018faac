package database

import (
	"context"
	"fmt"

	"marmoraria_tech/internal/adapter/persistence/kv"
	"marmoraria_tech/internal/infrastructure/config"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// OpenStore connects the configured substrate. The returned close func
// releases its connections and is never nil.
func OpenStore(ctx context.Context, s config.StorageConfig, logger *zap.Logger) (kv.Store, func() error, error) {
	noop := func() error { return nil }
	log := logger.With(zap.String("driver", s.Driver))

	switch s.Driver {
	case config.StorageMemory, "":
		log.Warn("[storage][database] in-memory store; data is lost on exit")
		return kv.NewMemoryStore(), noop, nil

	case config.StorageDynamoDB:
		ddb, err := ConnectDynamoDB(ctx, DynamoSettings{Region: s.AWSRegion, Endpoint: s.AWSEndpoint})
		if err != nil {
			return nil, noop, err
		}
		if err := EnsureRecordsTable(ctx, ddb, s.DynamoTable); err != nil {
			return nil, noop, err
		}
		log.Info("[storage][database] dynamodb ready", zap.String("table", s.DynamoTable), zap.String("endpoint", s.AWSEndpoint))
		return kv.NewDynamoStore(ddb, s.DynamoTable), noop, nil

	case config.StorageRedis:
		rdb, err := ConnectRedis(ctx, RedisSettings{Addr: s.RedisAddr, Password: s.RedisPassword, DB: s.RedisDB})
		if err != nil {
			return nil, noop, err
		}
		log.Info("[storage][database] redis ready", zap.String("addr", s.RedisAddr))
		return kv.NewRedisStore(rdb, s.RedisPrefix), rdb.Close, nil

	case config.StorageSQLite, config.StoragePostgres:
		var (
			db  *sqlx.DB
			err error
		)
		if s.Driver == config.StorageSQLite {
			db, err = OpenSQLite(ctx, s.SQLitePath)
		} else {
			db, err = OpenPostgres(ctx, s.PostgresDSN)
		}
		if err != nil {
			return nil, noop, err
		}
		store := kv.NewSQLStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		log.Info("[storage][database] sql store ready")
		return store, db.Close, nil
	}
	return nil, noop, fmt.Errorf("%w: %q", config.ErrUnknownStorage, s.Driver)
}
