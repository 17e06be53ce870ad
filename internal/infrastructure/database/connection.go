package database

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool crée un pool de connexions pgx vers PostgreSQL.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	slog.Info("base de données PostgreSQL connectée", "host", pool.Config().ConnConfig.Host)
	return pool, nil
}
