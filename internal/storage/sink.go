// Package storage implements the persistence sink: a schema-qualified,
// conflict-tolerant Postgres writer, grounded line-for-line on
// original_source/crates/eventify-core/src/storage/{pg.rs,eth.rs},
// generalised from the original's single hardcoded "eth" schema to any of
// the nine supported networks.
package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/eventify-go/eventify/internal/utils"
)

// Sink owns the shared connection pool. It is cloneable (copy the pointer)
// and safe for concurrent use by every network's Collector, per §4.3/§5.
type Sink struct {
	pool *pgxpool.Pool
	lg   *logrus.Logger
}

// New builds a lazily-connected pool, mirroring the teacher's
// core/connection_pool.go pool-construction shape. Every pgxpool setting
// (MaxConnLifetime, HealthCheck and the rest) is left at its default; the
// fixed timeout is applied per call by exec, which bounds each
// acquire-and-execute round with acquireTimeout plus five seconds.
func New(ctx context.Context, databaseURL string, lg *logrus.Logger) (*Sink, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, utils.Wrap(err, "parse database url")
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, utils.Wrap(err, "connect database")
	}

	return &Sink{pool: pool, lg: lg}, nil
}

// Close releases the pool.
func (s *Sink) Close() { s.pool.Close() }

const acquireTimeout = 2 * time.Second

func (s *Sink) exec(ctx context.Context, sql string, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, acquireTimeout+5*time.Second)
	defer cancel()

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, sql, args...)
	return err
}
