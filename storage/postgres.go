package storage

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/diyahomestylist/poppyandteal/cartstore"
	"github.com/diyahomestylist/poppyandteal/logger"
)

const postgresChannel = "cart_storage_changes"

// Postgres keeps values in the cart_storage table created by the migrations in
// database/migration. Writes send pg_notify inside the same transaction, so listeners only
// hear about committed changes.
type Postgres struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewPostgres wraps an already connected pool. The caller keeps ownership of pool.
func NewPostgres(pool *pgxpool.Pool, log *logger.Logger) *Postgres {
	if log == nil {
		log = logger.NewNop()
	}
	return &Postgres{pool: pool, log: log.With("storage", "postgres")}
}

func (p *Postgres) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := p.pool.QueryRow(ctx, `SELECT value FROM cart_storage WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", cartstore.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "select cart_storage")
	}
	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	return p.write(ctx, key, `
		INSERT INTO cart_storage (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, key, value)
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	return p.write(ctx, key, `DELETE FROM cart_storage WHERE key = $1`, key)
}

func (p *Postgres) write(ctx context.Context, key, query string, args ...any) error {
	payload, err := json.Marshal(cartstore.Change{Key: key, Origin: cartstore.OriginFrom(ctx)})
	if err != nil {
		return errors.Wrap(err, "encode change")
	}
	err = pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `SELECT pg_notify($1, $2)`, postgresChannel, string(payload))
		return err
	})
	return errors.Wrap(err, "write cart_storage")
}

func (p *Postgres) Watch(ctx context.Context, fn func(cartstore.Change)) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return errors.Wrap(err, "acquire listen connection")
	}
	defer func() {
		_, _ = conn.Exec(context.Background(), "UNLISTEN *")
		conn.Release()
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+postgresChannel); err != nil {
		return errors.Wrap(err, "listen")
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "wait for notification")
		}
		var c cartstore.Change
		if err := json.Unmarshal([]byte(n.Payload), &c); err != nil {
			p.log.Warn("bad storage change payload", "error", err)
			continue
		}
		fn(c)
	}
}

func (p *Postgres) Close() error { return nil }
