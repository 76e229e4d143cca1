package storage

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/diyahomestylist/poppyandteal/cartstore"
	"github.com/diyahomestylist/poppyandteal/logger"
)

const DefaultRedisChannel = "cart_storage_changes"

// Redis stores each key as a plain string and announces every write on a pub/sub channel
// in the same pipeline, so every instance sharing the server sees the change.
type Redis struct {
	rdb     *redis.Client
	channel string
	log     *logger.Logger
}

// NewRedis wraps an already connected client. The caller keeps ownership of rdb.
func NewRedis(rdb *redis.Client, channel string, log *logger.Logger) *Redis {
	if channel == "" {
		channel = DefaultRedisChannel
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Redis{rdb: rdb, channel: channel, log: log.With("storage", "redis")}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", cartstore.ErrNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "redis get")
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	payload, err := r.changePayload(ctx, key)
	if err != nil {
		return err
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, value, 0)
		pipe.Publish(ctx, r.channel, payload)
		return nil
	})
	return errors.Wrap(err, "redis set")
}

func (r *Redis) Remove(ctx context.Context, key string) error {
	payload, err := r.changePayload(ctx, key)
	if err != nil {
		return err
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.Publish(ctx, r.channel, payload)
		return nil
	})
	return errors.Wrap(err, "redis del")
}

func (r *Redis) Watch(ctx context.Context, fn func(cartstore.Change)) error {
	sub := r.rdb.Subscribe(ctx, r.channel)
	defer sub.Close()

	// ensures subscription actually started
	if _, err := sub.Receive(ctx); err != nil {
		return errors.Wrap(err, "redis subscribe")
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var c cartstore.Change
			if err := json.Unmarshal([]byte(m.Payload), &c); err != nil {
				r.log.Warn("bad storage change payload", "error", err)
				continue
			}
			fn(c)
		}
	}
}

func (r *Redis) Close() error { return nil }

func (r *Redis) changePayload(ctx context.Context, key string) (string, error) {
	raw, err := json.Marshal(cartstore.Change{Key: key, Origin: cartstore.OriginFrom(ctx)})
	if err != nil {
		return "", errors.Wrap(err, "encode change")
	}
	return string(raw), nil
}
