package storage

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/diyahomestylist/poppyandteal/cartstore"
)

var boltBucket = []byte("storage")

// Bolt persists values in a single bbolt file. bbolt holds an exclusive file lock, so
// changes are only ever observed inside this process.
type Bolt struct {
	db   *bbolt.DB
	feed localFeed
}

func OpenBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt file %s", path)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create bolt bucket")
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(boltBucket).Get([]byte(key))
		if v == nil {
			return cartstore.ErrNotFound
		}
		value = string(v)
		return nil
	})
	return value, err
}

func (b *Bolt) Set(ctx context.Context, key, value string) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return errors.Wrap(err, "bolt put")
	}
	b.feed.publish(cartstore.Change{Key: key, Origin: cartstore.OriginFrom(ctx)})
	return nil
}

func (b *Bolt) Remove(ctx context.Context, key string) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(boltBucket).Delete([]byte(key))
	})
	if err != nil {
		return errors.Wrap(err, "bolt delete")
	}
	b.feed.publish(cartstore.Change{Key: key, Origin: cartstore.OriginFrom(ctx)})
	return nil
}

func (b *Bolt) Watch(ctx context.Context, fn func(cartstore.Change)) error {
	return b.feed.watch(ctx, fn)
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
