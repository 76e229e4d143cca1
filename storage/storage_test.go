package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/diyahomestylist/poppyandteal/cartstore"
	"github.com/diyahomestylist/poppyandteal/config"
)

// exerciseBackend runs the behaviour every driver must share.
func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()
	key := "test:" + uuid.NewString()

	if _, err := b.Get(ctx, key); !errors.Is(err, cartstore.ErrNotFound) {
		t.Fatalf("Get(missing) err = %v, want ErrNotFound", err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	changes := make(chan cartstore.Change, 16)
	watchDone := make(chan error, 1)
	go func() {
		watchDone <- b.Watch(watchCtx, func(c cartstore.Change) {
			if c.Key != key {
				return
			}
			select {
			case changes <- c:
			default:
			}
		})
	}()

	// Keep writing until the watcher is subscribed and reports one of our writes.
	origin := uuid.NewString()
	var got cartstore.Change
	deadline := time.After(5 * time.Second)
wait:
	for {
		if err := b.Set(cartstore.WithOrigin(ctx, origin), key, `[{"product_id":"1"}]`); err != nil {
			t.Fatalf("Set() = %v", err)
		}
		select {
		case got = <-changes:
			break wait
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatal("no change observed after Set")
		}
	}
	if diff := cmp.Diff(cartstore.Change{Key: key, Origin: origin}, got); diff != "" {
		t.Errorf("change mismatch (-want +got):\n%s", diff)
	}

	value, err := b.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if value != `[{"product_id":"1"}]` {
		t.Errorf("Get() = %q", value)
	}

	if err := b.Set(ctx, key, "[]"); err != nil {
		t.Fatalf("Set() overwrite = %v", err)
	}
	if value, _ := b.Get(ctx, key); value != "[]" {
		t.Errorf("Get() after overwrite = %q, want []", value)
	}

	if err := b.Remove(ctx, key); err != nil {
		t.Fatalf("Remove() = %v", err)
	}
	if _, err := b.Get(ctx, key); !errors.Is(err, cartstore.ErrNotFound) {
		t.Errorf("Get() after Remove err = %v, want ErrNotFound", err)
	}
	if err := b.Remove(ctx, key); err != nil {
		t.Errorf("Remove(missing) = %v, want nil", err)
	}

	cancel()
	select {
	case err := <-watchDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Watch() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("Watch did not return after cancel")
	}
}

func TestMemory(t *testing.T) {
	exerciseBackend(t, NewMemory())
}

func TestBolt(t *testing.T) {
	b, err := OpenBolt(filepath.Join(t.TempDir(), "cart.db"))
	if err != nil {
		t.Fatalf("OpenBolt() = %v", err)
	}
	defer b.Close()
	exerciseBackend(t, b)
}

func TestBoltSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.db")
	ctx := context.Background()

	b, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt() = %v", err)
	}
	if err := b.Set(ctx, cartstore.KeyFor("p1"), `[{"product_id":"4","quantity":2}]`); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	reopened, err := OpenBolt(path)
	if err != nil {
		t.Fatalf("OpenBolt() reopen = %v", err)
	}
	defer reopened.Close()

	st := cartstore.New(reopened, cartstore.KeyFor("p1"))
	items := st.Items(ctx)
	if len(items) != 1 || items[0].ProductID != "4" || items[0].Quantity != 2 {
		t.Errorf("Items() after reopen = %+v", items)
	}
}

func TestRedis(t *testing.T) {
	if os.Getenv("REDIS_ADDR") == "" && os.Getenv("REDIS_URL") == "" {
		t.Skip("REDIS_ADDR not set")
	}
	cfg := config.Load()
	rdb, err := config.ConnectRedis(context.Background(), cfg)
	if err != nil {
		t.Fatalf("ConnectRedis() = %v", err)
	}
	defer rdb.Close()

	exerciseBackend(t, NewRedis(rdb, "cart_storage_test_"+uuid.NewString(), nil))
}

func TestPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set")
	}
	pool, err := config.ConnectDB(context.Background(), config.Load())
	if err != nil {
		t.Fatalf("ConnectDB() = %v", err)
	}
	defer pool.Close()

	exerciseBackend(t, NewPostgres(pool, nil))
}
