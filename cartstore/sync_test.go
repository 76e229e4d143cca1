package cartstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diyahomestylist/poppyandteal/cartstore"
	"github.com/diyahomestylist/poppyandteal/models"
	"github.com/diyahomestylist/poppyandteal/storage"
)

type recorder struct {
	mu     sync.Mutex
	events []cartstore.Event
	remote chan struct{}
}

func newRecorder() *recorder {
	return &recorder{remote: make(chan struct{}, 16)}
}

func (r *recorder) listen(ev cartstore.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	if ev.Remote {
		select {
		case r.remote <- struct{}{}:
		default:
		}
	}
}

func (r *recorder) remoteCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Remote {
			n++
		}
	}
	return n
}

func TestSyncNotifiesOtherStoresOnSameKey(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mem := storage.NewMemory()
	cartSync := cartstore.NewSync(mem, nil)

	writer := cartstore.New(mem, cartstore.KeyFor("p1"))
	reader := cartstore.New(mem, cartstore.KeyFor("p1"))
	other := cartstore.New(mem, cartstore.KeyFor("p2"))
	for _, st := range []*cartstore.Store{writer, reader, other} {
		defer cartSync.Attach(st)()
	}

	writerEvents, readerEvents, otherEvents := newRecorder(), newRecorder(), newRecorder()
	writer.Subscribe(writerEvents.listen)
	reader.Subscribe(readerEvents.listen)
	other.Subscribe(otherEvents.listen)

	done := make(chan error, 1)
	go func() { done <- cartSync.Run(ctx) }()

	p := models.Product{ID: "1", Name: "Boho Wall Hanging", Price: decimal.NewFromInt(1299)}
	deadline := time.After(2 * time.Second)
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()

wait:
	for {
		select {
		case <-readerEvents.remote:
			break wait
		case <-tick.C:
			// the watcher may not be registered yet; keep writing until it is
			writer.Add(ctx, p)
		case <-deadline:
			t.Fatal("reader was not notified of the writer's change")
		}
	}

	if got := reader.Count(ctx); got == 0 {
		t.Errorf("reader sees an empty cart after remote change")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if n := writerEvents.remoteCount(); n != 0 {
		t.Errorf("writer heard %d remote events for its own writes", n)
	}
	if n := otherEvents.remoteCount(); n != 0 {
		t.Errorf("store on another key heard %d remote events", n)
	}
}

func TestDetachStopsRemoteDelivery(t *testing.T) {
	mem := storage.NewMemory()
	cartSync := cartstore.NewSync(mem, nil)
	st := cartstore.New(mem, cartstore.KeyFor("p1"))

	detach := cartSync.Attach(st)
	detach()
	detach()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	calls := 0
	st.Subscribe(func(cartstore.Event) { calls++ })

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = mem.Set(context.Background(), cartstore.KeyFor("p1"), "[]")
	}()
	if err := cartSync.Run(ctx); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if calls != 0 {
		t.Errorf("detached store notified %d times", calls)
	}
}
