package storage

import (
	"context"
	"sync"

	"github.com/diyahomestylist/poppyandteal/cartstore"
)

const watchBuffer = 64

// localFeed fans writes out to watchers inside this process. Delivery happens on the
// watcher's goroutine so a writer never runs listener code while it holds locks.
type localFeed struct {
	mu       sync.Mutex
	watchers map[chan cartstore.Change]struct{}
}

func (f *localFeed) publish(c cartstore.Change) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.watchers {
		select {
		case ch <- c:
		default:
		}
	}
}

func (f *localFeed) watch(ctx context.Context, fn func(cartstore.Change)) error {
	ch := make(chan cartstore.Change, watchBuffer)

	f.mu.Lock()
	if f.watchers == nil {
		f.watchers = make(map[chan cartstore.Change]struct{})
	}
	f.watchers[ch] = struct{}{}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.watchers, ch)
		f.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case c := <-ch:
			fn(c)
		}
	}
}
