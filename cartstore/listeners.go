package cartstore

import (
	"sync"

	"github.com/diyahomestylist/poppyandteal/logger"
)

// Event tells a listener that the cart under Key changed. Remote is set when the write was
// made by another store sharing the same storage.
type Event struct {
	Key    string
	Remote bool
}

type Listener func(Event)

type listeners struct {
	log *logger.Logger

	mu     sync.RWMutex
	nextID uint64
	byID   map[uint64]Listener
}

func newListeners(log *logger.Logger) *listeners {
	return &listeners{
		log:  log,
		byID: make(map[uint64]Listener),
	}
}

func (l *listeners) add(fn Listener) func() {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.byID[id] = fn
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.byID, id)
			l.mu.Unlock()
		})
	}
}

func (l *listeners) len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.byID)
}

func (l *listeners) broadcast(ev Event) {
	l.mu.RLock()
	snapshot := make([]Listener, 0, len(l.byID))
	for _, fn := range l.byID {
		snapshot = append(snapshot, fn)
	}
	l.mu.RUnlock()

	for _, fn := range snapshot {
		l.deliver(fn, ev)
	}
}

func (l *listeners) deliver(fn Listener, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Warn("cart listener panicked", "key", ev.Key, "panic", r)
		}
	}()
	fn(ev)
}
