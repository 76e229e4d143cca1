package cartstore

import (
	"context"
	"sync"

	"github.com/diyahomestylist/poppyandteal/logger"
)

// Sync relays changes observed on a ChangeFeed to the stores attached to it, so a cart
// written by one store is re-announced to the listeners of every other store on the same
// key. A store never hears about its own writes through Sync.
type Sync struct {
	feed ChangeFeed
	log  *logger.Logger

	mu     sync.RWMutex
	stores map[string]map[*Store]struct{}
}

func NewSync(feed ChangeFeed, log *logger.Logger) *Sync {
	if log == nil {
		log = logger.NewNop()
	}
	return &Sync{
		feed:   feed,
		log:    log.With("component", "cart_sync"),
		stores: make(map[string]map[*Store]struct{}),
	}
}

// Attach starts relaying changes for st.Key() to st. The returned function detaches it.
func (s *Sync) Attach(st *Store) func() {
	s.mu.Lock()
	set, ok := s.stores[st.Key()]
	if !ok {
		set = make(map[*Store]struct{})
		s.stores[st.Key()] = set
	}
	set[st] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if set, ok := s.stores[st.Key()]; ok {
				delete(set, st)
				if len(set) == 0 {
					delete(s.stores, st.Key())
				}
			}
		})
	}
}

// Run watches the feed until ctx is done.
func (s *Sync) Run(ctx context.Context) error {
	s.log.Info("watching cart storage for remote changes")
	return s.feed.Watch(ctx, s.dispatch)
}

func (s *Sync) dispatch(c Change) {
	s.mu.RLock()
	targets := make([]*Store, 0, len(s.stores[c.Key]))
	for st := range s.stores[c.Key] {
		if st.ID() != c.Origin {
			targets = append(targets, st)
		}
	}
	s.mu.RUnlock()

	for _, st := range targets {
		st.notify(Event{Key: c.Key, Remote: true})
	}
}
