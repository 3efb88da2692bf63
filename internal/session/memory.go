package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"dexhub/pkg/models"
)

type memEntry struct {
	state     models.SearchState
	expiresAt time.Time // zero means never
}

// MemoryStore is the single-process default. Expired entries are dropped
// lazily on access.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, state *models.SearchState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = memEntry{state: copyState(state), expiresAt: expiry(s.now(), s.ttl)}
	return nil
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (*models.SearchState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if s.expired(e) {
		delete(s.entries, sessionID)
		return nil, ErrNotFound
	}
	st := copyState(&e.state)
	return &st, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.entries))
	for id, e := range s.entries {
		if s.expired(e) {
			delete(s.entries, id)
			continue
		}
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) expired(e memEntry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}

// copyState detaches the results and each card's types so callers cannot
// mutate stored state.
func copyState(st *models.SearchState) models.SearchState {
	if st == nil {
		return models.SearchState{}
	}
	cp := *st
	if st.Results != nil {
		cp.Results = make([]models.PokemonCard, len(st.Results))
		for i, card := range st.Results {
			if card.Types != nil {
				card.Types = append([]string(nil), card.Types...)
			}
			cp.Results[i] = card
		}
	}
	return cp
}
