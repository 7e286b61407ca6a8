package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Vinaypunani/build-gaming/internal/domain"
)

type entry struct {
	build   *domain.Build
	touched time.Time
}

// Store guarda los armados en memoria del proceso. Cada sesión recibe copias,
// así que los cambios de un lector no se ven hasta que llama a Save.
type Store struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]entry
	now func() time.Time
}

// New crea el store; ttl <= 0 desactiva la expiración.
func New(ttl time.Duration) *Store {
	return &Store{ttl: ttl, m: map[string]entry{}, now: time.Now}
}

func (s *Store) Load(_ context.Context, id string) (*domain.Build, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[id]
	if !ok {
		return domain.NewBuild(), nil
	}
	if s.expired(e) {
		delete(s.m, id)
		return domain.NewBuild(), nil
	}
	return e.build.Clone(), nil
}

func (s *Store) Save(_ context.Context, id string, b *domain.Build) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[id] = entry{build: b.Clone(), touched: s.now()}
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
	return nil
}

// Sweep descarta las sesiones vencidas y devuelve cuántas quitó.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, e := range s.m {
		if s.expired(e) {
			delete(s.m, id)
			n++
		}
	}
	return n
}

// Run barre periódicamente hasta que ctx se cancela.
func (s *Store) Run(ctx context.Context, every time.Duration) {
	if s.ttl <= 0 || every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

func (s *Store) expired(e entry) bool {
	return s.ttl > 0 && s.now().Sub(e.touched) > s.ttl
}
