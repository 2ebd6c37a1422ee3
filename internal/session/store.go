// Package session keeps one pair of checkout forms per browser.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"PaymentGatewayPractice/internal/domain/checkout"
	"PaymentGatewayPractice/internal/provider/card"
	"PaymentGatewayPractice/internal/provider/popup"
	"PaymentGatewayPractice/pkg/metrics"

	"github.com/google/uuid"
)

// Session is the in-memory state of one browser. It lives only as long as
// the process; nothing is persisted.
type Session struct {
	ID string

	Card        *checkout.Form
	CardElement *card.HostedElement

	Popup *checkout.Form
	Modal *popup.Modal
}

// Factory wires the forms and provider capabilities of a new session.
type Factory func(id string) *Session

type entry struct {
	session  *Session
	lastSeen time.Time
}

type Store struct {
	factory Factory
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewStore(factory Factory, ttl time.Duration) *Store {
	return &Store{
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Get returns the session for id and marks it as recently used.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = s.now()
	return e.session, true
}

// Create starts a new session under a fresh random id.
func (s *Store) Create() *Session {
	id := uuid.NewString()
	sess := s.factory(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[id] = &entry{session: sess, lastSeen: s.now()}
	metrics.CheckoutSessionsActive.Set(float64(len(s.sessions)))
	return sess
}

// GetOrCreate returns the session for id, creating a new one when id is
// unknown. The boolean reports whether a session was created.
func (s *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}
	return s.Create(), true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep evicts sessions idle for longer than the TTL. Sessions with a
// submission in flight are kept until it resolves.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := s.now().Add(-s.ttl)
	evicted := 0
	for id, e := range s.sessions {
		if e.lastSeen.After(deadline) || busy(e.session) {
			continue
		}
		delete(s.sessions, id)
		evicted++
	}
	metrics.CheckoutSessionsActive.Set(float64(len(s.sessions)))
	return evicted
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.DebugContext(ctx, "Evicted idle sessions", "count", n)
			}
		}
	}
}

func busy(sess *Session) bool {
	return (sess.Card != nil && sess.Card.Loading()) || (sess.Popup != nil && sess.Popup.Loading())
}
