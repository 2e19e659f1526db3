// Package store owns all mutable state of the layover matching engine:
// traveler profiles, match snapshots, private and group chats. A single
// mutex serializes caller operations against the eviction sweep. Nothing in
// this package is global; the caller constructs the Service and owns its
// sweeper lifecycle.
package store

import (
	"log"
	"sync"
	"time"

	"layovermeet/backend/internal/config"
	"layovermeet/backend/internal/models"
)

// Service is the in-memory store and matching engine. All operations are
// synchronous and complete in bounded time; the periodic sweep is the only
// self-scheduled activity and runs only between Start and Stop.
type Service struct {
	cfg config.StoreConfig

	mu           sync.Mutex
	travelers    map[string]*models.Traveler
	privateChats map[string]*models.PrivateChat
	groupChats   map[string]*models.GroupChat
	matches      map[string]*models.LayoverMatch

	notify func(models.Event)

	sweepOnce sync.Once
	stopOnce  sync.Once
	sweeping  bool
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewService creates an empty store. The sweeper is not started; call
// Start once wiring is complete.
func NewService(cfg config.StoreConfig) *Service {
	return &Service{
		cfg:          cfg,
		travelers:    make(map[string]*models.Traveler),
		privateChats: make(map[string]*models.PrivateChat),
		groupChats:   make(map[string]*models.GroupChat),
		matches:      make(map[string]*models.LayoverMatch),
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// SetNotifier registers the sink for store events. The sink must not call
// back into the store and must not block; the chathub satisfies both by
// handing events straight to a buffered channel. Set before Start.
func (s *Service) SetNotifier(fn func(models.Event)) {
	s.notify = fn
}

// Start launches the eviction sweeper at the configured period. Calling
// Start twice is a no-op.
func (s *Service) Start() {
	s.sweepOnce.Do(func() {
		s.sweeping = true
		go s.runSweeper()
	})
}

// Stop cancels the sweeper and waits for it to exit, so no timer goroutine
// outlives the store. Safe to call even if Start was never called.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		s.sweepOnce.Do(func() {}) // a Start after Stop must not launch anything
		close(s.stopCh)
		if s.sweeping {
			<-s.doneCh
		}
	})
}

func (s *Service) runSweeper() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.cfg.CleanupPeriod)
	defer ticker.Stop()

	log.Printf("store: eviction sweeper started (period %s)", s.cfg.CleanupPeriod)
	for {
		select {
		case <-ticker.C:
			s.CleanupExpired(time.Now())
		case <-s.stopCh:
			log.Println("store: eviction sweeper stopped")
			return
		}
	}
}

// emit delivers an event to the notifier, if one is registered. Called
// outside the store lock.
func (s *Service) emit(events []models.Event) {
	if s.notify == nil {
		return
	}
	for _, e := range events {
		s.notify(e)
	}
}

// Stats is a point-in-time summary of the store, for the stats endpoint
// and debugging.
type Stats struct {
	ActiveTravelers int `json:"active_travelers"`
	TotalTravelers  int `json:"total_travelers"`
	PrivateChats    int `json:"private_chats"`
	GroupChats      int `json:"group_chats"`
	MatchSnapshots  int `json:"match_snapshots"`
}

// GetStats returns current entity counts.
func (s *Service) GetStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := 0
	for _, t := range s.travelers {
		if t.IsActive {
			active++
		}
	}
	return Stats{
		ActiveTravelers: active,
		TotalTravelers:  len(s.travelers),
		PrivateChats:    len(s.privateChats),
		GroupChats:      len(s.groupChats),
		MatchSnapshots:  len(s.matches),
	}
}
