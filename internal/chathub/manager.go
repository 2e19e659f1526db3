package chathub

import (
	"log"

	"layovermeet/backend/internal/models"
)

// ManagerService fans store events out to connected clients. The store's
// notifier feeds EventCh; callers connect and disconnect through the
// register channels. One Run goroutine owns the Clients map, so no locking
// is needed here.
type ManagerService struct {
	// Clients maps traveler ID to their live connection. A traveler has at
	// most one connection; a new one replaces the old.
	Clients map[string]Client

	EventCh      chan models.Event
	RegisterCh   chan Client
	UnregisterCh chan Client

	stopCh chan struct{}
}

// NewManagerService creates a hub. Call Run in its own goroutine.
func NewManagerService() *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		EventCh:      make(chan models.Event, 64),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		stopCh:       make(chan struct{}),
	}
}

// Notify is the store-facing sink: it hands the event to the hub without
// blocking the store. Events are dropped if the hub is backed up; clients
// re-fetch state anyway, so a lost nudge is harmless.
func (m *ManagerService) Notify(e models.Event) {
	select {
	case m.EventCh <- e:
	default:
		log.Printf("chathub: event buffer full, dropping %s", e.Type)
	}
}

// Register hands a client to the Run loop. After Stop the loop is gone, so
// the client is closed instead of queued.
func (m *ManagerService) Register(c Client) {
	select {
	case m.RegisterCh <- c:
	case <-m.stopCh:
		c.Close()
	}
}

// Unregister asks the Run loop to drop the client. A no-op after Stop; the
// loop already closed everything on its way out.
func (m *ManagerService) Unregister(c Client) {
	select {
	case m.UnregisterCh <- c:
	case <-m.stopCh:
	}
}

// Run is the hub's main loop. It exits when Stop is called.
func (m *ManagerService) Run() {
	log.Println("chathub: manager started")
	for {
		select {
		case client := <-m.RegisterCh:
			if old, ok := m.Clients[client.GetUserID()]; ok {
				old.Close()
			}
			m.Clients[client.GetUserID()] = client
			log.Printf("chathub: client connected for %s", client.GetUserID())

		case client := <-m.UnregisterCh:
			// Only remove the mapping if it still points at this client;
			// a reconnect may already have replaced it.
			if current, ok := m.Clients[client.GetUserID()]; ok && current == client {
				delete(m.Clients, client.GetUserID())
				client.Close()
				log.Printf("chathub: client disconnected for %s", client.GetUserID())
			}

		case event := <-m.EventCh:
			m.dispatch(event)

		case <-m.stopCh:
			for _, client := range m.Clients {
				client.Close()
			}
			m.Clients = make(map[string]Client)
			log.Println("chathub: manager stopped")
			return
		}
	}
}

// Stop shuts the hub down and closes every connected client.
func (m *ManagerService) Stop() {
	close(m.stopCh)
}

// dispatch delivers an event to every client that should see it: listed
// travelers always; everyone at the airport for registration events.
func (m *ManagerService) dispatch(event models.Event) {
	for userID, client := range m.Clients {
		if !wantsEvent(event, userID, client.GetAirport()) {
			continue
		}
		select {
		case client.GetSendChannel() <- event:
		default:
			// Slow consumer: drop the connection rather than block the hub.
			delete(m.Clients, userID)
			client.Close()
		}
	}
}

func wantsEvent(event models.Event, userID, airport string) bool {
	if event.Type == models.EventTravelerJoined {
		return event.Airport == airport
	}
	for _, id := range event.TravelerIDs {
		if id == userID {
			return true
		}
	}
	return false
}
