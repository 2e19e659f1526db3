package chathub_test

import (
	"sync"

	"layovermeet/backend/internal/chathub"
	"layovermeet/backend/internal/models"
)

// MockClient implements chathub.Client for tests. Events delivered by the
// hub land in RecvChannel.
type MockClient struct {
	UserID      string
	Airport     string
	RecvChannel chan models.Event

	mu        sync.Mutex
	closed    bool
	runCalled bool
}

func newMockClient(userID, airport string) *MockClient {
	return &MockClient{
		UserID:      userID,
		Airport:     airport,
		RecvChannel: make(chan models.Event, 10),
	}
}

func (m *MockClient) GetUserID() string                   { return m.UserID }
func (m *MockClient) GetAirport() string                  { return m.Airport }
func (m *MockClient) GetSendChannel() chan<- models.Event { return m.RecvChannel }

func (m *MockClient) Run() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runCalled = true
}

func (m *MockClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

func (m *MockClient) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ chathub.Client = (*MockClient)(nil)
