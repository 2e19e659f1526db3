package chathub_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"layovermeet/backend/internal/chathub"
	"layovermeet/backend/internal/models"
)

func TestManagerRegisterUnregister(t *testing.T) {
	hub := chathub.NewManagerService()
	go hub.Run()
	defer hub.Stop()

	client := newMockClient("user_A", "CDG")

	hub.Register(client)
	time.Sleep(50 * time.Millisecond)
	assert.Contains(t, hub.Clients, "user_A")

	hub.Unregister(client)
	time.Sleep(50 * time.Millisecond)
	assert.NotContains(t, hub.Clients, "user_A")
	assert.True(t, client.IsClosed())
}

func TestManagerDispatchToParticipants(t *testing.T) {
	hub := chathub.NewManagerService()
	go hub.Run()
	defer hub.Stop()

	clientA := newMockClient("user_A", "CDG")
	clientB := newMockClient("user_B", "CDG")
	clientC := newMockClient("user_C", "CDG")
	hub.Register(clientA)
	hub.Register(clientB)
	hub.Register(clientC)
	time.Sleep(50 * time.Millisecond)

	hub.Notify(models.Event{
		Type:        models.EventMessageSent,
		Airport:     "CDG",
		TravelerIDs: []string{"user_A", "user_B"},
		ChatID:      "chat-1",
	})

	for _, c := range []*MockClient{clientA, clientB} {
		select {
		case event := <-c.RecvChannel:
			assert.Equal(t, models.EventMessageSent, event.Type)
			assert.Equal(t, "chat-1", event.ChatID)
		case <-time.After(time.Second):
			t.Errorf("client %s did not receive the event", c.UserID)
		}
	}

	select {
	case <-clientC.RecvChannel:
		t.Error("user_C is not a participant and should not receive the event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestManagerDispatchJoinedEventByAirport(t *testing.T) {
	hub := chathub.NewManagerService()
	go hub.Run()
	defer hub.Stop()

	sameAirport := newMockClient("user_A", "CDG")
	otherAirport := newMockClient("user_B", "FRA")
	hub.Register(sameAirport)
	hub.Register(otherAirport)
	time.Sleep(50 * time.Millisecond)

	hub.Notify(models.Event{
		Type:        models.EventTravelerJoined,
		Airport:     "CDG",
		TravelerIDs: []string{"user_new"},
	})

	select {
	case event := <-sameAirport.RecvChannel:
		assert.Equal(t, models.EventTravelerJoined, event.Type)
	case <-time.After(time.Second):
		t.Error("same-airport client should receive registration events")
	}

	select {
	case <-otherAirport.RecvChannel:
		t.Error("other-airport client should not receive the event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestManagerReconnectReplacesClient(t *testing.T) {
	hub := chathub.NewManagerService()
	go hub.Run()
	defer hub.Stop()

	first := newMockClient("user_A", "CDG")
	second := newMockClient("user_A", "CDG")

	hub.Register(first)
	hub.Register(second)
	time.Sleep(50 * time.Millisecond)

	assert.True(t, first.IsClosed(), "replaced connection should be closed")
	assert.Equal(t, second, hub.Clients["user_A"])

	// A stale unregister from the first connection must not evict the second.
	hub.Unregister(first)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, second, hub.Clients["user_A"])
}

func TestManagerStopClosesClients(t *testing.T) {
	hub := chathub.NewManagerService()
	go hub.Run()

	client := newMockClient("user_A", "CDG")
	hub.Register(client)
	time.Sleep(50 * time.Millisecond)

	hub.Stop()
	assert.Eventually(t, client.IsClosed, time.Second, 10*time.Millisecond)
}

func TestRegisterUnregisterAfterStop(t *testing.T) {
	hub := chathub.NewManagerService()
	go hub.Run()

	client := newMockClient("user_A", "CDG")
	hub.Register(client)
	time.Sleep(50 * time.Millisecond)

	hub.Stop()
	assert.Eventually(t, client.IsClosed, time.Second, 10*time.Millisecond)

	// With the Run loop gone, a late connect or a lingering read pump's
	// disconnect must return instead of blocking forever.
	late := newMockClient("user_B", "CDG")
	done := make(chan struct{})
	go func() {
		hub.Register(late)
		hub.Unregister(client)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Register/Unregister blocked after Stop")
	}
	assert.True(t, late.IsClosed(), "late client must be closed, not leaked")
}

func TestNotifyDoesNotBlockWhenFull(t *testing.T) {
	// No Run goroutine draining the channel: Notify must still return.
	hub := chathub.NewManagerService()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Notify(models.Event{Type: models.EventMessageSent})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full event buffer")
	}
}
