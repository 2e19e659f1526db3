package models

import "time"

// ChatMessage is a single message inside a private or group chat.
// Exactly one of ReceiverID and GroupID is set, depending on the chat kind.
// Messages are immutable and live only as long as their chat.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id,omitempty"`
	GroupID    string    `json:"group_id,omitempty"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"is_read"`
}

// PrivateChat is a 1-on-1 chat between two travelers sharing a layover
// airport. It expires one grace period after the earlier of the two layover
// ends, unless both sides agreed to keep it.
type PrivateChat struct {
	ID string `json:"id"`
	// Participants always holds exactly two traveler IDs.
	Participants [2]string      `json:"participants"`
	Messages     []*ChatMessage `json:"messages"`
	// KeepAfterFlight is set when a participant asks to keep the chat.
	KeepAfterFlight bool `json:"keep_after_flight"`
	// BothAgreedToKeep marks the mutual retention agreement checked by
	// the eviction sweep.
	BothAgreedToKeep bool      `json:"both_agreed_to_keep"`
	ExpiresAt        time.Time `json:"expires_at"`
	LayoverAirport   string    `json:"layover_airport"`
}

// HasParticipant reports whether userID is one of the two participants.
func (c *PrivateChat) HasParticipant(userID string) bool {
	return c.Participants[0] == userID || c.Participants[1] == userID
}

// Clone copies the chat. Messages are immutable, so copying the slice header
// is enough. Clone of nil is nil.
func (c *PrivateChat) Clone() *PrivateChat {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Messages = append([]*ChatMessage(nil), c.Messages...)
	return &cp
}

// GroupChat is the shared chat for all travelers laying over at the same
// (country, airport) pair. At most one is active per pair.
type GroupChat struct {
	ID             string         `json:"id"`
	LayoverCountry string         `json:"layover_country"`
	LayoverAirport string         `json:"layover_airport"`
	Participants   []string       `json:"participants"`
	Messages       []*ChatMessage `json:"messages"`
	// ExpiresAt is fixed to the creating traveler's layover end.
	ExpiresAt time.Time `json:"expires_at"`
	IsActive  bool      `json:"is_active"`
}

// HasParticipant reports whether userID has joined the group.
func (g *GroupChat) HasParticipant(userID string) bool {
	for _, id := range g.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

// Clone copies the group, including its participant list. Clone of nil is
// nil.
func (g *GroupChat) Clone() *GroupChat {
	if g == nil {
		return nil
	}
	cp := *g
	cp.Participants = append([]string(nil), g.Participants...)
	cp.Messages = append([]*ChatMessage(nil), g.Messages...)
	return &cp
}
