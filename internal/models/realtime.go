package models

import "time"

// EventType identifies a store transition broadcast to live clients.
type EventType string

const (
	EventTravelerJoined EventType = "traveler_joined"
	EventChatCreated    EventType = "chat_created"
	EventMessageSent    EventType = "message_sent"
	EventChatExpired    EventType = "chat_expired"
	EventGroupExpired   EventType = "group_expired"
)

// Event is pushed by the store on create/expire transitions and fanned out
// by the chathub to connected WebSocket clients. It carries just enough for
// a client to know what to re-fetch; it is not a data feed.
type Event struct {
	Type EventType `json:"type"`
	// Airport scopes the event; registration events go to everyone laying
	// over there.
	Airport string `json:"airport,omitempty"`
	// TravelerIDs lists the travelers the event concerns (chat participants,
	// or the newly registered traveler).
	TravelerIDs []string  `json:"traveler_ids,omitempty"`
	ChatID      string    `json:"chat_id,omitempty"`
	GroupID     string    `json:"group_id,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
