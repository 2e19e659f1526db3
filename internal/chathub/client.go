package chathub

import "layovermeet/backend/internal/models"

// Client is one live connection subscribed to store events. It abstracts
// the underlying transport so the hub can manage connection types uniformly
// (the WebSocket client is the only production implementation; tests plug
// in their own).
type Client interface {
	// GetUserID returns the traveler this connection belongs to.
	GetUserID() string
	// GetAirport returns the traveler's layover airport, used to scope
	// airport-wide events such as new registrations.
	GetAirport() string

	// GetSendChannel returns the channel the hub delivers events into.
	GetSendChannel() chan<- models.Event

	// Run starts the client's pumps.
	Run()
	// Close shuts the client down and releases its send channel.
	Close()
}
