package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"layovermeet/backend/internal/chathub"
	"layovermeet/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the connection and subscribes the traveler to the
// live event feed. The feed is a nudge stream — clients re-fetch their
// matches and chats over HTTP when an event arrives.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	userID := c.Query("user_id")
	traveler := h.Store.GetTraveler(userID)
	if traveler == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "traveler not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}

	client := &chathub.WebSocketClient{
		UserID:  traveler.ID,
		Airport: traveler.Itinerary.LayoverAirport,
		Conn:    conn,
		Hub:     h.Hub,
		Send:    make(chan models.Event, 256),
	}

	h.Hub.Register(client)
	client.Run()
}
