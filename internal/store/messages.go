package store

import (
	"time"

	"github.com/google/uuid"

	"layovermeet/backend/internal/models"
)

// SendMessage appends a message to a chat. Exactly one of groupID and
// receiverID must be set: groupID targets a group chat (sender must be a
// participant), receiverID targets the private chat between sender and
// receiver (which must already exist — this router never creates chats).
// Returns nil on any precondition failure.
func (s *Service) SendMessage(senderID, content, groupID, receiverID string) *models.ChatMessage {
	if (groupID == "") == (receiverID == "") {
		return nil
	}

	s.mu.Lock()

	message := &models.ChatMessage{
		ID:        uuid.New().String(),
		SenderID:  senderID,
		Content:   content,
		Timestamp: time.Now(),
		IsRead:    false,
	}

	event := models.Event{
		Type:        models.EventMessageSent,
		TravelerIDs: []string{senderID},
		Timestamp:   message.Timestamp,
	}

	if groupID != "" {
		group, ok := s.groupChats[groupID]
		if !ok || !group.HasParticipant(senderID) {
			s.mu.Unlock()
			return nil
		}
		message.GroupID = groupID
		group.Messages = append(group.Messages, message)
		event.GroupID = groupID
		event.Airport = group.LayoverAirport
		event.TravelerIDs = append([]string(nil), group.Participants...)
	} else {
		chat := s.findPrivateChatLocked(senderID, receiverID)
		if chat == nil {
			s.mu.Unlock()
			return nil
		}
		message.ReceiverID = receiverID
		chat.Messages = append(chat.Messages, message)
		event.ChatID = chat.ID
		event.Airport = chat.LayoverAirport
		event.TravelerIDs = []string{senderID, receiverID}
	}

	s.mu.Unlock()

	s.emit([]models.Event{event})
	return message
}
