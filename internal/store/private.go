package store

import (
	"time"

	"github.com/google/uuid"

	"layovermeet/backend/internal/models"
)

// CreatePrivateChat creates (or returns the existing) 1-on-1 chat between
// two travelers. Returns nil if either profile is unknown or the two are not
// laying over at the same airport. The chat expires one grace period after
// the earlier of the two layover ends.
func (s *Service) CreatePrivateChat(user1ID, user2ID string) *models.PrivateChat {
	s.mu.Lock()

	user1, ok1 := s.travelers[user1ID]
	user2, ok2 := s.travelers[user2ID]
	if !ok1 || !ok2 || user1.Itinerary.LayoverAirport != user2.Itinerary.LayoverAirport {
		s.mu.Unlock()
		return nil
	}

	if existing := s.findPrivateChatLocked(user1ID, user2ID); existing != nil {
		out := existing.Clone()
		s.mu.Unlock()
		return out
	}

	earliestEnd := user1.Itinerary.LayoverEnd
	if user2.Itinerary.LayoverEnd.Before(earliestEnd) {
		earliestEnd = user2.Itinerary.LayoverEnd
	}

	chat := &models.PrivateChat{
		ID:             uuid.New().String(),
		Participants:   [2]string{user1ID, user2ID},
		Messages:       []*models.ChatMessage{},
		ExpiresAt:      earliestEnd.Add(s.cfg.ChatGrace),
		LayoverAirport: user1.Itinerary.LayoverAirport,
	}
	s.privateChats[chat.ID] = chat

	out := chat.Clone()
	s.mu.Unlock()

	s.emit([]models.Event{{
		Type:        models.EventChatCreated,
		Airport:     out.LayoverAirport,
		TravelerIDs: []string{user1ID, user2ID},
		ChatID:      out.ID,
		Timestamp:   time.Now(),
	}})

	return out
}

// findPrivateChatLocked returns the chat holding exactly this pair, in
// either order. Caller holds s.mu.
func (s *Service) findPrivateChatLocked(user1ID, user2ID string) *models.PrivateChat {
	for _, c := range s.privateChats {
		if (c.Participants[0] == user1ID && c.Participants[1] == user2ID) ||
			(c.Participants[0] == user2ID && c.Participants[1] == user1ID) {
			return c
		}
	}
	return nil
}

// GetPrivateChatsForUser returns every chat the traveler participates in,
// including expired ones the sweep has not removed yet; callers display the
// expiry themselves.
func (s *Service) GetPrivateChatsForUser(travelerID string) []*models.PrivateChat {
	s.mu.Lock()
	defer s.mu.Unlock()

	chats := []*models.PrivateChat{}
	for _, c := range s.privateChats {
		if c.HasParticipant(travelerID) {
			chats = append(chats, c.Clone())
		}
	}
	return chats
}

// SetKeepChat records a participant's retention choice. Returns false if the
// chat is unknown or the requester is not a participant.
//
// keep=true marks both the keep flag and the mutual agreement, so one side's
// confirmation is enough to survive eviction. That mirrors the legacy
// behavior; see DESIGN.md for why it was kept. keep=false deletes the chat
// immediately, regardless of the other participant's wishes.
func (s *Service) SetKeepChat(chatID, userID string, keep bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat, ok := s.privateChats[chatID]
	if !ok || !chat.HasParticipant(userID) {
		return false
	}

	if keep {
		chat.KeepAfterFlight = true
		chat.BothAgreedToKeep = true
	} else {
		delete(s.privateChats, chatID)
	}
	return true
}
