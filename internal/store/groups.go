package store

import (
	"github.com/google/uuid"

	"layovermeet/backend/internal/models"
)

// joinOrCreateGroupChatLocked attaches the traveler to the active group chat
// for their (country, airport) pair, creating it if absent. Joining twice is
// idempotent. Caller holds s.mu.
//
// A new group expires at the creating traveler's layover end; later joiners
// with longer layovers do not extend it. Legacy policy, kept as-is.
func (s *Service) joinOrCreateGroupChatLocked(traveler *models.Traveler) *models.GroupChat {
	it := traveler.Itinerary

	for _, g := range s.groupChats {
		if g.IsActive && g.LayoverCountry == it.LayoverCountry && g.LayoverAirport == it.LayoverAirport {
			if !g.HasParticipant(traveler.ID) {
				g.Participants = append(g.Participants, traveler.ID)
			}
			return g
		}
	}

	group := &models.GroupChat{
		ID:             uuid.New().String(),
		LayoverCountry: it.LayoverCountry,
		LayoverAirport: it.LayoverAirport,
		Participants:   []string{traveler.ID},
		Messages:       []*models.ChatMessage{},
		ExpiresAt:      it.LayoverEnd,
		IsActive:       true,
	}
	s.groupChats[group.ID] = group
	return group
}

// GetGroupChatsForUser returns the active group chats the traveler belongs
// to. With the one-group-per-airport policy this is at most one, but the
// contract does not promise that.
func (s *Service) GetGroupChatsForUser(travelerID string) []*models.GroupChat {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := []*models.GroupChat{}
	for _, g := range s.groupChats {
		if g.IsActive && g.HasParticipant(travelerID) {
			groups = append(groups, g.Clone())
		}
	}
	return groups
}

// GetGroupChat returns a copy of the group chat with this id, or nil if
// unknown.
func (s *Service) GetGroupChat(id string) *models.GroupChat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groupChats[id].Clone()
}
