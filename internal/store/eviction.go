package store

import (
	"log"
	"time"

	"layovermeet/backend/internal/models"
)

// CleanupExpired runs one eviction pass against the given wall-clock time:
//
//  1. private chats past expiry are deleted unless both the keep flag and
//     the mutual agreement are set;
//  2. group chats past expiry are deleted unconditionally;
//  3. travelers past their layover end are deactivated and lose their
//     match snapshot.
//
// The pass is idempotent: running it again on unchanged state does nothing.
// Missing or already-deleted entries are normal, not errors.
func (s *Service) CleanupExpired(now time.Time) {
	s.mu.Lock()

	var events []models.Event

	for id, chat := range s.privateChats {
		if now.After(chat.ExpiresAt) && !(chat.KeepAfterFlight && chat.BothAgreedToKeep) {
			delete(s.privateChats, id)
			events = append(events, models.Event{
				Type:        models.EventChatExpired,
				Airport:     chat.LayoverAirport,
				TravelerIDs: chat.Participants[:],
				ChatID:      id,
				Timestamp:   now,
			})
		}
	}

	for id, group := range s.groupChats {
		if now.After(group.ExpiresAt) {
			delete(s.groupChats, id)
			events = append(events, models.Event{
				Type:        models.EventGroupExpired,
				Airport:     group.LayoverAirport,
				TravelerIDs: group.Participants,
				GroupID:     id,
				Timestamp:   now,
			})
		}
	}

	deactivated := 0
	for id, traveler := range s.travelers {
		if now.After(traveler.Itinerary.LayoverEnd) {
			if traveler.IsActive {
				traveler.IsActive = false
				deactivated++
			}
			delete(s.matches, id)
		}
	}

	s.mu.Unlock()

	if len(events) > 0 || deactivated > 0 {
		log.Printf("store: cleanup removed %d chats/groups, deactivated %d travelers", len(events), deactivated)
	}
	s.emit(events)
}
