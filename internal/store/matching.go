package store

import "layovermeet/backend/internal/models"

// computeMatchesLocked scans every other active traveler at the same layover
// airport and keeps those with a strictly overlapping window. The result
// replaces any previous snapshot for the traveler. Caller holds s.mu.
//
// O(n) over all travelers per call; there is no spatial or temporal index,
// which caps comfortable scale at hundreds-to-low-thousands of active
// profiles.
func (s *Service) computeMatchesLocked(traveler *models.Traveler) {
	matched := []*models.Traveler{}

	for _, other := range s.travelers {
		if other.ID == traveler.ID || !other.IsActive {
			continue
		}
		if other.Itinerary.LayoverAirport != traveler.Itinerary.LayoverAirport {
			continue
		}
		if windowsOverlap(traveler.Itinerary, other.Itinerary) {
			matched = append(matched, other)
		}
	}

	s.matches[traveler.ID] = &models.LayoverMatch{
		TravelerID:   traveler.ID,
		MatchedUsers: matched,
		LayoverInfo:  traveler.Itinerary,
	}
}

// windowsOverlap applies the strict open-interval test: a touch at the
// boundary (a ends exactly when b starts) is not an overlap.
func windowsOverlap(a, b models.Itinerary) bool {
	return a.LayoverStart.Before(b.LayoverEnd) && a.LayoverEnd.After(b.LayoverStart)
}

// GetMatches returns a copy of the traveler's snapshot, or nil if none
// exists. The snapshot is point-in-time: travelers who registered after it
// was computed are not in it. Registering B never updates A's snapshot;
// callers wanting symmetric freshness must call RefreshMatches.
func (s *Service) GetMatches(travelerID string) *models.LayoverMatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matches[travelerID].Clone()
}

// RefreshMatches recomputes the snapshot for an existing traveler and
// returns it, or nil if the traveler is unknown.
func (s *Service) RefreshMatches(travelerID string) *models.LayoverMatch {
	s.mu.Lock()
	defer s.mu.Unlock()

	traveler, ok := s.travelers[travelerID]
	if !ok {
		return nil
	}
	s.computeMatchesLocked(traveler)
	return s.matches[travelerID].Clone()
}
