package store

import (
	"time"

	"github.com/google/uuid"

	"layovermeet/backend/internal/models"
	"layovermeet/backend/internal/nickname"
)

// CreateTraveler registers a profile for a validated itinerary. It assigns
// an ID and a collision-avoided nickname, stores the profile, computes the
// traveler's match snapshot and joins (or creates) the airport group chat,
// all in one synchronous step.
func (s *Service) CreateTraveler(firstName string, age int, gender models.Gender, originCountry string, languages []string, itinerary models.Itinerary) (*models.Traveler, error) {
	if err := validateProfile(firstName, age, gender, languages, itinerary); err != nil {
		return nil, err
	}

	s.mu.Lock()

	taken := make(map[string]bool, len(s.travelers))
	for _, t := range s.travelers {
		taken[t.Nickname] = true
	}

	traveler := &models.Traveler{
		ID:        uuid.New().String(),
		Itinerary: itinerary,
		Nickname: nickname.Generate(nickname.Params{
			FirstName:     firstName,
			Age:           age,
			Gender:        gender,
			OriginCountry: originCountry,
			Taken:         taken,
		}),
		Age:           age,
		Gender:        gender,
		OriginCountry: originCountry,
		Languages:     languages,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}

	s.travelers[traveler.ID] = traveler
	s.computeMatchesLocked(traveler)
	s.joinOrCreateGroupChatLocked(traveler)

	out := traveler.Clone()
	s.mu.Unlock()

	s.emit([]models.Event{{
		Type:        models.EventTravelerJoined,
		Airport:     itinerary.LayoverAirport,
		TravelerIDs: []string{out.ID},
		Timestamp:   time.Now(),
	}})

	return out, nil
}

// GetTraveler returns a copy of the profile for id, or nil if unknown.
// Accessors never hand out the stored object itself; the eviction sweep
// mutates it on its own goroutine.
func (s *Service) GetTraveler(id string) *models.Traveler {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.travelers[id].Clone()
}

// GetTravelerByNickname scans for a profile by display name. Linear, which
// is fine for hundreds of concurrent travelers; index by nickname before
// running this at larger scale.
func (s *Service) GetTravelerByNickname(name string) *models.Traveler {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.travelers {
		if t.Nickname == name {
			return t.Clone()
		}
	}
	return nil
}

func validateProfile(firstName string, age int, gender models.Gender, languages []string, itinerary models.Itinerary) error {
	if firstName == "" {
		return ErrMissingFirstName
	}
	if age < 13 || age > 120 {
		return ErrImplausibleAge
	}
	if !gender.Valid() {
		return ErrInvalidGender
	}
	if len(languages) == 0 {
		return ErrNoLanguages
	}
	if itinerary.LayoverAirport == "" || itinerary.LayoverCountry == "" ||
		itinerary.LayoverStart.IsZero() || itinerary.LayoverEnd.IsZero() ||
		!itinerary.LayoverEnd.After(itinerary.LayoverStart) {
		return ErrIncompleteItinerary
	}
	return nil
}
