package models

import "time"

// Gender is the fixed set of gender categories a traveler can pick at registration.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "Other"
)

// Valid reports whether g is one of the enumerated categories.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Itinerary is a validated flight/layover record. It is produced by the
// travelcode parser and never mutated after a traveler is created.
type Itinerary struct {
	FlightNumber     string    `json:"flight_number"`
	DepartureAirport string    `json:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport"`
	LayoverAirport   string    `json:"layover_airport"`
	LayoverStart     time.Time `json:"layover_start"`
	LayoverEnd       time.Time `json:"layover_end"`
	// LayoverCountry is derived from LayoverAirport during parsing.
	LayoverCountry string `json:"layover_country"`
}

// Traveler represents a registered traveler profile.
type Traveler struct {
	// ID is the anonymous UUID assigned at registration.
	ID        string    `json:"id"`
	Itinerary Itinerary `json:"itinerary"`
	// Nickname is auto-generated and unique among known nicknames
	// at creation time (best effort).
	Nickname      string   `json:"nickname"`
	Age           int      `json:"age"`
	Gender        Gender   `json:"gender"`
	OriginCountry string   `json:"origin_country"`
	Languages     []string `json:"languages"`
	// IsActive flips to false once the layover has ended. Profiles are
	// deactivated, not deleted.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a copy that shares no mutable state with t, safe to hand to
// callers outside the store's lock. Clone of nil is nil.
func (t *Traveler) Clone() *Traveler {
	if t == nil {
		return nil
	}
	c := *t
	c.Languages = append([]string(nil), t.Languages...)
	return &c
}

// LayoverMatch is the snapshot of travelers overlapping one traveler's
// layover window at the same airport. It is computed at registration (or on
// an explicit refresh) and is not a live view.
type LayoverMatch struct {
	TravelerID   string      `json:"traveler_id"`
	MatchedUsers []*Traveler `json:"matched_users"`
	LayoverInfo  Itinerary   `json:"layover_info"`
}

// Clone copies the snapshot along with every matched profile in it.
// Clone of nil is nil.
func (m *LayoverMatch) Clone() *LayoverMatch {
	if m == nil {
		return nil
	}
	c := *m
	c.MatchedUsers = make([]*Traveler, len(m.MatchedUsers))
	for i, t := range m.MatchedUsers {
		c.MatchedUsers[i] = t.Clone()
	}
	return &c
}
