package travelcode

import (
	"errors"
	"regexp"
	"time"

	"layovermeet/backend/internal/models"
)

// Validation failures surfaced to callers. The store never sees an itinerary
// that failed any of these checks.
var (
	ErrBadAirportCode   = errors.New("airport code must be 3 uppercase letters")
	ErrBadFlightNumber  = errors.New("flight number must be a 2-letter carrier code followed by 1-4 digits")
	ErrBadLayoverWindow = errors.New("layover end must be after layover start")
	ErrLayoverTooShort  = errors.New("layover is shorter than the minimum duration")
	ErrLayoverTooLong   = errors.New("layover is longer than the maximum duration")
	ErrUnknownAirport   = errors.New("layover airport is not supported")
)

const (
	// DefaultMinLayover and DefaultMaxLayover bound the accepted layover
	// duration when the caller does not configure its own bounds.
	DefaultMinLayover = 30 * time.Minute
	DefaultMaxLayover = 24 * time.Hour
)

var (
	airportCodeRe  = regexp.MustCompile(`^[A-Z]{3}$`)
	flightNumberRe = regexp.MustCompile(`^[A-Z]{2}\d{1,4}$`)
)

// Input is a raw travel submission as it arrives from the caller.
type Input struct {
	FlightNumber     string    `json:"flight_number"`
	DepartureAirport string    `json:"departure_airport"`
	ArrivalAirport   string    `json:"arrival_airport"`
	LayoverAirport   string    `json:"layover_airport"`
	LayoverStart     time.Time `json:"layover_start"`
	LayoverEnd       time.Time `json:"layover_end"`
}

// Parser validates raw submissions into itineraries. The zero bounds fall
// back to the defaults.
type Parser struct {
	MinLayover time.Duration
	MaxLayover time.Duration
}

// NewParser returns a Parser with the given layover duration bounds.
// Non-positive bounds use the defaults.
func NewParser(minLayover, maxLayover time.Duration) *Parser {
	if minLayover <= 0 {
		minLayover = DefaultMinLayover
	}
	if maxLayover <= 0 {
		maxLayover = DefaultMaxLayover
	}
	return &Parser{MinLayover: minLayover, MaxLayover: maxLayover}
}

// Parse validates in and returns the structured itinerary, with the layover
// country derived from the layover airport. It returns the first failed
// check as a sentinel error.
func (p *Parser) Parse(in Input) (*models.Itinerary, error) {
	if !airportCodeRe.MatchString(in.DepartureAirport) ||
		!airportCodeRe.MatchString(in.ArrivalAirport) ||
		!airportCodeRe.MatchString(in.LayoverAirport) {
		return nil, ErrBadAirportCode
	}
	if !flightNumberRe.MatchString(in.FlightNumber) {
		return nil, ErrBadFlightNumber
	}
	if !in.LayoverEnd.After(in.LayoverStart) {
		return nil, ErrBadLayoverWindow
	}

	duration := in.LayoverEnd.Sub(in.LayoverStart)
	if duration < p.MinLayover {
		return nil, ErrLayoverTooShort
	}
	if duration > p.MaxLayover {
		return nil, ErrLayoverTooLong
	}

	country := AirportCountry(in.LayoverAirport)
	if country == "" {
		return nil, ErrUnknownAirport
	}

	return &models.Itinerary{
		FlightNumber:     in.FlightNumber,
		DepartureAirport: in.DepartureAirport,
		ArrivalAirport:   in.ArrivalAirport,
		LayoverAirport:   in.LayoverAirport,
		LayoverStart:     in.LayoverStart,
		LayoverEnd:       in.LayoverEnd,
		LayoverCountry:   country,
	}, nil
}

// IsLayoverActive reports whether now falls inside the layover window.
func IsLayoverActive(start, end, now time.Time) bool {
	return !now.Before(start) && !now.After(end)
}

// LayoverTimeRemaining returns how long until the layover ends, clamped at
// zero for layovers already over.
func LayoverTimeRemaining(end, now time.Time) time.Duration {
	if remaining := end.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}
