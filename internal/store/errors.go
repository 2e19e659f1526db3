package store

import "errors"

// Registration failures. The registry expects pre-validated input but still
// fails fast on anything that would corrupt matching or nickname generation.
// Not-found and precondition failures elsewhere in the store are expressed
// as nil/false results, not errors.
var (
	ErrMissingFirstName    = errors.New("first name must not be empty")
	ErrImplausibleAge      = errors.New("age is out of the plausible range")
	ErrInvalidGender       = errors.New("gender is not one of the known categories")
	ErrNoLanguages         = errors.New("at least one spoken language is required")
	ErrIncompleteItinerary = errors.New("itinerary is missing required fields")
)
