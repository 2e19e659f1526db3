package nickname

import (
	"fmt"
	"math/rand"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"layovermeet/backend/internal/models"
)

// maxAttempts bounds the deterministic-ish retries before the unconditional
// high-entropy fallback kicks in.
const maxAttempts = 10

// Params are the profile attributes a nickname is derived from, plus the set
// of nicknames already taken.
type Params struct {
	FirstName     string
	Age           int
	Gender        models.Gender
	OriginCountry string
	Taken         map[string]bool
}

// Generate derives a short display name from the traveler's attributes,
// e.g. "joa25MPT" for João, 25, M, Portugal. The first attempt is fully
// deterministic; collisions fall back to a random two-digit suffix, then to
// nanoid suffixes, and finally to an unconditional nanoid tail so the result
// is never in the taken set.
func Generate(p Params) string {
	prefix := namePrefix(p.FirstName)
	country := countryCode(p.OriginCountry)
	gender := genderCode(p.Gender)
	base := fmt.Sprintf("%s%d%s%s", prefix, p.Age, gender, country)

	var name string
	for attempt := 0; attempt < maxAttempts; attempt++ {
		switch attempt {
		case 0:
			name = base
		case 1:
			name = fmt.Sprintf("%s%02d", base, rand.Intn(99))
		default:
			name = base + gonanoid.MustGenerate(alphabet, 3)
		}
		if !p.Taken[name] {
			return name
		}
	}

	// Collision survived every attempt; a 6-char nanoid tail makes another
	// one effectively impossible.
	return prefix + gonanoid.MustGenerate(alphabet, 6)
}

// IsUnique reports whether name is not in the taken set.
func IsUnique(name string, taken map[string]bool) bool {
	return !taken[name]
}

// alphabet matches the nanoid default URL-safe set.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

func namePrefix(firstName string) string {
	runes := []rune(strings.ToLower(firstName))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}

func countryCode(country string) string {
	runes := []rune(strings.ToUpper(country))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}

func genderCode(g models.Gender) string {
	switch g {
	case models.GenderMale:
		return "M"
	case models.GenderFemale:
		return "F"
	default:
		return "X"
	}
}
