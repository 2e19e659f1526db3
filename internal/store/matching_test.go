package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layovermeet/backend/internal/models"
)

func matchedIDs(m *models.LayoverMatch) []string {
	ids := []string{}
	for _, u := range m.MatchedUsers {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestMatchingOverlappingWindows(t *testing.T) {
	s := newTestStore()

	a := register(t, s, "Alice", itin("CDG", "France", baseTime.Add(2*time.Hour), baseTime.Add(5*time.Hour)))
	b := register(t, s, "Bruno", itin("CDG", "France", baseTime.Add(90*time.Minute), baseTime.Add(4*time.Hour)))

	// B registered second, so B's snapshot saw A.
	bMatches := s.GetMatches(b.ID)
	require.NotNil(t, bMatches)
	assert.Contains(t, matchedIDs(bMatches), a.ID)

	// A's snapshot predates B and is not touched by B's registration.
	aMatches := s.GetMatches(a.ID)
	require.NotNil(t, aMatches)
	assert.NotContains(t, matchedIDs(aMatches), b.ID, "registration must not mutate other snapshots")

	// An explicit refresh picks B up.
	aMatches = s.RefreshMatches(a.ID)
	require.NotNil(t, aMatches)
	assert.Contains(t, matchedIDs(aMatches), b.ID)
}

func TestMatchingBoundaryTouchIsNotOverlap(t *testing.T) {
	s := newTestStore()

	a := register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(2*time.Hour)))
	// B starts exactly when A ends.
	b := register(t, s, "Bruno", itin("CDG", "France", baseTime.Add(2*time.Hour), baseTime.Add(4*time.Hour)))

	assert.Empty(t, s.GetMatches(b.ID).MatchedUsers)
	assert.Empty(t, s.RefreshMatches(a.ID).MatchedUsers)
}

func TestMatchingDifferentAirportsNeverMatch(t *testing.T) {
	s := newTestStore()

	register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	b := register(t, s, "Bruno", itin("FRA", "Germany", baseTime, baseTime.Add(3*time.Hour)))

	assert.Empty(t, s.GetMatches(b.ID).MatchedUsers)
}

func TestMatchingIgnoresInactiveTravelers(t *testing.T) {
	s := newTestStore()

	a := register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(time.Hour)))
	// Deactivate A by sweeping past their layover end.
	s.CleanupExpired(baseTime.Add(90 * time.Minute))
	require.False(t, s.GetTraveler(a.ID).IsActive)

	b := register(t, s, "Bruno", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	assert.Empty(t, s.GetMatches(b.ID).MatchedUsers)
}

func TestMatchingMutualOverlap(t *testing.T) {
	s := newTestStore()

	c := register(t, s, "Carla", itin("FRA", "Germany", baseTime.Add(3*time.Hour), baseTime.Add(7*time.Hour)))
	d := register(t, s, "Diego", itin("FRA", "Germany", baseTime.Add(168*time.Minute), baseTime.Add(390*time.Minute)))

	assert.Contains(t, matchedIDs(s.GetMatches(d.ID)), c.ID)
	assert.Contains(t, matchedIDs(s.RefreshMatches(c.ID)), d.ID)
}

func TestMatchingSnapshotReplacedOnRefresh(t *testing.T) {
	s := newTestStore()

	a := register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	b := register(t, s, "Bruno", itin("CDG", "France", baseTime, baseTime.Add(2*time.Hour)))

	require.Contains(t, matchedIDs(s.RefreshMatches(a.ID)), b.ID)

	// Once B's layover ends and the sweep deactivates them, a refresh drops
	// them from A's snapshot.
	s.CleanupExpired(baseTime.Add(150 * time.Minute))
	assert.NotContains(t, matchedIDs(s.RefreshMatches(a.ID)), b.ID)
}

func TestMatchesSnapshotIsDetachedCopy(t *testing.T) {
	s := newTestStore()

	a := register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	b := register(t, s, "Bruno", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))

	m := s.GetMatches(b.ID)
	require.Len(t, m.MatchedUsers, 1)
	m.MatchedUsers[0].Nickname = "scribbled"

	assert.NotEqual(t, "scribbled", s.GetTraveler(a.ID).Nickname)
	assert.NotEqual(t, "scribbled", s.GetMatches(b.ID).MatchedUsers[0].Nickname)
}

func TestRefreshMatchesUnknownTraveler(t *testing.T) {
	s := newTestStore()
	assert.Nil(t, s.RefreshMatches("ghost"))
	assert.Nil(t, s.GetMatches("ghost"))
}
