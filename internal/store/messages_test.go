package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layovermeet/backend/internal/models"
)

func TestSendGroupMessage(t *testing.T) {
	s := newTestStore()

	a := register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	group := s.GetGroupChatsForUser(a.ID)[0]

	msg := s.SendMessage(a.ID, "anyone up for coffee at terminal 2?", group.ID, "")

	require.NotNil(t, msg)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, a.ID, msg.SenderID)
	assert.Equal(t, group.ID, msg.GroupID)
	assert.Empty(t, msg.ReceiverID)
	assert.False(t, msg.IsRead)

	stored := s.GetGroupChat(group.ID)
	require.Len(t, stored.Messages, 1)
	assert.Equal(t, msg, stored.Messages[0])
}

func TestSendGroupMessageNonParticipantFails(t *testing.T) {
	s := newTestStore()

	a := register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	outsider := register(t, s, "Oscar", itin("FRA", "Germany", baseTime, baseTime.Add(3*time.Hour)))
	group := s.GetGroupChatsForUser(a.ID)[0]

	assert.Nil(t, s.SendMessage(outsider.ID, "hi", group.ID, ""))
	assert.Empty(t, s.GetGroupChat(group.ID).Messages, "rejected send must not append")
}

func TestSendGroupMessageUnknownGroupFails(t *testing.T) {
	s := newTestStore()
	a := register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))

	assert.Nil(t, s.SendMessage(a.ID, "hi", "missing-group", ""))
}

func TestSendPrivateMessage(t *testing.T) {
	s := newTestStore()

	a := register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	b := register(t, s, "Bruno", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	chat := s.CreatePrivateChat(a.ID, b.ID)
	require.NotNil(t, chat)

	msg := s.SendMessage(a.ID, "hey, matched you at CDG", "", b.ID)

	require.NotNil(t, msg)
	assert.Equal(t, b.ID, msg.ReceiverID)
	assert.Empty(t, msg.GroupID)

	stored := s.GetPrivateChatsForUser(a.ID)[0]
	require.Len(t, stored.Messages, 1)
	assert.Equal(t, msg, stored.Messages[0])
}

func TestSendPrivateMessageWithoutChatFails(t *testing.T) {
	s := newTestStore()

	a := register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	b := register(t, s, "Bruno", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))

	// The router never creates chats on its own.
	assert.Nil(t, s.SendMessage(a.ID, "hello?", "", b.ID))
}

func TestSendGroupMessageEventParticipantsAreFixed(t *testing.T) {
	s := newTestStore()

	var events []models.Event
	s.SetNotifier(func(e models.Event) { events = append(events, e) })

	a := register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	group := s.GetGroupChatsForUser(a.ID)[0]
	require.NotNil(t, s.SendMessage(a.ID, "boarding soon", group.ID, ""))

	var sent models.Event
	for _, e := range events {
		if e.Type == models.EventMessageSent {
			sent = e
		}
	}
	require.Equal(t, []string{a.ID}, sent.TravelerIDs)

	// A traveler joining the group afterwards must not surface in the
	// already-emitted event.
	register(t, s, "Bruno", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	assert.Equal(t, []string{a.ID}, sent.TravelerIDs)
}

func TestSendMessageRequiresExactlyOneTarget(t *testing.T) {
	s := newTestStore()

	a := register(t, s, "Alice", itin("CDG", "France", baseTime, baseTime.Add(3*time.Hour)))
	group := s.GetGroupChatsForUser(a.ID)[0]

	assert.Nil(t, s.SendMessage(a.ID, "no target", "", ""))
	assert.Nil(t, s.SendMessage(a.ID, "two targets", group.ID, a.ID))
}
