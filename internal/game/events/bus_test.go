package events

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
	log             *[]string
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
	if ts.log != nil {
		*ts.log = append(*ts.log, ts.id)
	}
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBusSubscriber(t *testing.T) {
	bus := NewEventBusWithLogger(zerolog.Nop())

	// Create a test subscriber interested in specific events
	subscriber := &TestSubscriber{
		id: "test-subscriber",
		interestedTypes: map[string]bool{
			TypeGameStarted: true,
			TypeGameEnded:   true,
		},
	}

	bus.Subscribe(subscriber)
	assert.Equal(t, 1, bus.SubscriberCount())

	// Publish various events
	bus.Publish(NewGameStartedEvent("test-game", []string{"A", "B"}, 100, 40))
	bus.Publish(NewRoundStartedEvent("test-game", 1, 2))
	bus.Publish(NewGameEndedEvent("test-game", []string{"A"}, []string{"B"}, 7, false, time.Minute))

	// Should only receive GameStarted and GameEnded
	require.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypeGameStarted, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypeGameEnded, subscriber.receivedEvents[1].Type())
	assert.Equal(t, "test-game", subscriber.receivedEvents[0].GameID())
}

func TestEventBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewEventBusWithLogger(zerolog.Nop())

	var order []string
	for _, id := range []string{"c", "a", "b"} {
		bus.Subscribe(&TestSubscriber{id: id, log: &order})
	}

	bus.Publish(NewRoundEndedEvent("test-game", 1, 2, time.Second))
	assert.Equal(t, []string{"c", "a", "b"}, order)

	// Re-subscribing an existing ID keeps its slot
	order = nil
	replacement := &TestSubscriber{id: "c", log: &order}
	bus.Subscribe(replacement)
	bus.Publish(NewRoundEndedEvent("test-game", 2, 2, time.Second))
	assert.Equal(t, []string{"c", "a", "b"}, order)
	assert.Len(t, replacement.receivedEvents, 1)
	assert.Equal(t, 3, bus.SubscriberCount())
}

func TestMoneyEventTransfers(t *testing.T) {
	tests := []struct {
		name     string
		event    MoneyEvent
		expected Transfer
	}{
		{
			name:     "rent goes to the owner",
			event:    NewRentPaidEvent("g", "Player 1", 3, "Player 2", "Istanbul", 35000, 0),
			expected: Transfer{From: "Player 1", To: "Player 2", Amount: 35000},
		},
		{
			name:     "tax goes to the bank",
			event:    NewTaxPaidEvent("g", "Player 1", 1, "Income tax", 1000000, 0),
			expected: Transfer{From: "Player 1", To: Bank, Amount: 1000000},
		},
		{
			name:     "positive chance is a debit",
			event:    NewChanceDrawnEvent("g", "Player 1", 1, 500000, 500000, 0),
			expected: Transfer{From: "Player 1", To: Bank, Amount: 500000},
		},
		{
			name:     "negative chance is a credit",
			event:    NewChanceDrawnEvent("g", "Player 1", 1, -750000, 750000, 0),
			expected: Transfer{From: Bank, To: "Player 1", Amount: 750000},
		},
		{
			name:     "bonus comes from the bank",
			event:    NewBonusCreditedEvent("g", "Player 1", 1, BonusPassStart, 2000000),
			expected: Transfer{From: Bank, To: "Player 1", Amount: 2000000},
		},
		{
			name:     "purchase goes to the bank",
			event:    NewPropertyPurchasedEvent("g", "Player 1", 1, "Ankara", 4, 350000),
			expected: Transfer{From: "Player 1", To: Bank, Amount: 350000},
		},
		{
			name:     "building goes to the bank",
			event:    NewBuildingBuiltEvent("g", "Player 1", 1, "Ankara", "2 houses", 2, false, 350000),
			expected: Transfer{From: "Player 1", To: Bank, Amount: 350000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Transfer())
		})
	}
}
