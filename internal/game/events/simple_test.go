package events_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events"
)

// TestSubscriber implements the Subscriber interface for testing
type TestSubscriber struct {
	id         string
	events     []events.Event
	interested map[string]bool
}

func NewTestSubscriber(id string, interestedTypes ...string) *TestSubscriber {
	interested := make(map[string]bool)
	for _, t := range interestedTypes {
		interested[t] = true
	}
	return &TestSubscriber{
		id:         id,
		interested: interested,
	}
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(event events.Event) {
	ts.events = append(ts.events, event)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if len(ts.interested) == 0 {
		return true // Interested in all events if not specified
	}
	return ts.interested[eventType]
}

type panickingSubscriber struct{}

func (panickingSubscriber) ID() string               { return "panics" }
func (panickingSubscriber) HandleEvent(events.Event) { panic("test panic") }
func (panickingSubscriber) InterestedIn(string) bool { return true }

func TestEventBusBasicFunctionality(t *testing.T) {
	bus := events.NewEventBusWithLogger(zerolog.Nop())

	subscriber := NewTestSubscriber("test1", events.TypeGameStarted, events.TypeGameEnded)
	bus.Subscribe(subscriber)

	bus.Publish(events.NewGameStartedEvent("game1", []string{"Player 1", "Player 2"}, 15000000, 40))

	require.Len(t, subscriber.events, 1)
	assert.Equal(t, events.TypeGameStarted, subscriber.events[0].Type())
	assert.Equal(t, "game1", subscriber.events[0].GameID())

	// Subscriber is not interested in rounds
	bus.Publish(events.NewRoundStartedEvent("game1", 1, 2))
	assert.Len(t, subscriber.events, 1)

	gameEnded := &events.GameEndedEvent{
		BaseEvent: events.BaseEvent{
			EventType: events.TypeGameEnded,
			Time:      time.Now(),
			Game:      "game1",
		},
		Winners:  []string{"Player 2"},
		Duration: time.Minute,
	}
	bus.Publish(gameEnded)

	require.Len(t, subscriber.events, 2)
	assert.Equal(t, events.TypeGameEnded, subscriber.events[1].Type())
}

func TestEventBusTypedDelivery(t *testing.T) {
	bus := events.NewEventBusWithLogger(zerolog.Nop())
	sub := NewTestSubscriber("moves", events.TypePlayerMoved)
	bus.Subscribe(sub)

	bus.Publish(events.NewPlayerMovedEvent("game3", "Player 1", 2, 38, 4, 6, true, "Ankara"))

	require.Len(t, sub.events, 1)
	moved, ok := sub.events[0].(*events.PlayerMovedEvent)
	require.True(t, ok)
	assert.Equal(t, "Player 1", moved.Metadata.Player)
	assert.Equal(t, 2, moved.Metadata.Round)
	assert.Equal(t, 38, moved.From)
	assert.Equal(t, 4, moved.To)
	assert.True(t, moved.PassedStart)
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	bus := events.NewEventBusWithLogger(zerolog.Nop())

	sub1 := NewTestSubscriber("sub1", events.TypeRentPaid)
	sub2 := NewTestSubscriber("sub2", events.TypeRentPaid)
	sub3 := NewTestSubscriber("sub3") // Interested in all

	bus.Subscribe(sub1)
	bus.Subscribe(sub2)
	bus.Subscribe(sub3)

	bus.Publish(events.NewRentPaidEvent("game4", "Player 1", 1, "Player 2", "Dubai", 325000, 0))
	bus.Publish(events.NewRoundStartedEvent("game4", 2, 2))

	assert.Len(t, sub1.events, 1)
	assert.Len(t, sub2.events, 1)
	assert.Len(t, sub3.events, 2)
}

func TestEventBusPanicRecovery(t *testing.T) {
	bus := events.NewEventBusWithLogger(zerolog.Nop())

	// Subscribed first, so it runs before the normal subscriber
	bus.Subscribe(panickingSubscriber{})

	normalSub := NewTestSubscriber("normal")
	bus.Subscribe(normalSub)

	elimEvent := events.NewPlayerEliminatedEvent("game5", "Player 1", 10, 0, 2, 1)

	assert.NotPanics(t, func() {
		bus.Publish(elimEvent)
	})

	// Normal subscriber should still receive the event
	assert.Len(t, normalSub.events, 1)
}

func TestEventTimestamps(t *testing.T) {
	startTime := time.Now()

	evts := []events.Event{
		events.NewGameStartedEvent("game6", []string{"A", "B"}, 100, 40),
		events.NewRoundStartedEvent("game6", 1, 2),
		events.NewRoundEndedEvent("game6", 1, 2, time.Millisecond*50),
		events.NewGameQuitEvent("game6", "A", 1),
		events.NewStateTransitionEvent("game6", 1, "RoundStart", "PlayerTurn", "next player"),
	}

	for _, event := range evts {
		assert.False(t, event.Timestamp().IsZero())
		assert.True(t, event.Timestamp().After(startTime) || event.Timestamp().Equal(startTime))
		assert.True(t, event.Timestamp().Before(time.Now().Add(time.Second)))
		assert.Equal(t, "game6", event.GameID())
	}
}

func TestEventMetadata(t *testing.T) {
	metadata := events.EventMetadata{
		Player: "Player 1",
		Round:  5,
		Extra: map[string]interface{}{
			"custom_field": "value",
			"number":       42,
		},
	}

	taxPaid := &events.TaxPaidEvent{
		BaseEvent: events.BaseEvent{
			EventType: events.TypeTaxPaid,
			Time:      time.Now(),
			Game:      "game7",
		},
		Metadata: metadata,
		Field:    "Revenue tax",
		Amount:   1500000,
	}

	assert.Equal(t, "Player 1", taxPaid.Metadata.Player)
	assert.Equal(t, 5, taxPaid.Metadata.Round)
	assert.Equal(t, "value", taxPaid.Metadata.Extra["custom_field"])
	assert.Equal(t, 42, taxPaid.Metadata.Extra["number"])
	assert.Equal(t, events.Transfer{From: "Player 1", To: events.Bank, Amount: 1500000}, taxPaid.Transfer())
}

// Benchmark tests
func BenchmarkEventBusPublish(b *testing.B) {
	bus := events.NewEventBusWithLogger(zerolog.Nop())
	subscriber := NewTestSubscriber("bench")
	bus.Subscribe(subscriber)

	event := events.NewRoundStartedEvent("bench-game", 1, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bus.Publish(event)
	}
}
