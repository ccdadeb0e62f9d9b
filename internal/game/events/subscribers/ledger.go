package subscribers

import (
	"sync"
	"time"

	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events"
)

// LedgerEntry is one recorded cash movement
type LedgerEntry struct {
	EventType string
	Time      time.Time
	events.Transfer
}

// LedgerSubscriber records every event that moves money, in publish order.
// Zero-amount movements are skipped.
type LedgerSubscriber struct {
	id      string
	mu      sync.RWMutex
	entries []LedgerEntry
}

// NewLedgerSubscriber creates an empty ledger
func NewLedgerSubscriber(id string) *LedgerSubscriber {
	return &LedgerSubscriber{id: id}
}

// ID returns the subscriber's unique identifier
func (l *LedgerSubscriber) ID() string {
	return l.id
}

// InterestedIn returns true for every event type that can carry a transfer
func (l *LedgerSubscriber) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeRentPaid, events.TypeTaxPaid, events.TypeChanceDrawn,
		events.TypeBonusCredited, events.TypePropertyPurchased, events.TypeBuildingBuilt:
		return true
	default:
		return false
	}
}

// HandleEvent records the transfer of a money event
func (l *LedgerSubscriber) HandleEvent(event events.Event) {
	me, ok := event.(events.MoneyEvent)
	if !ok {
		return
	}
	transfer := me.Transfer()
	if transfer.Amount == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LedgerEntry{
		EventType: event.Type(),
		Time:      event.Timestamp(),
		Transfer:  transfer,
	})
}

// Entries returns a copy of the recorded movements
func (l *LedgerSubscriber) Entries() []LedgerEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]LedgerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// NetFor returns the total received minus the total paid by party
func (l *LedgerSubscriber) NetFor(party string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	net := 0
	for _, e := range l.entries {
		if e.To == party {
			net += e.Amount
		}
		if e.From == party {
			net -= e.Amount
		}
	}
	return net
}

// Len returns the number of recorded movements
func (l *LedgerSubscriber) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
