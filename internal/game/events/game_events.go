package events

import (
	"time"
)

// Event type constants
const (
	TypeGameStarted       = "game.started"
	TypeGameEnded         = "game.ended"
	TypeGameQuit          = "game.quit"
	TypeRoundStarted      = "round.started"
	TypeRoundEnded        = "round.ended"
	TypePlayerMoved       = "player.moved"
	TypeRentPaid          = "rent.paid"
	TypeTaxPaid           = "tax.paid"
	TypeChanceDrawn       = "chance.drawn"
	TypeBonusCredited     = "bonus.credited"
	TypePropertyPurchased = "property.purchased"
	TypeBuildingBuilt     = "building.built"
	TypePlayerEliminated  = "player.eliminated"
	TypeStateTransition   = "state.transition"
)

// Bonus reasons
const (
	BonusPassStart  = "pass_start"
	BonusStartField = "start_field"
)

func newBase(eventType, gameID string) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
		Game:      gameID,
	}
}

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Players      []string
	StartingCash int
	BoardSize    int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, players []string, startingCash, boardSize int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:    newBase(TypeGameStarted, gameID),
		Players:      players,
		StartingCash: startingCash,
		BoardSize:    boardSize,
	}
}

// GameEndedEvent is published when a game ends
type GameEndedEvent struct {
	BaseEvent
	Winners      []string
	Losers       []string
	Rounds       int
	EndRequested bool
	Duration     time.Duration
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winners, losers []string, rounds int, endRequested bool, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent:    newBase(TypeGameEnded, gameID),
		Winners:      winners,
		Losers:       losers,
		Rounds:       rounds,
		EndRequested: endRequested,
		Duration:     duration,
	}
}

// GameQuitEvent is published when a player asks to end the game
type GameQuitEvent struct {
	BaseEvent
	Metadata EventMetadata
}

// NewGameQuitEvent creates a new GameQuitEvent
func NewGameQuitEvent(gameID, player string, round int) *GameQuitEvent {
	return &GameQuitEvent{
		BaseEvent: newBase(TypeGameQuit, gameID),
		Metadata:  EventMetadata{Player: player, Round: round},
	}
}

// RoundStartedEvent is published at the beginning of each round
type RoundStartedEvent struct {
	BaseEvent
	Round         int
	ActivePlayers int
}

// NewRoundStartedEvent creates a new RoundStartedEvent
func NewRoundStartedEvent(gameID string, round, activePlayers int) *RoundStartedEvent {
	return &RoundStartedEvent{
		BaseEvent:     newBase(TypeRoundStarted, gameID),
		Round:         round,
		ActivePlayers: activePlayers,
	}
}

// RoundEndedEvent is published after the round summary
type RoundEndedEvent struct {
	BaseEvent
	Round         int
	ActivePlayers int
	Duration      time.Duration
}

// NewRoundEndedEvent creates a new RoundEndedEvent
func NewRoundEndedEvent(gameID string, round, activePlayers int, duration time.Duration) *RoundEndedEvent {
	return &RoundEndedEvent{
		BaseEvent:     newBase(TypeRoundEnded, gameID),
		Round:         round,
		ActivePlayers: activePlayers,
		Duration:      duration,
	}
}

// PlayerMovedEvent is published after a player rolled and moved
type PlayerMovedEvent struct {
	BaseEvent
	Metadata    EventMetadata
	From        int
	To          int
	Roll        int
	PassedStart bool
	Field       string
}

// NewPlayerMovedEvent creates a new PlayerMovedEvent
func NewPlayerMovedEvent(gameID, player string, round, from, to, roll int, passedStart bool, field string) *PlayerMovedEvent {
	return &PlayerMovedEvent{
		BaseEvent:   newBase(TypePlayerMoved, gameID),
		Metadata:    EventMetadata{Player: player, Round: round},
		From:        from,
		To:          to,
		Roll:        roll,
		PassedStart: passedStart,
		Field:       field,
	}
}

// RentPaidEvent is published when a player pays rent to a property owner.
// Amount is what was actually paid; Shortfall is the part of the fee left unpaid.
type RentPaidEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Owner     string
	Field     string
	Amount    int
	Shortfall int
}

// NewRentPaidEvent creates a new RentPaidEvent
func NewRentPaidEvent(gameID, player string, round int, owner, field string, amount, shortfall int) *RentPaidEvent {
	return &RentPaidEvent{
		BaseEvent: newBase(TypeRentPaid, gameID),
		Metadata:  EventMetadata{Player: player, Round: round},
		Owner:     owner,
		Field:     field,
		Amount:    amount,
		Shortfall: shortfall,
	}
}

// Transfer implements MoneyEvent
func (e *RentPaidEvent) Transfer() Transfer {
	return Transfer{From: e.Metadata.Player, To: e.Owner, Amount: e.Amount}
}

// TaxPaidEvent is published when a player pays tax to the bank
type TaxPaidEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Field     string
	Amount    int
	Shortfall int
}

// NewTaxPaidEvent creates a new TaxPaidEvent
func NewTaxPaidEvent(gameID, player string, round int, field string, amount, shortfall int) *TaxPaidEvent {
	return &TaxPaidEvent{
		BaseEvent: newBase(TypeTaxPaid, gameID),
		Metadata:  EventMetadata{Player: player, Round: round},
		Field:     field,
		Amount:    amount,
		Shortfall: shortfall,
	}
}

// Transfer implements MoneyEvent
func (e *TaxPaidEvent) Transfer() Transfer {
	return Transfer{From: e.Metadata.Player, To: Bank, Amount: e.Amount}
}

// ChanceDrawnEvent is published when a player draws a chance card.
// Drawn is the signed table entry: positive is a debit, negative a credit.
// Settled is the absolute amount that actually moved.
type ChanceDrawnEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Drawn     int
	Settled   int
	Shortfall int
}

// NewChanceDrawnEvent creates a new ChanceDrawnEvent
func NewChanceDrawnEvent(gameID, player string, round, drawn, settled, shortfall int) *ChanceDrawnEvent {
	return &ChanceDrawnEvent{
		BaseEvent: newBase(TypeChanceDrawn, gameID),
		Metadata:  EventMetadata{Player: player, Round: round},
		Drawn:     drawn,
		Settled:   settled,
		Shortfall: shortfall,
	}
}

// Transfer implements MoneyEvent
func (e *ChanceDrawnEvent) Transfer() Transfer {
	if e.Drawn < 0 {
		return Transfer{From: Bank, To: e.Metadata.Player, Amount: e.Settled}
	}
	return Transfer{From: e.Metadata.Player, To: Bank, Amount: e.Settled}
}

// BonusCreditedEvent is published when the bank credits a start bonus
type BonusCreditedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Reason   string
	Amount   int
}

// NewBonusCreditedEvent creates a new BonusCreditedEvent
func NewBonusCreditedEvent(gameID, player string, round int, reason string, amount int) *BonusCreditedEvent {
	return &BonusCreditedEvent{
		BaseEvent: newBase(TypeBonusCredited, gameID),
		Metadata:  EventMetadata{Player: player, Round: round},
		Reason:    reason,
		Amount:    amount,
	}
}

// Transfer implements MoneyEvent
func (e *BonusCreditedEvent) Transfer() Transfer {
	return Transfer{From: Bank, To: e.Metadata.Player, Amount: e.Amount}
}

// PropertyPurchasedEvent is published when a player buys a property
type PropertyPurchasedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Field    string
	Position int
	Price    int
}

// NewPropertyPurchasedEvent creates a new PropertyPurchasedEvent
func NewPropertyPurchasedEvent(gameID, player string, round int, field string, position, price int) *PropertyPurchasedEvent {
	return &PropertyPurchasedEvent{
		BaseEvent: newBase(TypePropertyPurchased, gameID),
		Metadata:  EventMetadata{Player: player, Round: round},
		Field:     field,
		Position:  position,
		Price:     price,
	}
}

// Transfer implements MoneyEvent
func (e *PropertyPurchasedEvent) Transfer() Transfer {
	return Transfer{From: e.Metadata.Player, To: Bank, Amount: e.Price}
}

// BuildingBuiltEvent is published when houses or a hotel are placed on a property
type BuildingBuiltEvent struct {
	BaseEvent
	Metadata EventMetadata
	Field    string
	Building string
	Added    int
	Hotel    bool
	Cost     int
}

// NewBuildingBuiltEvent creates a new BuildingBuiltEvent. Added is the number
// of houses placed, or 0 for a hotel.
func NewBuildingBuiltEvent(gameID, player string, round int, field, building string, added int, hotel bool, cost int) *BuildingBuiltEvent {
	return &BuildingBuiltEvent{
		BaseEvent: newBase(TypeBuildingBuilt, gameID),
		Metadata:  EventMetadata{Player: player, Round: round},
		Field:     field,
		Building:  building,
		Added:     added,
		Hotel:     hotel,
		Cost:      cost,
	}
}

// Transfer implements MoneyEvent
func (e *BuildingBuiltEvent) Transfer() Transfer {
	return Transfer{From: e.Metadata.Player, To: Bank, Amount: e.Cost}
}

// PlayerEliminatedEvent is published when a player is removed from the game
type PlayerEliminatedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	Cash       int
	Properties int
	Order      int
}

// NewPlayerEliminatedEvent creates a new PlayerEliminatedEvent. Order is the
// 1-based position in the elimination list.
func NewPlayerEliminatedEvent(gameID, player string, round, cash, properties, order int) *PlayerEliminatedEvent {
	return &PlayerEliminatedEvent{
		BaseEvent:  newBase(TypePlayerEliminated, gameID),
		Metadata:   EventMetadata{Player: player, Round: round},
		Cash:       cash,
		Properties: properties,
		Order:      order,
	}
}

// StateTransitionEvent is published when the game state machine changes phase
type StateTransitionEvent struct {
	BaseEvent
	Round     int
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID string, round int, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		Round:     round,
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
