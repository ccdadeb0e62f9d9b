package core

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrPositionOutOfRange = errors.New("position out of board range")
	ErrInvalidRoll        = errors.New("roll must be positive")
	ErrInvalidAmount      = errors.New("amount must not be negative")
	ErrNotPurchasable     = errors.New("field cannot be purchased")
	ErrNotQualified       = errors.New("player does not qualify to build")
	ErrInvalidBuildCount  = errors.New("invalid number of buildings")
	ErrGameOver           = errors.New("game is over")
	ErrInvalidPlayerCount = errors.New("invalid player count")
)

// WrapPlayerError adds the player name and the attempted operation to err.
func WrapPlayerError(player string, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("player %s %s: %w", player, operation, err)
}

// WrapRoundError adds the round number and engine phase to err.
func WrapRoundError(round int, phase string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("round %d [%s]: %w", round, phase, err)
}

// GameError is a structured error carrying where in the game something failed.
type GameError struct {
	Round     int
	Player    string
	Operation string
	Err       error
}

func NewGameError(round int, player, operation string, err error) *GameError {
	return &GameError{
		Round:     round,
		Player:    player,
		Operation: operation,
		Err:       err,
	}
}

func (e *GameError) Error() string {
	if e.Player != "" {
		return fmt.Sprintf("round %d: player %s %s: %v", e.Round, e.Player, e.Operation, e.Err)
	}
	return fmt.Sprintf("round %d: %s: %v", e.Round, e.Operation, e.Err)
}

func (e *GameError) Unwrap() error {
	return e.Err
}
