package states

import (
	"fmt"
	"time"
)

// SetupState represents game preparation before the first round
type SetupState struct{}

func NewSetupState() State {
	return &SetupState{}
}

func (s *SetupState) Phase() GamePhase {
	return PhaseSetup
}

func (s *SetupState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Setup state")
	return nil
}

func (s *SetupState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("active_players", ctx.ActivePlayers).
		Msg("Setup complete")
	return nil
}

func (s *SetupState) Validate(ctx *GameContext) error {
	return nil
}

// RoundStartState opens a round
type RoundStartState struct{}

func NewRoundStartState() State {
	return &RoundStartState{}
}

func (s *RoundStartState) Phase() GamePhase {
	return PhaseRoundStart
}

func (s *RoundStartState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
	}
	ctx.Logger.Debug().
		Int("round", ctx.Round).
		Int("active_players", ctx.ActivePlayers).
		Msg("Round started")
	return nil
}

func (s *RoundStartState) Exit(ctx *GameContext) error {
	return nil
}

func (s *RoundStartState) Validate(ctx *GameContext) error {
	if ctx.Round < 1 {
		return fmt.Errorf("round number must be at least 1, got %d", ctx.Round)
	}
	if !ctx.CanContinue() {
		return fmt.Errorf("cannot start round %d: %d active players, end requested %t",
			ctx.Round, ctx.ActivePlayers, ctx.EndRequested)
	}
	return nil
}

// PlayerTurnState represents one player choosing from the turn menu
type PlayerTurnState struct{}

func NewPlayerTurnState() State {
	return &PlayerTurnState{}
}

func (s *PlayerTurnState) Phase() GamePhase {
	return PhasePlayerTurn
}

func (s *PlayerTurnState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("round", ctx.Round).
		Str("player", ctx.CurrentPlayer).
		Msg("Player turn")
	return nil
}

func (s *PlayerTurnState) Exit(ctx *GameContext) error {
	return nil
}

func (s *PlayerTurnState) Validate(ctx *GameContext) error {
	return nil
}

// LandingResolutionState applies the landed field to the current player
type LandingResolutionState struct{}

func NewLandingResolutionState() State {
	return &LandingResolutionState{}
}

func (s *LandingResolutionState) Phase() GamePhase {
	return PhaseLandingResolution
}

func (s *LandingResolutionState) Enter(ctx *GameContext) error {
	return nil
}

func (s *LandingResolutionState) Exit(ctx *GameContext) error {
	return nil
}

func (s *LandingResolutionState) Validate(ctx *GameContext) error {
	return nil
}

// EliminationCheckState removes players who are no longer solvent
type EliminationCheckState struct{}

func NewEliminationCheckState() State {
	return &EliminationCheckState{}
}

func (s *EliminationCheckState) Phase() GamePhase {
	return PhaseEliminationCheck
}

func (s *EliminationCheckState) Enter(ctx *GameContext) error {
	return nil
}

func (s *EliminationCheckState) Exit(ctx *GameContext) error {
	return nil
}

func (s *EliminationCheckState) Validate(ctx *GameContext) error {
	return nil
}

// RoundEndState closes a round
type RoundEndState struct{}

func NewRoundEndState() State {
	return &RoundEndState{}
}

func (s *RoundEndState) Phase() GamePhase {
	return PhaseRoundEnd
}

func (s *RoundEndState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("round", ctx.Round).
		Int("active_players", ctx.ActivePlayers).
		Bool("end_requested", ctx.EndRequested).
		Msg("Round ended")
	return nil
}

func (s *RoundEndState) Exit(ctx *GameContext) error {
	return nil
}

func (s *RoundEndState) Validate(ctx *GameContext) error {
	return nil
}

// GameOverState represents a finished game
type GameOverState struct{}

func NewGameOverState() State {
	return &GameOverState{}
}

func (s *GameOverState) Phase() GamePhase {
	return PhaseGameOver
}

func (s *GameOverState) Enter(ctx *GameContext) error {
	ctx.Logger.Info().
		Int("rounds", ctx.Round).
		Strs("winners", ctx.Winners).
		Bool("end_requested", ctx.EndRequested).
		Dur("game_duration", ctx.GetElapsedTime()).
		Msg("Game over")
	return nil
}

func (s *GameOverState) Exit(ctx *GameContext) error {
	return nil
}

func (s *GameOverState) Validate(ctx *GameContext) error {
	if ctx.CanContinue() {
		return fmt.Errorf("game over requires fewer than two active players or an end request, have %d active",
			ctx.ActivePlayers)
	}
	return nil
}
