package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseSetup - Board, players and collaborators are being prepared
	PhaseSetup GamePhase = iota

	// PhaseRoundStart - A new round begins, round counter advanced
	PhaseRoundStart

	// PhasePlayerTurn - The current player picks from the turn menu
	PhasePlayerTurn

	// PhaseLandingResolution - The landed field is applied to the player
	PhaseLandingResolution

	// PhaseEliminationCheck - Insolvent players are removed from rotation
	PhaseEliminationCheck

	// PhaseRoundEnd - Round summary, game over check
	PhaseRoundEnd

	// PhaseGameOver - Final state, standings reported
	PhaseGameOver
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseRoundStart:
		return "RoundStart"
	case PhasePlayerTurn:
		return "PlayerTurn"
	case PhaseLandingResolution:
		return "LandingResolution"
	case PhaseEliminationCheck:
		return "EliminationCheck"
	case PhaseRoundEnd:
		return "RoundEnd"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseGameOver
}

// CanReceiveInput returns true if the game reads player choices in this phase
func (p GamePhase) CanReceiveInput() bool {
	return p == PhasePlayerTurn || p == PhaseLandingResolution
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseSetup:
		return []GamePhase{PhaseRoundStart, PhaseGameOver}
	case PhaseRoundStart:
		return []GamePhase{PhasePlayerTurn, PhaseRoundEnd}
	case PhasePlayerTurn:
		return []GamePhase{PhaseLandingResolution, PhaseRoundEnd}
	case PhaseLandingResolution:
		return []GamePhase{PhaseEliminationCheck}
	case PhaseEliminationCheck:
		return []GamePhase{PhasePlayerTurn, PhaseRoundEnd}
	case PhaseRoundEnd:
		return []GamePhase{PhaseRoundStart, PhaseGameOver}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
