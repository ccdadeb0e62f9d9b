package states

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events"
)

var (
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrRoundSequence     = errors.New("round out of sequence")
	ErrNoCurrentPlayer   = errors.New("no current player")
	ErrInputNotAllowed   = errors.New("phase does not accept player input")
)

// State represents a game state with lifecycle callbacks
type State interface {
	// Phase returns the GamePhase this state represents
	Phase() GamePhase

	// Enter is called when transitioning into this state
	Enter(ctx *GameContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *GameContext) error

	// Validate checks if the state is valid given the context
	Validate(ctx *GameContext) error
}

// Transition is one completed phase change
type Transition struct {
	From      GamePhase
	To        GamePhase
	Round     int
	Player    string
	Timestamp time.Time
	Reason    string
}

// StateMachine moves a game through its phases. Besides the phase graph it
// enforces that rounds open one after another and that every phase which
// reads player input has a player to read from.
type StateMachine struct {
	mu         sync.RWMutex
	phase      GamePhase
	states     map[GamePhase]State
	gc         *GameContext
	openRound  int
	history    []Transition
	maxHistory int
	publisher  events.Publisher
}

// NewStateMachine creates a machine in PhaseSetup with the game's states
// registered. publisher may be nil.
func NewStateMachine(gc *GameContext, publisher events.Publisher) *StateMachine {
	sm := &StateMachine{
		phase:      PhaseSetup,
		states:     make(map[GamePhase]State),
		gc:         gc,
		history:    make([]Transition, 0, 64),
		maxHistory: 1000,
		publisher:  publisher,
	}
	for _, s := range []State{
		NewSetupState(),
		NewRoundStartState(),
		NewPlayerTurnState(),
		NewLandingResolutionState(),
		NewEliminationCheckState(),
		NewRoundEndState(),
		NewGameOverState(),
	} {
		sm.RegisterState(s)
	}
	return sm
}

// RegisterState replaces the implementation of a phase
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.Phase()] = state
}

func (sm *StateMachine) CurrentPhase() GamePhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.phase
}

// TransitionTo moves the game to target. On any error the machine stays in
// its current phase and nothing is recorded or published.
func (sm *StateMachine) TransitionTo(target GamePhase, reason string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.phase.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, sm.phase, target)
	}
	if err := sm.checkGuards(target); err != nil {
		return err
	}

	next, ok := sm.states[target]
	if !ok {
		return fmt.Errorf("no state implementation for phase %s", target)
	}
	if err := next.Validate(sm.gc); err != nil {
		return fmt.Errorf("cannot enter %s: %w", target, err)
	}

	from := sm.phase
	if cur, ok := sm.states[from]; ok {
		if err := cur.Exit(sm.gc); err != nil {
			sm.gc.Logger.Error().
				Err(err).
				Str("from_phase", from.String()).
				Str("to_phase", target.String()).
				Msg("Error exiting state")
		}
	}

	sm.phase = target
	if err := next.Enter(sm.gc); err != nil {
		sm.phase = from
		return fmt.Errorf("failed to enter state %s: %w", target, err)
	}
	if target == PhaseRoundStart {
		sm.openRound = sm.gc.Round
	}
	sm.record(Transition{
		From:      from,
		To:        target,
		Round:     sm.gc.Round,
		Player:    sm.gc.CurrentPlayer,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	if sm.publisher != nil {
		sm.publisher.Publish(events.NewStateTransitionEvent(
			sm.gc.GameID,
			sm.gc.Round,
			from.String(),
			target.String(),
			reason,
		))
	}

	sm.gc.Logger.Debug().
		Str("from_phase", from.String()).
		Str("to_phase", target.String()).
		Int("round", sm.gc.Round).
		Str("reason", reason).
		Msg("State transition completed")

	return nil
}

// checkGuards holds the game rules the phase graph alone cannot express
func (sm *StateMachine) checkGuards(target GamePhase) error {
	switch target {
	case PhaseRoundStart:
		if sm.gc.Round != sm.openRound+1 {
			return fmt.Errorf("%w: round %d cannot follow round %d", ErrRoundSequence, sm.gc.Round, sm.openRound)
		}
	case PhaseSetup, PhaseGameOver:
	default:
		if sm.gc.Round != sm.openRound {
			return fmt.Errorf("%w: %s in round %d while round %d is open", ErrRoundSequence, target, sm.gc.Round, sm.openRound)
		}
	}

	if target.CanReceiveInput() && sm.gc.CurrentPlayer == "" {
		return fmt.Errorf("%w for %s", ErrNoCurrentPlayer, target)
	}
	return nil
}

func (sm *StateMachine) record(t Transition) {
	sm.history = append(sm.history, t)
	if len(sm.history) > sm.maxHistory {
		sm.history = sm.history[len(sm.history)-sm.maxHistory:]
	}
}

// GetHistory returns a copy of the most recent transitions, oldest first
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

func (sm *StateMachine) GetContext() *GameContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.gc
}

// IsGameOver reports whether the machine reached its terminal phase
func (sm *StateMachine) IsGameOver() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.phase.IsTerminal()
}

// CheckInput fails unless the current phase accepts player input
func (sm *StateMachine) CheckInput() error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.phase.CanReceiveInput() {
		return fmt.Errorf("%w: %s", ErrInputNotAllowed, sm.phase)
	}
	return nil
}
