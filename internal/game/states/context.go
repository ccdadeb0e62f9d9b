package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides game-specific information to states for making decisions
type GameContext struct {
	// GameID uniquely identifies this game instance
	GameID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// Round is the 1-based number of the round being played, 0 before the first round
	Round int

	// CurrentPlayer is the name of the player whose turn it is
	CurrentPlayer string

	// ActivePlayers is the number of players still in the game
	ActivePlayers int

	// EndRequested is set once a player chose to stop the game
	EndRequested bool

	// StartTime is when the first round started
	StartTime time.Time

	// Winners holds the names of the remaining players once the game is over
	Winners []string
}

// NewGameContext creates a new game context
func NewGameContext(gameID string, logger zerolog.Logger) *GameContext {
	return &GameContext{
		GameID: gameID,
		Logger: logger.With().Str("game_id", gameID).Logger(),
	}
}

// CanContinue returns true while at least two players are left and nobody asked to stop
func (gc *GameContext) CanContinue() bool {
	return gc.ActivePlayers >= 2 && !gc.EndRequested
}

// GetElapsedTime returns the time elapsed since the first round started
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	return time.Since(gc.StartTime)
}
