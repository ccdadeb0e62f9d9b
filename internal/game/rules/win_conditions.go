package rules

import "github.com/rs/zerolog"

// WinConditionChecker handles game over detection and the final standings
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// CheckGameOver reports whether the game has ended: fewer than two players
// are still in the game, or a player asked to stop.
func (wc *WinConditionChecker) CheckGameOver(players []Player, endRequested bool) bool {
	active := 0
	for _, p := range players {
		if p.InGame() {
			active++
		}
	}

	gameOver := active < 2 || endRequested
	wc.logger.Debug().
		Int("active_players", active).
		Bool("end_requested", endRequested).
		Bool("is_game_over", gameOver).
		Msg("Game over check complete")
	return gameOver
}

// Standings partitions the players into losers, in elimination order, and
// winners, the players still in the game in turn order.
func (wc *WinConditionChecker) Standings(players, eliminated []Player) (losers, winners []Player) {
	losers = append(losers, eliminated...)
	for _, p := range players {
		if p.InGame() {
			winners = append(winners, p)
		}
	}

	names := make([]string, 0, len(winners))
	for _, w := range winners {
		names = append(names, w.Name())
	}
	if len(winners) == 1 {
		wc.logger.Info().Str("winner", names[0]).Msg("Winner determined")
	} else {
		wc.logger.Info().Strs("winners", names).Int("losers", len(losers)).Msg("Game ended without a single winner")
	}
	return losers, winners
}

// Player interface to avoid circular imports
type Player interface {
	Name() string
	InGame() bool
}
