package game

import "github.com/mitchelldurbincs/TextMonopoly/internal/game/core"

// GameState is the mutable state of one game
type GameState struct {
	Round        int
	Board        *core.Board
	Players      []*core.Player
	Eliminated   []*core.Player
	EndRequested bool
}

// ActivePlayers returns the players still in the game, in turn order
func (gs *GameState) ActivePlayers() []*core.Player {
	active := make([]*core.Player, 0, len(gs.Players))
	for _, p := range gs.Players {
		if p.InGame() {
			active = append(active, p)
		}
	}
	return active
}

// markEliminated appends p to the eliminated list unless it is already there.
// It returns true when p was added.
func (gs *GameState) markEliminated(p *core.Player) bool {
	for _, e := range gs.Eliminated {
		if e == p {
			return false
		}
	}
	gs.Eliminated = append(gs.Eliminated, p)
	return true
}
