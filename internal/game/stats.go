package game

import "github.com/mitchelldurbincs/TextMonopoly/internal/game/core"

// This file contains the snapshots the engine hands to the Display.

func statOf(p *core.Player) PlayerStat {
	return PlayerStat{
		Name:     p.Name(),
		Position: p.Position(),
		Cash:     p.Cash(),
	}
}

func statsOf(players []*core.Player) []PlayerStat {
	stats := make([]PlayerStat, 0, len(players))
	for _, p := range players {
		stats = append(stats, statOf(p))
	}
	return stats
}

// roundSummary lists every player in turn order, eliminated ones included
func (e *Engine) roundSummary() RoundSummary {
	return RoundSummary{
		Round:   e.gs.Round,
		Players: statsOf(e.gs.Players),
	}
}

// fieldList describes the board in position order
func (e *Engine) fieldList() []FieldInfo {
	fields := e.gs.Board.Fields()
	infos := make([]FieldInfo, 0, len(fields))
	for i, f := range fields {
		price, _ := f.Price()
		infos = append(infos, FieldInfo{
			Position: i + 1,
			Name:     f.Name(),
			Price:    price,
			Color:    string(f.Color()),
			State:    f.State(),
		})
	}
	return infos
}
