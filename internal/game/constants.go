package game

import (
	"github.com/mitchelldurbincs/TextMonopoly/internal/config"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/core"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/rules"
)

// Rules bundles the numeric rules of a game
type Rules struct {
	Economy         core.Economy
	StartFieldBonus int
	MinPlayers      int
	MaxPlayers      int
	DiceMin         int
	DiceMax         int
	Chances         []int
}

// DefaultRules returns the standard rules
func DefaultRules() Rules {
	return Rules{
		Economy:         core.DefaultEconomy(),
		StartFieldBonus: 2000000,
		MinPlayers:      2,
		MaxPlayers:      8,
		DiceMin:         2,
		DiceMax:         12,
		Chances:         append([]int(nil), rules.DefaultChances...),
	}
}

// RulesFromConfig maps the game section of the configuration onto Rules
func RulesFromConfig(c *config.Config) Rules {
	return Rules{
		Economy: core.Economy{
			StartingCash:   c.Game.StartingCash,
			PassStartBonus: c.Game.PassStartBonus,
		},
		StartFieldBonus: c.Game.StartFieldBonus,
		MinPlayers:      c.Game.MinPlayers,
		MaxPlayers:      c.Game.MaxPlayers,
		DiceMin:         c.Game.Dice.Min,
		DiceMax:         c.Game.Dice.Max,
		Chances:         append([]int(nil), c.Game.Chances...),
	}
}
