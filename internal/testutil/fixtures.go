package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/TextMonopoly/internal/game/core"
	"github.com/stretchr/testify/require"
)

// Board builds a board from fields in order and fails the test if it is invalid
func Board(t testing.TB, fields ...*core.Field) *core.Board {
	t.Helper()
	b, err := core.NewBoard(fields)
	require.NoError(t, err)
	return b
}

// BrownPairBoard is Start, the two-field brown group Alpha and Beta (price
// 1000, fee 100) and a parking field. Owning both browns allows building.
func BrownPairBoard(t testing.TB) *core.Board {
	return Board(t,
		core.NewStart("Start"),
		core.NewProperty("Alpha", core.ColorBrown, 1000, 100),
		core.NewProperty("Beta", core.ColorBrown, 1000, 100),
		core.NewParking("Parking"),
	)
}
