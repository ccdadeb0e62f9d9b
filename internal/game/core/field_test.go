package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldKind_String(t *testing.T) {
	tests := []struct {
		kind     FieldKind
		expected string
	}{
		{KindProperty, "PROPERTY"},
		{KindTax, "TAX"},
		{KindChance, "CHANCE"},
		{KindParking, "PARKING"},
		{KindStart, "START"},
		{FieldKind(42), "Unknown(42)"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestColor_GroupSize(t *testing.T) {
	assert.Equal(t, 2, ColorBrown.GroupSize())
	assert.Equal(t, 2, ColorBlue.GroupSize())
	assert.Equal(t, 3, ColorGrey.GroupSize())
	assert.Equal(t, 3, ColorGreen.GroupSize())
	assert.Equal(t, 0, ColorTransport.GroupSize())
	assert.Equal(t, 0, ColorPower.GroupSize())
	assert.False(t, ColorTransport.Buildable())
	assert.False(t, ColorNone.Buildable())
	assert.True(t, ColorRed.Buildable())
}

func TestField_FeeByBuildingLevel(t *testing.T) {
	const baseFee = 35000
	f := NewProperty("Istanbul", ColorBrown, 350000, baseFee)
	assert.Equal(t, baseFee, f.Fee())

	expected := []int{5 * baseFee, 15 * baseFee, 30 * baseFee, 40 * baseFee}
	for i, want := range expected {
		require.NoError(t, f.addHouses(1))
		assert.Equal(t, want, f.Fee(), "after %d houses", i+1)
	}

	f.placeHotel()
	assert.Equal(t, 50*baseFee, f.Fee())
	assert.Equal(t, 0, f.Building().Houses())
}

func TestField_NonPropertyFee(t *testing.T) {
	assert.Equal(t, 1000000, NewTax("Income tax", 1000000).Fee())
	assert.Equal(t, 0, NewChance("Chance").Fee())
	assert.Equal(t, 0, NewParking("Parking").Fee())
	assert.Equal(t, 0, NewStart("Start").Fee())
}

func TestField_Price(t *testing.T) {
	price, ok := NewProperty("Dubai", ColorBlue, 3250000, 325000).Price()
	assert.True(t, ok)
	assert.Equal(t, 3250000, price)

	_, ok = NewTax("Revenue tax", 1500000).Price()
	assert.False(t, ok)
}

func TestField_HousePriceTruncates(t *testing.T) {
	f := NewProperty("Odd", ColorRed, 1750001, 1)
	assert.Equal(t, 875000, f.HousePrice())
	assert.Equal(t, 0, NewChance("Chance").HousePrice())
}

func TestField_PossibleHouses(t *testing.T) {
	f := NewProperty("Rome", ColorOrange, 1400000, 140000)
	assert.Equal(t, 4, f.PossibleHouses())
	require.NoError(t, f.addHouses(3))
	assert.Equal(t, 1, f.PossibleHouses())
	f.placeHotel()
	assert.Equal(t, 0, f.PossibleHouses())
	assert.Equal(t, 0, NewParking("Parking").PossibleHouses())
}

func TestField_State(t *testing.T) {
	board := NewStandardBoard()
	owner := NewPlayer("Player 1", board, DefaultEconomy())

	f := NewProperty("Oslo", ColorGreen, 2500000, 250000)
	assert.Equal(t, "available to buy", f.State())
	assert.False(t, f.IsOwned())

	f.setOwner(owner)
	assert.Equal(t, "bought by Player 1", f.State())
	assert.True(t, f.IsOwnedBy(owner))

	assert.Equal(t, "not buyable", NewChance("Chance").State())
}
