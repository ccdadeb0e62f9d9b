package core

import "fmt"

// MaxHouses is the number of houses a property can hold before a hotel.
const MaxHouses = 4

// hotelLevel is the building level reported for a hotel.
const hotelLevel = MaxHouses + 1

// feeMultipliers maps a building level (0-4 houses, 5 = hotel) to the rent multiplier.
var feeMultipliers = [...]int{1, 5, 15, 30, 40, 50}

// BuildingState is what stands on a property: nothing, 1-4 houses, or a hotel.
// Houses and hotel are mutually exclusive; the zero value is NoBuilding.
type BuildingState struct {
	houses int
	hotel  bool
}

func NoBuilding() BuildingState {
	return BuildingState{}
}

// Houses returns a state with n houses. n must be within 0..MaxHouses.
func Houses(n int) (BuildingState, error) {
	if n < 0 || n > MaxHouses {
		return BuildingState{}, fmt.Errorf("%w: %d houses", ErrInvalidBuildCount, n)
	}
	return BuildingState{houses: n}, nil
}

func Hotel() BuildingState {
	return BuildingState{hotel: true}
}

// Houses returns the house count, 0 when a hotel stands.
func (b BuildingState) Houses() int { return b.houses }

func (b BuildingState) HasHotel() bool { return b.hotel }

func (b BuildingState) IsEmpty() bool { return !b.hotel && b.houses == 0 }

// Level is 0-4 for houses and 5 for a hotel.
func (b BuildingState) Level() int {
	if b.hotel {
		return hotelLevel
	}
	return b.houses
}

// FeeMultiplier is the rent multiplier applied to a property's base fee.
func (b BuildingState) FeeMultiplier() int {
	return feeMultipliers[b.Level()]
}

func (b BuildingState) String() string {
	switch {
	case b.hotel:
		return "hotel"
	case b.houses == 0:
		return "no buildings"
	case b.houses == 1:
		return "1 house"
	default:
		return fmt.Sprintf("%d houses", b.houses)
	}
}

func (b BuildingState) withHouses(added int) (BuildingState, error) {
	if b.hotel {
		return b, fmt.Errorf("%w: hotel already built", ErrInvalidBuildCount)
	}
	return Houses(b.houses + added)
}
