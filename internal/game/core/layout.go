package core

// StandardBoardSize is the number of fields in the standard layout.
const StandardBoardSize = 40

// StandardLayout builds fresh fields for the standard board, in board order.
// Every call returns new, unowned fields.
func StandardLayout() []*Field {
	return []*Field{
		NewStart("Start"),
		NewProperty("Istanbul", ColorBrown, 350000, 35000),
		NewChance("Chance"),
		NewProperty("Ankara", ColorBrown, 350000, 35000),
		NewTax("Income tax", 1000000),
		NewProperty("Bus Station", ColorTransport, 1000000, 500000),
		NewProperty("Gdansk", ColorGrey, 750000, 75000),
		NewChance("Chance"),
		NewProperty("Lublin", ColorGrey, 750000, 75000),
		NewProperty("Warsaw", ColorGrey, 1000000, 100000),
		NewParking("Parking"),
		NewProperty("Valencia", ColorPink, 1000000, 100000),
		NewProperty("Solar Power Plant", ColorPower, 750000, 350000),
		NewProperty("Barcelona", ColorPink, 1000000, 100000),
		NewProperty("Madrid", ColorPink, 1200000, 120000),
		NewProperty("Train Station", ColorTransport, 1000000, 500000),
		NewProperty("Naples", ColorOrange, 1400000, 140000),
		NewChance("Chance"),
		NewProperty("Rome", ColorOrange, 1400000, 140000),
		NewProperty("Milan", ColorOrange, 1600000, 160000),
		NewParking("Parking"),
		NewProperty("Phoenix", ColorRed, 1750000, 175000),
		NewChance("Chance"),
		NewProperty("Chicago", ColorRed, 1750000, 175000),
		NewProperty("Los Angeles", ColorRed, 2000000, 200000),
		NewProperty("Airport", ColorTransport, 1000000, 500000),
		NewProperty("Lyon", ColorYellow, 2200000, 220000),
		NewProperty("Marseille", ColorYellow, 2200000, 220000),
		NewProperty("Wind Power Plant", ColorPower, 750000, 350000),
		NewProperty("Paris", ColorYellow, 2400000, 240000),
		NewParking("Parking"),
		NewProperty("Helsinki", ColorGreen, 2500000, 250000),
		NewProperty("Oslo", ColorGreen, 2500000, 250000),
		NewChance("Chance"),
		NewProperty("Stockholm", ColorGreen, 2700000, 270000),
		NewProperty("Rocket Launch Station", ColorTransport, 1000000, 500000),
		NewChance("Chance"),
		NewProperty("Abu Dhabi", ColorBlue, 3000000, 300000),
		NewTax("Revenue tax", 1500000),
		NewProperty("Dubai", ColorBlue, 3250000, 325000),
	}
}

// NewStandardBoard returns a new board with the standard layout.
func NewStandardBoard() *Board {
	b, err := NewBoard(StandardLayout())
	if err != nil {
		panic("standard layout is invalid: " + err.Error())
	}
	return b
}
