package core

import "fmt"

// FieldKind identifies what happens when a player lands on a field.
type FieldKind int

const (
	KindProperty FieldKind = iota
	KindTax
	KindChance
	KindParking
	KindStart
)

func (k FieldKind) String() string {
	switch k {
	case KindProperty:
		return "PROPERTY"
	case KindTax:
		return "TAX"
	case KindChance:
		return "CHANCE"
	case KindParking:
		return "PARKING"
	case KindStart:
		return "START"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Color is the group tag of a property. Properties sharing a color form a monopoly set.
type Color string

const (
	ColorNone      Color = ""
	ColorBrown     Color = "brown"
	ColorGrey      Color = "grey"
	ColorPink      Color = "pink"
	ColorOrange    Color = "orange"
	ColorRed       Color = "red"
	ColorYellow    Color = "yellow"
	ColorGreen     Color = "green"
	ColorBlue      Color = "blue"
	ColorTransport Color = "transport"
	ColorPower     Color = "power"
)

// GroupSize is the number of properties a player must own in this color
// before building. Infrastructure colors have no house mechanic and return 0.
func (c Color) GroupSize() int {
	switch c {
	case ColorBrown, ColorBlue:
		return 2
	case ColorGrey, ColorPink, ColorOrange, ColorRed, ColorYellow, ColorGreen:
		return 3
	default:
		return 0
	}
}

// Buildable reports whether houses and hotels can be built on this color.
func (c Color) Buildable() bool {
	return c.GroupSize() > 0
}

// Field is one cell of the board. Only properties carry price, owner and buildings.
type Field struct {
	name     string
	kind     FieldKind
	color    Color
	price    int
	baseFee  int
	building BuildingState
	owner    *Player
}

func NewProperty(name string, color Color, price, baseFee int) *Field {
	return &Field{name: name, kind: KindProperty, color: color, price: price, baseFee: baseFee}
}

func NewTax(name string, amount int) *Field {
	return &Field{name: name, kind: KindTax, baseFee: amount}
}

func NewChance(name string) *Field {
	return &Field{name: name, kind: KindChance}
}

func NewParking(name string) *Field {
	return &Field{name: name, kind: KindParking}
}

func NewStart(name string) *Field {
	return &Field{name: name, kind: KindStart}
}

func (f *Field) Name() string             { return f.name }
func (f *Field) Kind() FieldKind          { return f.kind }
func (f *Field) Color() Color             { return f.color }
func (f *Field) BaseFee() int             { return f.baseFee }
func (f *Field) Building() BuildingState  { return f.building }
func (f *Field) Owner() *Player           { return f.owner }
func (f *Field) IsProperty() bool         { return f.kind == KindProperty }
func (f *Field) IsOwned() bool            { return f.owner != nil }
func (f *Field) IsOwnedBy(p *Player) bool { return p != nil && f.owner == p }

// Price is the purchase price; ok is false for fields that cannot be bought.
func (f *Field) Price() (price int, ok bool) {
	return f.price, f.IsProperty()
}

// HousePrice is half the purchase price, truncated. Hotels cost the same.
func (f *Field) HousePrice() int {
	if !f.IsProperty() {
		return 0
	}
	return f.price / 2
}

// PossibleHouses is how many more houses fit on the field.
func (f *Field) PossibleHouses() int {
	if !f.IsProperty() || f.building.HasHotel() {
		return 0
	}
	return MaxHouses - f.building.Houses()
}

// Fee is the rent for a property at its current building level, or the
// base fee (tax amount, or zero) for any other kind of field.
func (f *Field) Fee() int {
	if !f.IsProperty() {
		return f.baseFee
	}
	return f.baseFee * f.building.FeeMultiplier()
}

// State describes the field's availability for the board listing.
func (f *Field) State() string {
	if !f.IsProperty() {
		return "not buyable"
	}
	if f.owner != nil {
		return fmt.Sprintf("bought by %s", f.owner.Name())
	}
	return "available to buy"
}

func (f *Field) setOwner(p *Player) {
	f.owner = p
}

func (f *Field) addHouses(count int) error {
	next, err := f.building.withHouses(count)
	if err != nil {
		return err
	}
	f.building = next
	return nil
}

func (f *Field) placeHotel() {
	f.building = Hotel()
}
