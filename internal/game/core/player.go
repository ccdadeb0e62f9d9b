package core

import "fmt"

// Economy holds the money rules a player is created with.
type Economy struct {
	StartingCash   int
	PassStartBonus int
}

func DefaultEconomy() Economy {
	return Economy{
		StartingCash:   15000000,
		PassStartBonus: 2000000,
	}
}

// Player tracks one participant's cash, position and properties.
// A player is in the game while not eliminated and cash > 0; elimination is permanent.
type Player struct {
	name       string
	cash       int
	position   int
	properties []*Field
	eliminated bool

	board          *Board
	passStartBonus int
}

func NewPlayer(name string, board *Board, economy Economy) *Player {
	return &Player{
		name:           name,
		cash:           economy.StartingCash,
		position:       1,
		properties:     make([]*Field, 0, 8),
		board:          board,
		passStartBonus: economy.PassStartBonus,
	}
}

func (p *Player) Name() string       { return p.name }
func (p *Player) Cash() int          { return p.cash }
func (p *Player) Position() int      { return p.position }
func (p *Player) IsEliminated() bool { return p.eliminated }

// InGame reports whether the player still takes turns.
func (p *Player) InGame() bool {
	return !p.eliminated && p.cash > 0
}

// Eliminate removes the player from the rotation for the rest of the game.
func (p *Player) Eliminate() {
	p.eliminated = true
}

// OwnedProperties returns the player's fields in purchase order.
func (p *Player) OwnedProperties() []*Field {
	out := make([]*Field, len(p.properties))
	copy(out, p.properties)
	return out
}

// Pay debits amount from the player. It fails without touching the balance
// when the player cannot cover the whole amount.
func (p *Player) Pay(amount int) error {
	if amount < 0 {
		return WrapPlayerError(p.name, fmt.Sprintf("pay %d", amount), ErrInvalidAmount)
	}
	if p.cash < amount {
		return WrapPlayerError(p.name, fmt.Sprintf("pay %d (cash %d)", amount, p.cash), ErrInsufficientFunds)
	}
	p.cash -= amount
	return nil
}

func (p *Player) Receive(amount int) {
	p.cash += amount
}

// TransferTo moves amount from p to other. Either both balances change or neither does.
func (p *Player) TransferTo(other *Player, amount int) error {
	if err := p.Pay(amount); err != nil {
		return err
	}
	other.Receive(amount)
	return nil
}

// Purchase buys an unowned property at its price.
func (p *Player) Purchase(f *Field) error {
	if !f.IsProperty() || f.IsOwned() {
		return WrapPlayerError(p.name, "purchase "+f.Name(), ErrNotPurchasable)
	}
	if err := p.Pay(f.price); err != nil {
		return err
	}
	p.properties = append(p.properties, f)
	f.setOwner(p)
	return nil
}

// ownedInColor counts the player's properties of the given color.
func (p *Player) ownedInColor(c Color) int {
	n := 0
	for _, f := range p.properties {
		if f.Color() == c {
			n++
		}
	}
	return n
}

// OwnsGroup reports whether the player owns every property of a buildable color.
func (p *Player) OwnsGroup(c Color) bool {
	return c.Buildable() && p.ownedInColor(c) == c.GroupSize()
}

// QualifiesForHouses reports whether the player may add houses to f: they own
// the complete color group, the color allows buildings and there is room left.
func (p *Player) QualifiesForHouses(f *Field) bool {
	if !f.IsProperty() || !f.IsOwnedBy(p) {
		return false
	}
	if f.PossibleHouses() == 0 {
		return false
	}
	return p.OwnsGroup(f.Color())
}

// QualifiesForHotel reports whether f carries four houses and no hotel yet.
func (p *Player) QualifiesForHotel(f *Field) bool {
	b := f.Building()
	return f.IsOwnedBy(p) && !b.HasHotel() && b.Houses() == MaxHouses
}

// BuildHouses pays for count houses and then places them on f.
func (p *Player) BuildHouses(f *Field, count int) error {
	op := fmt.Sprintf("build %d houses on %s", count, f.Name())
	if !p.QualifiesForHouses(f) {
		return WrapPlayerError(p.name, op, ErrNotQualified)
	}
	if count < 1 || count > f.PossibleHouses() {
		return WrapPlayerError(p.name, op, ErrInvalidBuildCount)
	}
	if err := p.Pay(count * f.HousePrice()); err != nil {
		return err
	}
	return f.addHouses(count)
}

// BuildHotel pays one house price and replaces the four houses on f with a hotel.
func (p *Player) BuildHotel(f *Field) error {
	if !p.QualifiesForHotel(f) {
		return WrapPlayerError(p.name, "build hotel on "+f.Name(), ErrNotQualified)
	}
	if err := p.Pay(f.HousePrice()); err != nil {
		return err
	}
	f.placeHotel()
	return nil
}
