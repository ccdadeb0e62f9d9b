package game

import (
	"errors"
	"fmt"

	"github.com/mitchelldurbincs/TextMonopoly/internal/game/core"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events"
)

// resolveLanding applies the field p landed on. Ownership is checked before
// the field kind, so an owned property never reaches the purchase branch.
func (e *Engine) resolveLanding(p *core.Player, f *core.Field) error {
	switch {
	case f.IsOwned() && !f.IsOwnedBy(p):
		return e.landedOnOthersProperty(p, f)
	case f.IsOwnedBy(p):
		return e.landedOnOwnProperty(p, f)
	}

	switch f.Kind() {
	case core.KindProperty:
		return e.landedOnBuyableProperty(p, f)
	case core.KindTax:
		return e.landedOnTax(p, f)
	case core.KindParking:
		e.display.ShowMessage(fmt.Sprintf("POSITION: %d - YOU LANDED ON A PARKING FIELD. NOTHING HAPPENS", p.Position()))
		return nil
	case core.KindChance:
		return e.landedOnChance(p)
	case core.KindStart:
		return e.landedOnStart(p)
	default:
		return fmt.Errorf("field %s has unknown kind %s", f.Name(), f.Kind())
	}
}

// settleDebt takes amount from p for creditor, or for the bank when creditor
// is nil. A player who cannot cover the whole amount hands over all remaining
// cash instead; the shortfall is what stayed unpaid.
func (e *Engine) settleDebt(p *core.Player, amount int, creditor *core.Player) (paid, shortfall int, err error) {
	pay := func(n int) error {
		if creditor != nil {
			return p.TransferTo(creditor, n)
		}
		return p.Pay(n)
	}

	err = pay(amount)
	if err == nil {
		return amount, 0, nil
	}
	if !errors.Is(err, core.ErrInsufficientFunds) {
		return 0, 0, err
	}

	paid = max(p.Cash(), 0)
	if paid > 0 {
		if err := pay(paid); err != nil {
			return 0, 0, err
		}
	}
	shortfall = amount - paid
	e.logger.Info().
		Str("player", p.Name()).
		Int("owed", amount).
		Int("paid", paid).
		Int("shortfall", shortfall).
		Msg("Player could not cover a debt")
	return paid, shortfall, nil
}

func (e *Engine) reportShortfall(p *core.Player, shortfall int) {
	if shortfall > 0 {
		e.display.ShowMessage(fmt.Sprintf("%s could not pay %d more and handed over everything they had.", p.Name(), shortfall))
	}
}

func (e *Engine) landedOnOthersProperty(p *core.Player, f *core.Field) error {
	owner := f.Owner()
	paid, shortfall, err := e.settleDebt(p, f.Fee(), owner)
	if err != nil {
		return err
	}
	e.eventBus.Publish(events.NewRentPaidEvent(e.gameID, p.Name(), e.gs.Round, owner.Name(), f.Name(), paid, shortfall))
	e.display.ShowMessage(fmt.Sprintf(
		"POSITION: %d - YOU LANDED ON %s WHICH IS ALREADY OWNED BY %s. YOU PAID THE PLAYER A FEE OF %d.",
		p.Position(), f.Name(), owner.Name(), paid))
	e.reportShortfall(p, shortfall)
	return nil
}

func (e *Engine) landedOnOwnProperty(p *core.Player, f *core.Field) error {
	e.display.ShowMessage(fmt.Sprintf("YOU LANDED ON A FIELD YOU OWN: (%s).", f.Name()))
	e.display.ShowMessage(fmt.Sprintf("Fee: %d, Color: %s", f.Fee(), f.Color()))

	if p.QualifiesForHotel(f) {
		yes, err := e.askYesNo(fmt.Sprintf("%s - You can buy a hotel on this card for %d. Do you want to? ", p.Name(), f.HousePrice()))
		if err != nil {
			return err
		}
		if yes {
			if err := e.buildHotel(p, f); err != nil {
				return err
			}
		}
	}

	if p.QualifiesForHouses(f) {
		yes, err := e.askYesNo(fmt.Sprintf("%s - You can buy houses on this card for %d each. Do you want to? ", p.Name(), f.HousePrice()))
		if err != nil {
			return err
		}
		if !yes {
			return nil
		}
		count, err := e.askHouseCount(f.PossibleHouses())
		if err != nil {
			return err
		}
		return e.buildHouses(p, f, count)
	}

	if !p.OwnsGroup(f.Color()) {
		e.display.ShowMessage("You need to have a monopoly to build houses on this field.")
	}
	return nil
}

func (e *Engine) buildHotel(p *core.Player, f *core.Field) error {
	cost := f.HousePrice()
	if err := p.BuildHotel(f); err != nil {
		if errors.Is(err, core.ErrInsufficientFunds) {
			e.display.ShowMessage(fmt.Sprintf("You cannot afford a hotel on %s for %d.", f.Name(), cost))
			return nil
		}
		return err
	}
	e.eventBus.Publish(events.NewBuildingBuiltEvent(e.gameID, p.Name(), e.gs.Round, f.Name(), f.Building().String(), 0, true, cost))
	e.display.ShowMessage(fmt.Sprintf("You built a hotel on %s.", f.Name()))
	return nil
}

func (e *Engine) buildHouses(p *core.Player, f *core.Field, count int) error {
	cost := count * f.HousePrice()
	if err := p.BuildHouses(f, count); err != nil {
		if errors.Is(err, core.ErrInsufficientFunds) {
			e.display.ShowMessage(fmt.Sprintf("You cannot afford %d houses on %s for %d.", count, f.Name(), cost))
			return nil
		}
		return err
	}
	e.eventBus.Publish(events.NewBuildingBuiltEvent(e.gameID, p.Name(), e.gs.Round, f.Name(), f.Building().String(), count, false, cost))
	e.display.ShowMessage(fmt.Sprintf("%s now has %s.", f.Name(), f.Building()))
	return nil
}

func (e *Engine) landedOnBuyableProperty(p *core.Player, f *core.Field) error {
	price, _ := f.Price()
	e.display.ShowMessage("YOU LANDED ON A FIELD WITH A CARD YOU CAN BUY:")
	e.display.ShowMessage(fmt.Sprintf("%s, price: %d", f.Name(), price))

	yes, err := e.askYesNo(fmt.Sprintf("%s - You can buy this card. Do you want to? ", p.Name()))
	if err != nil || !yes {
		return err
	}

	if err := p.Purchase(f); err != nil {
		if errors.Is(err, core.ErrInsufficientFunds) {
			e.display.ShowMessage(fmt.Sprintf("You cannot afford %s for %d.", f.Name(), price))
			return nil
		}
		return err
	}
	e.eventBus.Publish(events.NewPropertyPurchasedEvent(e.gameID, p.Name(), e.gs.Round, f.Name(), p.Position(), price))
	e.display.ShowMessage(fmt.Sprintf("You bought %s for %d.", f.Name(), price))
	return nil
}

func (e *Engine) landedOnTax(p *core.Player, f *core.Field) error {
	paid, shortfall, err := e.settleDebt(p, f.Fee(), nil)
	if err != nil {
		return err
	}
	e.eventBus.Publish(events.NewTaxPaidEvent(e.gameID, p.Name(), e.gs.Round, f.Name(), paid, shortfall))
	e.display.ShowMessage(fmt.Sprintf("POSITION: %d - YOU LANDED ON A TAX FIELD. YOU PAID THE BANK %d.", p.Position(), paid))
	e.reportShortfall(p, shortfall)
	return nil
}

func (e *Engine) landedOnChance(p *core.Player) error {
	drawn := e.chances.Draw()
	switch {
	case drawn > 0:
		paid, shortfall, err := e.settleDebt(p, drawn, nil)
		if err != nil {
			return err
		}
		e.eventBus.Publish(events.NewChanceDrawnEvent(e.gameID, p.Name(), e.gs.Round, drawn, paid, shortfall))
		e.display.ShowMessage(fmt.Sprintf("POSITION: %d - OH NO! YOU LANDED ON A CHANCE FIELD. YOU LOSE %d.", p.Position(), paid))
		e.reportShortfall(p, shortfall)
	case drawn < 0:
		p.Receive(-drawn)
		e.eventBus.Publish(events.NewChanceDrawnEvent(e.gameID, p.Name(), e.gs.Round, drawn, -drawn, 0))
		e.display.ShowMessage(fmt.Sprintf("POSITION: %d - LUCKY! YOU LANDED ON A CHANCE FIELD. YOU EARN %d.", p.Position(), -drawn))
	default:
		e.eventBus.Publish(events.NewChanceDrawnEvent(e.gameID, p.Name(), e.gs.Round, 0, 0, 0))
		e.display.ShowMessage(fmt.Sprintf("POSITION: %d - YOU LANDED ON A CHANCE FIELD. NOTHING HAPPENS", p.Position()))
	}
	return nil
}

func (e *Engine) landedOnStart(p *core.Player) error {
	bonus := e.rules.StartFieldBonus
	p.Receive(bonus)
	e.eventBus.Publish(events.NewBonusCreditedEvent(e.gameID, p.Name(), e.gs.Round, events.BonusStartField, bonus))
	e.display.ShowMessage(fmt.Sprintf("POSITION: %d - YOU LANDED ON A START FIELD. YOU GET %d", p.Position(), bonus))
	return nil
}
