package core

import "fmt"

// MoveResult describes a completed move.
type MoveResult struct {
	From        int
	To          int
	Roll        int
	PassedStart bool
	Bonus       int
}

// Move advances the player by roll fields around the board.
// Crossing the end of the board credits the pass-start bonus once per lap.
// A player standing on the last field counts as being at the start of a new lap.
func (p *Player) Move(roll int) (MoveResult, error) {
	if roll < 1 {
		return MoveResult{}, WrapPlayerError(p.name, fmt.Sprintf("move %d", roll), ErrInvalidRoll)
	}
	length := p.board.Len()
	result := MoveResult{From: p.position, Roll: roll}

	if p.position%length+roll >= length {
		result.PassedStart = true
		result.Bonus = p.passStartBonus
		p.Receive(p.passStartBonus)
	}

	p.position = (p.position-1+roll)%length + 1
	result.To = p.position
	return result, nil
}

// CurrentField returns the field the player stands on.
func (p *Player) CurrentField() (*Field, error) {
	return p.board.FieldAt(p.position)
}
