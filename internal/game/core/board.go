package core

import (
	"errors"
	"fmt"

	"github.com/mitchelldurbincs/TextMonopoly/internal/common"
)

// Board is the fixed, ordered ring of fields. Position N+1 follows N and the
// first field follows the last. Positions are 1-based.
type Board struct {
	fields []*Field
}

func NewBoard(fields []*Field) (*Board, error) {
	if len(fields) == 0 {
		return nil, errors.New("board needs at least one field")
	}
	for i, f := range fields {
		if f == nil {
			return nil, fmt.Errorf("field at position %d is nil", i+1)
		}
	}
	b := &Board{fields: make([]*Field, len(fields))}
	copy(b.fields, fields)
	return b, nil
}

func (b *Board) Len() int { return len(b.fields) }

// FieldAt returns the field at a 1-based position.
func (b *Board) FieldAt(position int) (*Field, error) {
	if !common.IsValidPosition(position, len(b.fields)) {
		return nil, fmt.Errorf("%w: %d (board has %d fields)", ErrPositionOutOfRange, position, len(b.fields))
	}
	return b.fields[position-1], nil
}

// Fields returns the fields in board order. The slice is a copy; the fields are shared.
func (b *Board) Fields() []*Field {
	out := make([]*Field, len(b.fields))
	copy(out, b.fields)
	return out
}
