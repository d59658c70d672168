package slot

import (
	"errors"
	"strings"
)

var (
	ErrInvalidID         = errors.New("slot id must be positive")
	ErrEmptyLocation     = errors.New("slot location must not be empty")
	ErrInvalidTransition = errors.New("invalid slot state transition")
)

// Slot is a single parking space. Its state is one tagged value, so a slot
// can never be reserved and occupied at the same time.
type Slot struct {
	id       int
	location string
	state    State
}

func NewSlot(id int, location string) (*Slot, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	return &Slot{
		id:       id,
		location: location,
		state:    StateAvailable,
	}, nil
}

func (s Slot) ID() int           { return s.id }
func (s Slot) Location() string  { return s.location }
func (s Slot) State() State      { return s.state }
func (s Slot) Occupied() bool    { return s.state == StateOccupied }
func (s Slot) Reserved() bool    { return s.state == StateReserved }
func (s Slot) IsAvailable() bool { return s.state == StateAvailable }

func (s *Slot) Reserve() error {
	return s.transition(StateAvailable, StateReserved)
}

func (s *Slot) Occupy() error {
	return s.transition(StateReserved, StateOccupied)
}

func (s *Slot) Release() error {
	return s.transition(StateOccupied, StateAvailable)
}

func (s *Slot) CancelReservation() error {
	return s.transition(StateReserved, StateAvailable)
}

func (s *Slot) transition(from, to State) error {
	if s.state != from {
		return ErrInvalidTransition
	}
	s.state = to
	return nil
}
