package builder

import (
	"fmt"

	"smart-parking/internal/domain/slot"
	reqdto "smart-parking/internal/handler/dto/request"
)

type SlotBuilder struct {
	ID       int
	Location string
	State    slot.State
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:       1,
		Location: "A1",
		State:    slot.StateAvailable,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

// Build walks the slot through its lifecycle until it reaches State.
func (b *SlotBuilder) Build() slot.Slot {
	s, err := slot.NewSlot(b.ID, b.Location)
	if err != nil {
		panic(fmt.Sprintf("builder: invalid slot: %v", err))
	}
	switch b.State {
	case slot.StateReserved:
		mustStep(s.Reserve())
	case slot.StateOccupied:
		mustStep(s.Reserve())
		mustStep(s.Occupy())
	}
	return *s
}

func (b *SlotBuilder) BuildAddRequestDTO() reqdto.AddSlotRequest {
	return reqdto.AddSlotRequest{ID: b.ID, Location: b.Location}
}

func mustStep(err error) {
	if err != nil {
		panic(fmt.Sprintf("builder: %v", err))
	}
}
