package slot

type State string

const (
	StateAvailable State = "available"
	StateReserved  State = "reserved"
	StateOccupied  State = "occupied"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateAvailable, StateReserved, StateOccupied:
		return true
	default:
		return false
	}
}
