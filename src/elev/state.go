package elev

import "elevsim/src/types"

// State selects the decision procedure run on each tick. The set is closed.
type State int

const (
	Stopped State = iota
	MovingUp
	MovingDown
)

func (state State) Direction() types.MotorDirection {
	switch state {
	case MovingUp:
		return types.MD_Up
	case MovingDown:
		return types.MD_Down
	default:
		return types.MD_Stop
	}
}

func (state State) String() string {
	switch state {
	case Stopped:
		return "Stopped"
	case MovingUp:
		return "MovingUp"
	case MovingDown:
		return "MovingDown"
	}
	return "Unknown"
}

func stateFor(dir types.MotorDirection) State {
	switch dir {
	case types.MD_Up:
		return MovingUp
	case types.MD_Down:
		return MovingDown
	default:
		return Stopped
	}
}
