package elev

import (
	"errors"
	"fmt"
	"log/slog"

	"elevsim/src/types"
)

var (
	ErrInvalidFloorCount = errors.New("floor count must be at least 1")
	ErrFloorOutOfRange   = errors.New("floor out of range")
	ErrSameFloor         = errors.New("source and destination are the same floor")
	ErrNegativeTime      = errors.New("request time is negative")
)

// Simulator drives a single elevator over a caller-owned request ledger, one tick per decision.
//
// The ledger is borrowed, not copied: request flags and arrival times are written back into
// the slice passed to New. A Simulator is not safe for concurrent use; see SimMgr.
type Simulator struct {
	numFloors int
	floor     int
	dir       types.MotorDirection
	time      int
	requests  []types.Request
	state     State
	log       *slog.Logger
}

// New validates the ledger and returns a stopped elevator at floor 1, tick 0.
// Maintenance requests are accepted and ignored by the decision logic.
func New(numFloors int, requests []types.Request) (*Simulator, error) {
	if numFloors < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFloorCount, numFloors)
	}
	for i, req := range requests {
		if err := validateRequest(req, numFloors); err != nil {
			return nil, fmt.Errorf("request %d (%s): %w", i, FormatRequest(req), err)
		}
	}
	return &Simulator{
		numFloors: numFloors,
		floor:     1,
		dir:       types.MD_Stop,
		requests:  requests,
		state:     Stopped,
		log:       slog.Default(),
	}, nil
}

func validateRequest(req types.Request, numFloors int) error {
	if req.Time < 0 {
		return ErrNegativeTime
	}
	if req.IsMaintenance() {
		return nil
	}
	if req.Src < 1 || req.Src > numFloors || req.Dest < 1 || req.Dest > numFloors {
		return fmt.Errorf("%w: floors are 1..%d", ErrFloorOutOfRange, numFloors)
	}
	if req.Src == req.Dest {
		return ErrSameFloor
	}
	return nil
}

// Simulate runs ticks decisions, continuing from the current tick.
func (sim *Simulator) Simulate(ticks int) {
	for i := 0; i < ticks; i++ {
		sim.Step()
	}
}

// Step runs a single decision. It panics if the elevator leaves the building,
// which only happens when the floor was set out of range from outside.
func (sim *Simulator) Step() {
	sim.nextDecision()
	if sim.floor < 1 || sim.floor > sim.numFloors {
		panic(fmt.Sprintf("elevator at floor %d outside 1..%d at tick %d", sim.floor, sim.numFloors, sim.time))
	}
}

func (sim *Simulator) NumFloors() int {
	return sim.numFloors
}

func (sim *Simulator) CurrFloor() int {
	return sim.floor
}

func (sim *Simulator) SetCurrFloor(floor int) {
	sim.floor = floor
}

func (sim *Simulator) CurrDir() types.MotorDirection {
	return sim.dir
}

func (sim *Simulator) SetCurrDir(dir types.MotorDirection) {
	sim.dir = dir
}

func (sim *Simulator) Time() int {
	return sim.time
}

func (sim *Simulator) SetTime(tick int) {
	sim.time = tick
}

// Requests returns the borrowed ledger itself.
func (sim *Simulator) Requests() []types.Request {
	return sim.requests
}

func (sim *Simulator) CurrState() State {
	return sim.state
}

// ChangeState replaces the active state. The direction is left to the caller.
func (sim *Simulator) ChangeState(state State) {
	sim.state = state
}

// SetLogger replaces the logger used for transition and arrival logs.
func (sim *Simulator) SetLogger(logger *slog.Logger) {
	sim.log = logger
}
