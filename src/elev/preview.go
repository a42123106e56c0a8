package elev

import (
	"io"
	"log/slog"

	"github.com/tiendc/go-deepcopy"

	"elevsim/src/types"
)

// Preview returns the ledger as it would look after ticks more decisions.
// It runs on a deep copy, so neither the simulator nor the caller's ledger change.
func (sim *Simulator) Preview(ticks int) []types.Request {
	simCopy := &Simulator{
		numFloors: sim.numFloors,
		floor:     sim.floor,
		dir:       sim.dir,
		time:      sim.time,
		requests:  copyRequests(sim.requests),
		state:     sim.state,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	simCopy.Simulate(ticks)
	return simCopy.requests
}

// Snapshot copies the observable state for a renderer.
func (sim *Simulator) Snapshot() types.Snapshot {
	return types.Snapshot{
		NumFloors: sim.numFloors,
		Floor:     sim.floor,
		Dir:       sim.dir,
		State:     sim.state.String(),
		Tick:      sim.time,
		Requests:  copyRequests(sim.requests),
	}
}

func copyRequests(requests []types.Request) []types.Request {
	if requests == nil {
		return nil
	}
	var requestsCopy []types.Request
	if err := deepcopy.Copy(&requestsCopy, requests); err != nil {
		panic(err)
	}
	return requestsCopy
}
