// Per-tick decision procedures of the three elevator states.
package elev

import "elevsim/src/types"

// nextDecision runs the active state's decision for the current tick and advances time by one.
func (sim *Simulator) nextDecision() {
	switch sim.state {
	case Stopped:
		sim.decideStopped()
	case MovingUp:
		sim.decideMoving(types.MD_Up)
	case MovingDown:
		sim.decideMoving(types.MD_Down)
	}
	sim.time++
}

// decideStopped starts moving towards the closest requested floor.
// A target at or below the current floor sends the elevator down.
func (sim *Simulator) decideStopped() {
	active := activeRequests(sim.requests, sim.time)
	if len(active) == 0 {
		return
	}
	active, _ = sim.serveCurrentFloor(active)

	target, ok := closestRequestFloor(active, sim.floor, sim.numFloors)
	if !ok {
		return
	}
	if target > sim.floor {
		sim.transition(MovingUp)
	} else {
		sim.transition(MovingDown)
	}
	sim.floor += int(sim.dir)
}

// decideMoving serves the current floor and keeps going in dir while requests remain ahead,
// turning around otherwise. Serving a floor costs one tick with the direction set to stop;
// the floor is not served again on the tick the elevator leaves it.
func (sim *Simulator) decideMoving(dir types.MotorDirection) {
	active := activeRequests(sim.requests, sim.time)
	if len(active) == 0 {
		sim.transition(Stopped)
		return
	}

	if sim.dir != types.MD_Stop {
		var served bool
		active, served = sim.serveCurrentFloor(active)
		if served {
			sim.dir = types.MD_Stop
			sim.log.Debug("Dwelling at floor", "tick", sim.time, "floor", sim.floor)
			return
		}
	}

	if requestsAhead(active, sim.floor, dir) {
		sim.dir = dir
	} else {
		sim.transition(stateFor(-dir))
	}
	sim.floor += int(sim.dir)
}

// transition replaces the active state and aligns the direction with it.
func (sim *Simulator) transition(state State) {
	if state != sim.state {
		sim.log.Debug("State change", "tick", sim.time, "floor", sim.floor, "from", sim.state, "to", state)
	}
	sim.state = state
	sim.dir = state.Direction()
}
