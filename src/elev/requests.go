package elev

import "elevsim/src/types"

// activeRequests returns the requests submitted at or before tick that are not serviced yet,
// in ledger order. The pointers alias the ledger.
func activeRequests(ledger []types.Request, tick int) []*types.Request {
	var active []*types.Request
	for i := range ledger {
		req := &ledger[i]
		if req.IsMaintenance() {
			continue
		}
		if req.Time <= tick && !req.Serviced {
			active = append(active, req)
		}
	}
	return active
}

// serveCurrentFloor boards waiting passengers and unloads riding passengers at the current floor.
// Serviced requests are dropped from the returned slice, boarded ones stay.
func (sim *Simulator) serveCurrentFloor(active []*types.Request) ([]*types.Request, bool) {
	served := false
	kept := active[:0]
	for _, req := range active {
		switch {
		case req.Src == sim.floor && !req.PickedUp:
			req.PickedUp = true
			served = true
			sim.log.Debug("Passenger boarded", "tick", sim.time, "floor", sim.floor, "request", FormatRequest(*req))
		case req.Dest == sim.floor && req.PickedUp:
			req.Serviced = true
			req.ArriveTime = sim.time
			served = true
			sim.log.Info("Request serviced", "tick", sim.time, "floor", sim.floor, "request", FormatRequest(*req))
			continue
		}
		kept = append(kept, req)
	}
	return kept, served
}

// closestRequestFloor returns the requested floor nearest to floor. Ties go to the
// earliest request in ledger order. ok is false when nothing is requested.
func closestRequestFloor(active []*types.Request, floor int, numFloors int) (closest int, ok bool) {
	minDist := floor + numFloors
	for _, req := range active {
		target, requested := req.RequestedFloor()
		if !requested {
			continue
		}
		if dist := abs(target - floor); dist < minDist {
			minDist = dist
			closest = target
			ok = true
		}
	}
	return closest, ok
}

// requestsAhead reports whether any active request still needs the elevator beyond floor in dir.
func requestsAhead(active []*types.Request, floor int, dir types.MotorDirection) bool {
	for _, req := range active {
		target, requested := req.RequestedFloor()
		if !requested {
			continue
		}
		switch dir {
		case types.MD_Up:
			if target > floor {
				return true
			}
		case types.MD_Down:
			if target < floor {
				return true
			}
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
