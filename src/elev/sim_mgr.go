package elev

import "elevsim/src/types"

// SimCmd is an operation executed on the simulator by the manager goroutine.
type SimCmd struct {
	Exec func(sim *Simulator)
}

// SimMgr owns the simulator and serializes its access.
type SimMgr struct {
	Cmds chan SimCmd
	done chan struct{}
}

// StartSimMgr starts the goroutine that owns sim. The caller must not touch sim directly afterwards.
func StartSimMgr(sim *Simulator) *SimMgr {
	simMgr := &SimMgr{
		Cmds: make(chan SimCmd),
		done: make(chan struct{}),
	}
	go func() {
		defer close(simMgr.done)
		for cmd := range simMgr.Cmds {
			cmd.Exec(sim)
		}
	}()
	return simMgr
}

// Step advances the simulation by one tick and returns the resulting snapshot.
func (simMgr *SimMgr) Step() types.Snapshot {
	reply := make(chan types.Snapshot)
	simMgr.Cmds <- SimCmd{
		Exec: func(sim *Simulator) {
			sim.Step()
			reply <- sim.Snapshot()
		},
	}
	return <-reply
}

// GetSnapshot returns a deep copy of the current simulation state.
func (simMgr *SimMgr) GetSnapshot() types.Snapshot {
	reply := make(chan types.Snapshot)
	simMgr.Cmds <- SimCmd{
		Exec: func(sim *Simulator) {
			reply <- sim.Snapshot()
		},
	}
	return <-reply
}

// UpdateRequests hands the live ledger to updateFunc inside the manager goroutine.
func (simMgr *SimMgr) UpdateRequests(updateFunc func(requests []types.Request)) {
	wait := make(chan struct{})
	simMgr.Cmds <- SimCmd{
		Exec: func(sim *Simulator) {
			updateFunc(sim.requests)
			close(wait)
		},
	}
	<-wait
}

// Close stops the manager goroutine and waits for it to exit. No command may be sent afterwards.
func (simMgr *SimMgr) Close() {
	close(simMgr.Cmds)
	<-simMgr.done
}
