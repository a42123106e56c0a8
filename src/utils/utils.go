package utils

import (
	"fmt"
	"io"
	"text/tabwriter"

	"elevsim/src/config"
	"elevsim/src/types"
)

// ForEachRequest is a helper function that skips maintenance requests
func ForEachRequest(requests []types.Request, action func(index int, req types.Request)) {
	for i, req := range requests {
		if req.IsMaintenance() {
			continue
		}
		action(i, req)
	}
}

// CountRequests splits the requests submitted by tick into waiting, riding and serviced.
func CountRequests(requests []types.Request, tick int) (waiting, riding, serviced int) {
	ForEachRequest(requests, func(_ int, req types.Request) {
		switch {
		case req.Time > tick:
		case req.Serviced:
			serviced++
		case req.PickedUp:
			riding++
		default:
			waiting++
		}
	})
	return waiting, riding, serviced
}

// FormatStatus renders one status line, padded to a fixed width so it can be redrawn in place.
func FormatStatus(snapshot types.Snapshot) string {
	waiting, riding, serviced := CountRequests(snapshot.Requests, snapshot.Tick)
	status := fmt.Sprintf("Tick: %d | Floor: %d/%d | Dir: %s | Waiting: %d | Riding: %d | Done: %d",
		snapshot.Tick, snapshot.Floor, snapshot.NumFloors, snapshot.Dir, waiting, riding, serviced)
	return fmt.Sprintf("%-*s", config.StatusWidth, status)
}

// PrintStatus is called on every live tick
func PrintStatus(w io.Writer, snapshot types.Snapshot) {
	fmt.Fprintf(w, "\r%s", FormatStatus(snapshot))
}

// PrintReport writes one row per request with its arrival time, or "-" if it never arrived.
func PrintReport(w io.Writer, requests []types.Request) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTIME\tSRC\tDEST\tARRIVED\tTRAVEL")
	ForEachRequest(requests, func(i int, req types.Request) {
		arrived, travel := "-", "-"
		if req.Serviced {
			arrived = fmt.Sprint(req.ArriveTime)
			travel = fmt.Sprint(req.ArriveTime - req.Time)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%s\n", i, req.Time, req.Src, req.Dest, arrived, travel)
	})
	return tw.Flush()
}
