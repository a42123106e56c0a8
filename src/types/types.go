package types

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (dir MotorDirection) String() string {
	switch dir {
	case MD_Up:
		return "Up"
	case MD_Down:
		return "Down"
	case MD_Stop:
		return "Stop"
	}
	return "Unknown"
}

// Reserved floors marking the maintenance requests. They never name a real floor.
const (
	MaintenanceStartFloor = -1
	MaintenanceEndFloor   = 0
)

// NoArrival is the arrival time of a request that has not been serviced yet.
const NoArrival = -1

// Request is one passenger journey from Src to Dest, submitted at tick Time.
//
// A request passes three stages: waiting at Src, travelling inside the cab
// (PickedUp), and arrived at Dest (Serviced, with ArriveTime set).
type Request struct {
	Time       int
	Src        int
	Dest       int
	PickedUp   bool
	Serviced   bool
	ArriveTime int
}

func NewRequest(time, src, dest int) Request {
	return Request{
		Time:       time,
		Src:        src,
		Dest:       dest,
		ArriveTime: NoArrival,
	}
}

func (req Request) IsGoingUp() bool {
	return req.Dest >= req.Src
}

// RequestedFloor returns the floor the elevator has to visit next for this request:
// the source while the passenger waits, the destination while riding.
// ok is false once the request is serviced.
func (req Request) RequestedFloor() (floor int, ok bool) {
	switch {
	case req.Serviced:
		return 0, false
	case req.PickedUp:
		return req.Dest, true
	default:
		return req.Src, true
	}
}

func (req Request) IsMaintenanceStart() bool {
	return req.Src == MaintenanceStartFloor && req.Dest == MaintenanceStartFloor
}

func (req Request) IsMaintenanceEnd() bool {
	return req.Src == MaintenanceEndFloor && req.Dest == MaintenanceEndFloor
}

func (req Request) IsMaintenance() bool {
	return req.IsMaintenanceStart() || req.IsMaintenanceEnd()
}
