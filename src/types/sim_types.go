package types

// Snapshot is a point-in-time copy of the simulation that a renderer can poll.
// Requests never alias the live ledger.
type Snapshot struct {
	NumFloors int
	Floor     int
	Dir       MotorDirection
	State     string
	Tick      int
	Requests  []Request
}

// Scenario is a complete simulation input: building size, tick budget and the request ledger.
type Scenario struct {
	Name      string        `yaml:"name"`
	NumFloors int           `yaml:"floors"`
	Ticks     int           `yaml:"ticks"`
	Requests  []RequestSpec `yaml:"requests"`
}

type RequestSpec struct {
	Time int `yaml:"time"`
	Src  int `yaml:"src"`
	Dest int `yaml:"dest"`
}

// Ledger builds a fresh request ledger from the scenario.
func (scenario Scenario) Ledger() []Request {
	ledger := make([]Request, 0, len(scenario.Requests))
	for _, spec := range scenario.Requests {
		ledger = append(ledger, NewRequest(spec.Time, spec.Src, spec.Dest))
	}
	return ledger
}
