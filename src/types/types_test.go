package types

import "testing"

func TestNewRequest(t *testing.T) {
	req := NewRequest(4, 2, 6)
	if req.Time != 4 || req.Src != 2 || req.Dest != 6 {
		t.Errorf("Unexpected request %+v", req)
	}
	if req.PickedUp || req.Serviced || req.ArriveTime != NoArrival {
		t.Errorf("Expected a fresh request, got %+v", req)
	}
}

func TestRequest_RequestedFloor(t *testing.T) {
	req := NewRequest(0, 3, 1)

	if floor, ok := req.RequestedFloor(); !ok || floor != 3 {
		t.Errorf("Waiting: expected (3, true), got (%d, %v)", floor, ok)
	}
	req.PickedUp = true
	if floor, ok := req.RequestedFloor(); !ok || floor != 1 {
		t.Errorf("Riding: expected (1, true), got (%d, %v)", floor, ok)
	}
	req.Serviced = true
	if _, ok := req.RequestedFloor(); ok {
		t.Errorf("Serviced: expected no requested floor")
	}
}

func TestRequest_IsGoingUp(t *testing.T) {
	tests := []struct {
		src, dest int
		expected  bool
	}{
		{1, 5, true},
		{5, 1, false},
		{3, 3, true},
	}
	for _, tt := range tests {
		if got := NewRequest(0, tt.src, tt.dest).IsGoingUp(); got != tt.expected {
			t.Errorf("%d->%d: expected %v, got %v", tt.src, tt.dest, tt.expected, got)
		}
	}
}

func TestRequest_Maintenance(t *testing.T) {
	start := NewRequest(3, MaintenanceStartFloor, MaintenanceStartFloor)
	end := NewRequest(8, MaintenanceEndFloor, MaintenanceEndFloor)
	normal := NewRequest(0, 1, 2)
	mixed := NewRequest(0, MaintenanceStartFloor, MaintenanceEndFloor)

	if !start.IsMaintenanceStart() || start.IsMaintenanceEnd() || !start.IsMaintenance() {
		t.Errorf("Expected maintenance start, got %+v", start)
	}
	if !end.IsMaintenanceEnd() || end.IsMaintenanceStart() || !end.IsMaintenance() {
		t.Errorf("Expected maintenance end, got %+v", end)
	}
	if normal.IsMaintenance() || mixed.IsMaintenance() {
		t.Errorf("Expected ordinary requests not to be maintenance")
	}
}

func TestMotorDirection_String(t *testing.T) {
	if MD_Up.String() != "Up" || MD_Down.String() != "Down" || MD_Stop.String() != "Stop" {
		t.Errorf("Unexpected direction names %s %s %s", MD_Up, MD_Down, MD_Stop)
	}
}

func TestScenario_Ledger(t *testing.T) {
	scenario := Scenario{
		NumFloors: 5,
		Requests:  []RequestSpec{{Time: 1, Src: 2, Dest: 4}, {Time: 3, Src: 5, Dest: 1}},
	}
	first := scenario.Ledger()
	second := scenario.Ledger()
	first[0].PickedUp = true

	if second[0].PickedUp {
		t.Errorf("Expected each ledger to be independent")
	}
	if first[1] != NewRequest(3, 5, 1) {
		t.Errorf("Expected %+v, got %+v", NewRequest(3, 5, 1), first[1])
	}
}
