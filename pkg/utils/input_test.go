package utils

import (
	"math"
	"testing"
)

func TestDragManagerInitialState(t *testing.T) {
	dm := NewDragManager()

	if dm.GetState() != DragStateNone {
		t.Errorf("Expected initial state to be DragStateNone, got %v", dm.GetState())
	}
	if dm.IsDragging() {
		t.Error("Expected IsDragging to be false initially")
	}
	if dm.DeltaY() != 0 {
		t.Errorf("Expected DeltaY 0 initially, got %d", dm.DeltaY())
	}
	if dm.GetInfo().TouchID != -1 {
		t.Errorf("Expected TouchID -1 initially, got %d", dm.GetInfo().TouchID)
	}
}

func TestDragManagerLifecycle(t *testing.T) {
	dm := NewDragManager()

	dm.Apply(PointerSample{Down: true, X: 10, Y: 100, Touch: true, TouchID: 3})
	if dm.GetState() != DragStateStarted {
		t.Fatalf("state after press = %v, want DragStateStarted", dm.GetState())
	}
	if dm.DeltaY() != 0 {
		t.Errorf("DeltaY on press = %d, want 0", dm.DeltaY())
	}

	dm.Apply(PointerSample{Down: true, X: 10, Y: 80, Touch: true, TouchID: 3})
	if !dm.IsDragging() {
		t.Fatalf("state after move = %v, want DragStateDragging", dm.GetState())
	}
	if dm.DeltaY() != -20 {
		t.Errorf("DeltaY = %d, want -20", dm.DeltaY())
	}

	dm.Apply(PointerSample{Down: true, X: 12, Y: 50, Touch: true, TouchID: 3})
	if dm.DeltaY() != -30 {
		t.Errorf("DeltaY = %d, want -30", dm.DeltaY())
	}
	if dx, dy := dm.GetDragDistance(); dx != 2 || dy != -50 {
		t.Errorf("GetDragDistance = (%d, %d), want (2, -50)", dx, dy)
	}

	dm.Apply(PointerSample{Touch: true, TouchID: 3})
	if dm.GetState() != DragStateEnded {
		t.Fatalf("state after release = %v, want DragStateEnded", dm.GetState())
	}
	if dm.DeltaY() != 0 {
		t.Errorf("DeltaY after release = %d, want 0", dm.DeltaY())
	}

	dm.Apply(PointerSample{TouchID: -1})
	if dm.GetState() != DragStateNone {
		t.Errorf("state after ended frame = %v, want DragStateNone", dm.GetState())
	}
}

func TestDragManagerEndedThenPressed(t *testing.T) {
	dm := NewDragManager()
	dm.Apply(PointerSample{Down: true, Y: 5, TouchID: -1})
	dm.Apply(PointerSample{TouchID: -1})
	dm.Apply(PointerSample{Down: true, Y: 40, TouchID: -1})
	if dm.GetState() != DragStateStarted {
		t.Errorf("state = %v, want a new drag to start right after the ended frame", dm.GetState())
	}
	if dm.GetInfo().StartY != 40 {
		t.Errorf("StartY = %d, want 40", dm.GetInfo().StartY)
	}
}

func TestKeyScrollDelta(t *testing.T) {
	tests := []struct {
		name string
		keys ScrollKeys
		want float64
	}{
		{"none", ScrollKeys{}, 0},
		{"down", ScrollKeys{Down: true}, 48},
		{"up", ScrollKeys{Up: true}, -48},
		{"both cancel", ScrollKeys{Up: true, Down: true}, 0},
		{"page down", ScrollKeys{PageDown: true}, 600},
		{"page up plus down", ScrollKeys{PageUp: true, Down: true}, -552},
		{"home", ScrollKeys{Home: true, Down: true}, math.Inf(-1)},
		{"end", ScrollKeys{End: true}, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyScrollDelta(tt.keys, 48, 600); got != tt.want {
				t.Errorf("KeyScrollDelta(%+v) = %v, want %v", tt.keys, got, tt.want)
			}
		})
	}
}

func TestWheelScrollDelta(t *testing.T) {
	if got := WheelScrollDelta(1, 48); got != -48 {
		t.Errorf("WheelScrollDelta(1) = %v, want -48", got)
	}
	if got := WheelScrollDelta(-0.5, 48); got != 24 {
		t.Errorf("WheelScrollDelta(-0.5) = %v, want 24", got)
	}
}
