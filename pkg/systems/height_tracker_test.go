package systems

import "testing"

func TestHeightTracker_FloorScore(t *testing.T) {
	tracker := NewHeightTracker(5)
	tracker.Start(5.2)
	tracker.Update(12.9)
	tracker.Update(11)

	if got := tracker.Stop(); got != 7 {
		t.Errorf("Stop() = %d, want floor(12.9-5) = 7", got)
	}
	if tracker.IsTracking() {
		t.Errorf("tracker should stop tracking after Stop()")
	}
}

func TestHeightTracker_Update(t *testing.T) {
	tracker := NewHeightTracker(5)
	tracker.Start(6)

	tests := []struct {
		altitude   float32
		wantPeak   int
		wantRaised bool
	}{
		{6.5, 1, true},
		{6.2, 1, false},
		{8.7, 3, true},
		{8.7, 3, false},
		{5.1, 3, false},
	}
	for _, tt := range tests {
		peak, raised := tracker.Update(tt.altitude)
		if peak != tt.wantPeak || raised != tt.wantRaised {
			t.Errorf("Update(%v) = (%d, %v), want (%d, %v)", tt.altitude, peak, raised, tt.wantPeak, tt.wantRaised)
		}
	}

	if got := tracker.State().MaxHeightReached; got != 8.7 {
		t.Errorf("MaxHeightReached = %v, want 8.7", got)
	}
}

func TestHeightTracker_NeverNegative(t *testing.T) {
	tracker := NewHeightTracker(5)
	tracker.Start(4.5)

	if got := tracker.Stop(); got != 0 {
		t.Errorf("peak below threshold scored %d, want 0", got)
	}
}

func TestHeightTracker_IdleIgnoresUpdates(t *testing.T) {
	tracker := NewHeightTracker(5)

	if peak, raised := tracker.Update(100); peak != 0 || raised {
		t.Errorf("idle Update() = (%d, %v), want (0, false)", peak, raised)
	}
	if got := tracker.Stop(); got != 0 {
		t.Errorf("idle Stop() = %d, want 0", got)
	}
}
