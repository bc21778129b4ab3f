package refreshrate

import "testing"

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	c, err := NewCatalog([]DisplayMode{mkMode(1, 60, 0), mkMode(2, 90, 0)})
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	s, err := New(c, widePolicy(1, 60, 90), 1, FeatureFlags{EnableFrameRateOverride: true}, nil)
	if err != nil {
		t.Fatalf("unexpected selector error: %v", err)
	}
	return s
}

func TestSelectorRejectsUnknownCurrentMode(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{mkMode(1, 60, 0)})
	if _, err := New(c, widePolicy(1, 60, 60), 99, FeatureFlags{}, nil); err == nil {
		t.Fatal("expected error constructing with unknown current mode id")
	}
}

func TestSelectorRejectsInvalidInitialPolicy(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{mkMode(1, 60, 0)})
	bad := Policy{DefaultModeID: 1, PrimaryRange: FpsRange{Lo: FpsFromHz(60), Hi: FpsFromHz(90)}, AppRange: FpsRange{Lo: FpsFromHz(60), Hi: FpsFromHz(60)}}
	if _, err := New(c, bad, 1, FeatureFlags{}, nil); err == nil {
		t.Fatal("expected error constructing with an invalid policy")
	}
}

func TestSelectorGetBestRefreshRate(t *testing.T) {
	s := newTestSelector(t)
	layers := []LayerRequirement{
		{Name: "app", Weight: 1, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(90), Focused: true},
	}
	got, _ := s.GetBestRefreshRate(layers, GlobalSignals{})
	if got.ID != 2 {
		t.Fatalf("expected 90Hz mode, got %v", got)
	}
}

func TestSelectorSetPolicyInvalidatesCache(t *testing.T) {
	s := newTestSelector(t)
	layers := []LayerRequirement{
		{Name: "app", Weight: 1, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(90), Focused: true},
	}
	if got, _ := s.GetBestRefreshRate(layers, GlobalSignals{}); got.ID != 2 {
		t.Fatalf("expected 90Hz mode before policy change, got %v", got)
	}

	if err := s.SetPolicy(widePolicy(1, 60, 60)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := s.GetBestRefreshRate(layers, GlobalSignals{})
	if got.ID != 1 {
		t.Fatalf("expected policy change to invalidate the cache and pick 60Hz, got %v", got)
	}
}

func TestSelectorSetCurrentModeIdRejectsUnknown(t *testing.T) {
	s := newTestSelector(t)
	if err := s.SetCurrentModeId(999); err == nil {
		t.Fatal("expected error for unknown mode id")
	}
}

func TestSelectorGetFrameRateOverridesDisabled(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{mkMode(1, 60, 0), mkMode(2, 90, 0)})
	s, _ := New(c, widePolicy(1, 60, 90), 2, FeatureFlags{EnableFrameRateOverride: false}, nil)
	if _, err := s.GetFrameRateOverrides(nil, GlobalSignals{}); err == nil {
		t.Fatal("expected ErrUnsupported when override planner is disabled")
	}
}

func TestSelectorGetFrameRateOverridesEnabled(t *testing.T) {
	s := newTestSelector(t)
	layers := []LayerRequirement{
		{Name: "app", OwnerUID: 7, Weight: 1, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(30), Focused: true},
	}
	overrides, err := s.GetFrameRateOverrides(layers, GlobalSignals{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := overrides[7]; !ok {
		t.Fatalf("expected an override for owner 7, got %v", overrides)
	}
}

func TestSelectorGetIdleTimerAction(t *testing.T) {
	s := newTestSelector(t)
	if got := s.GetIdleTimerAction(); got != TurnOn {
		t.Fatalf("expected TurnOn, got %v", got)
	}
}

func TestSelectorGetCurrentRefreshRate(t *testing.T) {
	s := newTestSelector(t)
	got := s.GetCurrentRefreshRate()
	if got.ID != 1 {
		t.Fatalf("expected current mode 1, got %v", got)
	}
}
