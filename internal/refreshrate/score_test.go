package refreshrate

import "testing"

func widePolicy(defaultID ModeID, lo, hi float64) Policy {
	r := FpsRange{Lo: FpsFromHz(lo), Hi: FpsFromHz(hi)}
	return Policy{DefaultModeID: defaultID, PrimaryRange: r, AppRange: r, AllowGroupSwitching: true}
}

func TestScoreKernelAllNoVoteUsesMaxByPolicy(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{mkMode(1, 60, 0), mkMode(2, 90, 0)})
	p := widePolicy(1, 60, 90)
	got := scoreKernel(nil, c, p, 1, 0)
	if got.ID != 2 {
		t.Fatalf("expected highest-Hz mode in primary range with no votes, got %v", got)
	}
}

func TestScoreKernelExplicitDefaultPrefersMatch(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{mkMode(1, 60, 0), mkMode(2, 90, 0)})
	p := widePolicy(1, 60, 90)
	layers := []LayerRequirement{
		{Name: "app", Weight: 1, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(60), Focused: true},
	}
	got := scoreKernel(layers, c, p, 1, 0)
	if got.ID != 1 {
		t.Fatalf("expected 60Hz mode to win, got %v", got)
	}
}

func TestScoreKernelMinPrefersLowestHz(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{mkMode(1, 60, 0), mkMode(2, 90, 0)})
	p := widePolicy(1, 60, 90)
	layers := []LayerRequirement{{Name: "bg", Weight: 1, Vote: Min}}
	got := scoreKernel(layers, c, p, 2, 0)
	if got.ID != 1 {
		t.Fatalf("expected Min vote to pick lowest Hz mode, got %v", got)
	}
}

func TestScoreKernelMaxPrefersHighestHz(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{mkMode(1, 60, 0), mkMode(2, 90, 0)})
	p := widePolicy(1, 60, 90)
	layers := []LayerRequirement{{Name: "video", Weight: 1, Vote: Max}}
	got := scoreKernel(layers, c, p, 1, 0)
	if got.ID != 2 {
		t.Fatalf("expected Max vote to pick highest Hz mode, got %v", got)
	}
}

func TestScoreKernelExplicitExactPrefersCinemaPair(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{mkMode(1, 60, 0), mkMode(2, 24, 0)})
	p := widePolicy(1, 24, 60)
	layers := []LayerRequirement{
		{Name: "film", Weight: 1, Vote: ExplicitExact, DesiredRefreshRate: FpsFromHz(23.976), Focused: true},
	}
	got := scoreKernel(layers, c, p, 1, 0)
	if got.ID != 2 {
		t.Fatalf("expected ExplicitExact to match the 24Hz cinema pair, got %v", got)
	}
}

// --- Group switching, grounded on the same-domain reference test suite ---

func groupCatalog() *Catalog {
	c, _ := NewCatalog([]DisplayMode{
		mkMode(60, 60, 0),
		mkMode(90, 90, 1),
	})
	return c
}

func TestGroupSwitchingNotAllowed(t *testing.T) {
	c := groupCatalog()
	p := widePolicy(60, 60, 90)
	p.AllowGroupSwitching = false
	layers := []LayerRequirement{
		{Name: "app", Weight: 1, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(90), Focused: true, Seamlessness: SeamedAndSeamless},
	}
	got := scoreKernel(layers, c, p, 60, 0)
	if got.ID != 60 {
		t.Fatalf("group switching disallowed: expected to stay at mode 60, got %v", got)
	}
}

func TestGroupSwitchingOneLayerSeamedAndSeamlessForces(t *testing.T) {
	c := groupCatalog()
	p := widePolicy(60, 60, 90)
	layers := []LayerRequirement{
		{Name: "app", Weight: 1, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(90), Focused: true, Seamlessness: SeamedAndSeamless},
	}
	got := scoreKernel(layers, c, p, 60, 0)
	if got.ID != 90 {
		t.Fatalf("expected focused SeamedAndSeamless layer to force the switch to group 1, got %v", got)
	}
}

func TestGroupSwitchingOnlySeamlessNeverForces(t *testing.T) {
	c := groupCatalog()
	p := widePolicy(60, 60, 90)
	layers := []LayerRequirement{
		{Name: "app", Weight: 1, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(90), Focused: true, Seamlessness: OnlySeamless},
	}
	got := scoreKernel(layers, c, p, 60, 0)
	if got.ID != 60 {
		t.Fatalf("OnlySeamless layer should never force a group switch, got %v", got)
	}
}

func TestGroupSwitchingDefaultSeamlessnessReturnsToDefault(t *testing.T) {
	c := groupCatalog()
	p := widePolicy(60, 60, 90)
	layers := []LayerRequirement{
		{Name: "app", Weight: 1, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(60), Focused: true, Seamlessness: Default},
	}
	// current mode is 90 (non-default group); with no SeamedAndSeamless
	// layer present a focused Default-seamlessness layer pulls us back.
	got := scoreKernel(layers, c, p, 90, 0)
	if got.ID != 60 {
		t.Fatalf("expected seamless return to default group, got %v", got)
	}
}

func TestGroupSwitchingFocusedSeamedAndSeamlessHoldsNonDefaultGroup(t *testing.T) {
	c := groupCatalog()
	p := widePolicy(60, 60, 90)
	layers := []LayerRequirement{
		{Name: "ui", Weight: 1.0, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(60), Focused: true, Seamlessness: Default},
		{Name: "game", Weight: 0.1, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(90), Focused: true, Seamlessness: SeamedAndSeamless},
	}
	got := scoreKernel(layers, c, p, 90, 0)
	if got.ID != 90 {
		t.Fatalf("expected focused SeamedAndSeamless layer to hold the non-default group, got %v", got)
	}
}

// --- Cadence-aware scoring, grounded on the same-domain reference test
// suite's single- and mixed-vote Heuristic/ExplicitDefault cases ---

func TestScoreKernelHeuristicPrefersCleanMultipleOverNearerRate(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{mkMode(1, 60, 0), mkMode(2, 90, 0)})
	p := widePolicy(1, 60, 90)
	layers := []LayerRequirement{
		{Name: "video", Weight: 1, Vote: Heuristic, DesiredRefreshRate: FpsFromHz(45)},
	}
	got := scoreKernel(layers, c, p, 1, 0)
	if got.ID != 2 {
		t.Fatalf("45Hz Heuristic over {60,90}: expected the clean 2x multiple (90Hz) to win over the numerically nearer 60Hz, got %v", got)
	}
}

func TestScoreKernelHeuristicPrefersCleanMultipleAcrossThreeModes(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{mkMode(1, 60, 0), mkMode(2, 72, 0), mkMode(3, 90, 0)})
	p := widePolicy(1, 60, 90)
	layers := []LayerRequirement{
		{Name: "video", Weight: 1, Vote: Heuristic, DesiredRefreshRate: FpsFromHz(24)},
	}
	got := scoreKernel(layers, c, p, 1, 0)
	if got.ID != 2 {
		t.Fatalf("24Hz Heuristic over {60,72,90}: expected the clean 3x multiple (72Hz) to win, got %v", got)
	}
}

func TestScoreKernelExplicitDefaultPlusHeuristicPicksHighestCleanMultiple(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{
		mkMode(1, 30, 0), mkMode(2, 60, 0), mkMode(3, 72, 0), mkMode(4, 90, 0), mkMode(5, 120, 0),
	})
	p := widePolicy(2, 30, 120)
	layers := []LayerRequirement{
		{Name: "ui", Weight: 1, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(24), Focused: true},
		{Name: "video", Weight: 1, Vote: Heuristic, DesiredRefreshRate: FpsFromHz(60)},
	}
	got := scoreKernel(layers, c, p, 2, 0)
	if got.ID != 5 {
		t.Fatalf("ExplicitDefault 24Hz + Heuristic 60Hz over {30,60,72,90,120}: expected 120Hz (both layers' cadence agree there), got %v", got)
	}
}

func TestScoreKernelExplicitExactOrMultiplePlusHeuristicCapsAtThreshold(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{
		mkMode(1, 30, 0), mkMode(2, 60, 0), mkMode(3, 72, 0), mkMode(4, 90, 0), mkMode(5, 120, 0),
	})
	p := widePolicy(2, 30, 120)
	layers := []LayerRequirement{
		{Name: "ui", Weight: 1, Vote: ExplicitExactOrMultiple, DesiredRefreshRate: FpsFromHz(24), Focused: true},
		{Name: "video", Weight: 1, Vote: Heuristic, DesiredRefreshRate: FpsFromHz(60)},
	}
	// threshold 120 Hz means the multiple-to-120 relationship (5x) never
	// gets the ExplicitExactOrMultiple bonus beyond k=4, so it falls back
	// to the plain ratio and 60Hz wins instead.
	got := scoreKernel(layers, c, p, 2, 120)
	if got.ID != 2 {
		t.Fatalf("ExplicitExactOrMultiple 24Hz + Heuristic 60Hz, threshold 120: expected 60Hz (multiple to 120 suppressed by threshold), got %v", got)
	}
}

// --- Range escape, grounded on the same-domain reference test suite's
// primaryVsAppRequestPolicy case ---

func TestScoreKernelFocusedExplicitDefaultEscapesPrimaryRange(t *testing.T) {
	c, _ := NewCatalog([]DisplayMode{mkMode(1, 60, 0), mkMode(2, 90, 0)})
	p := Policy{
		DefaultModeID:       2,
		PrimaryRange:        FpsRange{Lo: FpsFromHz(90), Hi: FpsFromHz(90)},
		AppRange:            FpsRange{Lo: FpsFromHz(60), Hi: FpsFromHz(90)},
		AllowGroupSwitching: true,
	}
	layers := []LayerRequirement{
		{Name: "app", Weight: 1, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(60), Focused: false},
	}
	got := scoreKernel(layers, c, p, 2, 0)
	if got.ID != 2 {
		t.Fatalf("unfocused layer must not escape primary_range, expected 90Hz, got %v", got)
	}

	layers[0].Focused = true
	got = scoreKernel(layers, c, p, 2, 0)
	if got.ID != 1 {
		t.Fatalf("focused ExplicitDefault whose desired rate lands in app_range\\primary_range must escape, expected 60Hz, got %v", got)
	}
}

func TestGroupSwitchingUnfocusedSeamedAndSeamlessDoesNotBlockReturn(t *testing.T) {
	c := groupCatalog()
	p := widePolicy(60, 60, 90)
	layers := []LayerRequirement{
		{Name: "ui", Weight: 1.0, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(60), Focused: true, Seamlessness: Default},
		{Name: "bg", Weight: 0.7, Vote: ExplicitDefault, DesiredRefreshRate: FpsFromHz(90), Focused: false, Seamlessness: SeamedAndSeamless},
	}
	got := scoreKernel(layers, c, p, 90, 0)
	if got.ID != 60 {
		t.Fatalf("an unfocused SeamedAndSeamless layer should not block a seamless return, got %v", got)
	}
}
