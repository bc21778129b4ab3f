package refreshrate

// IdleTimerAction is the advice the core hands back to the host about
// whether running an idle timer would ever matter (§4.I). The core never
// starts or owns a timer itself — it only has an opinion.
type IdleTimerAction int

const (
	// TurnOff means idling has no degree of freedom to exploit: the
	// primary range is pinned to a single rate, or admits only one
	// distinct catalog rate.
	TurnOff IdleTimerAction = iota
	// TurnOn means the primary range spans at least two distinct Hz
	// values, so an idle timer could usefully demote the panel rate.
	TurnOn
)

func (a IdleTimerAction) String() string {
	if a == TurnOn {
		return "TurnOn"
	}
	return "TurnOff"
}

// idleTimerAdvice implements §4.I: TurnOn iff the policy's primary range
// admits at least two distinct Hz values among catalog modes.
func idleTimerAdvice(catalog *Catalog, policy Policy) IdleTimerAction {
	if policy.PrimaryRange.IsSingleRate() {
		return TurnOff
	}

	seen := make(map[int]bool)
	for _, m := range catalog.Modes() {
		if policy.PrimaryRange.Contains(m.RefreshRate) {
			seen[m.RefreshRate.IntHz()] = true
			if len(seen) >= 2 {
				return TurnOn
			}
		}
	}
	return TurnOff
}
