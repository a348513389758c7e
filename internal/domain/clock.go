package domain

import "github.com/jonboulle/clockwork"

// clock stamps ImpactReport.ProcessedAt. Analyses themselves never read it.
var clock = clockwork.NewRealClock()

// SetClock swaps the report time source. Pass nil to restore the real clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
