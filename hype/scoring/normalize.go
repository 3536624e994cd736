package scoring

import "strings"

const eventSuffix = "Grand Prix"

// NormalizeEventName collapses an accidentally duplicated trailing
// "Grand Prix" token to a single occurrence, so "Italian Grand Prix" and
// "Italian Grand Prix Grand Prix" resolve to the same event. Idempotent;
// applied at every boundary where an event name enters the system.
func NormalizeEventName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	for strings.HasSuffix(name, eventSuffix+" "+eventSuffix) {
		name = strings.TrimSuffix(name, " "+eventSuffix)
	}
	return name
}
