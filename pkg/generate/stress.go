package generate

// Stress level labels.
const (
	StressHigh     = "High"
	StressLow      = "Low"
	StressModerate = "Moderate"
)

// StressLevel derives the stress label from repaired daily hours. The
// conditions are ordered and first match wins:
//
//  1. sleep < 6 or study > 8        -> High
//  2. sleep >= 6 and study < 6      -> Low
//  3. otherwise                     -> Moderate
//
// The rule is pure and must be evaluated on final (clipped, rescaled,
// rounded) time values, never on raw samples.
func StressLevel(sleepHours, studyHours float64) string {
	switch {
	case sleepHours < 6 || studyHours > 8:
		return StressHigh
	case sleepHours >= 6 && studyHours < 6:
		return StressLow
	default:
		return StressModerate
	}
}
