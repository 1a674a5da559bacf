package journal

import "math"

const dayMillis = 24 * 60 * 60 * 1000

// NextStreak evaluates the streak-update policy for a new check-in. It is a
// pure function of the current streak, the last streak-affecting check-in
// (unix milliseconds, 0 = never) and now (unix milliseconds).
//
// diffDays is the ceiling of the elapsed time in days. Same-day repeat
// check-ins land in the diffDays==1 branch and extend the streak; a gap of
// more than two days resets it. When diffDays is exactly 2 and the streak is
// nonzero, the streak is left unchanged. That gap in the branch coverage is
// intentional and must not be "fixed"; callers and tests depend on it.
func NextStreak(current int, lastCheckIn, now int64) int {
	diff := now - lastCheckIn
	if diff < 0 {
		diff = -diff
	}
	diffDays := int(math.Ceil(float64(diff) / float64(dayMillis)))

	switch {
	case diffDays > 0 && diffDays <= 1:
		return current + 1
	case diffDays > 2:
		return 1
	case current == 0:
		return 1
	default:
		return current
	}
}
