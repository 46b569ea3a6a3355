package streak

import "math/rand"

// GenerateSequence draws `length` binary outcomes from the supplied
// stream, each 1 with probability `rate`. The stream handle is owned by
// the caller; this function never reseeds it.
func GenerateSequence(rng *rand.Rand, length int, rate float64) []int {
	seq := make([]int, length)
	for i := range seq {
		if rng.Float64() < rate {
			seq[i] = 1
		}
	}
	return seq
}

// ScanStreaks walks one binary sequence looking for non-overlapping
// 2-success streaks and counts how many are followed by a third success.
//
// After a streak the cursor advances by 2, so the streak's second success
// is never reused as the start of the next streak. The loop stops once
// fewer than two positions remain before the end: a streak starting at
// len-2 has no third element and is never counted. That truncation is a
// deliberate characteristic of the algorithm, kept exactly as-is.
func ScanStreaks(seq []int) (streaks, thirds int) {
	i := 0
	for i < len(seq)-2 {
		if seq[i] == 1 && seq[i+1] == 1 {
			if seq[i+2] == 1 {
				thirds++
			}
			streaks++
			i += 2
		} else {
			i++
		}
	}
	return streaks, thirds
}
