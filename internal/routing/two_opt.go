package routing

// Acceptance tolerance for 2-opt moves. A reversal is applied only when it
// shortens the path by more than this, which keeps floating-point near-ties
// from being "improved" back and forth forever.
const twoOptEps = 1e-9

// Reversal budget multiplier used when the caller passes maxAttempts <= 0.
const defaultAttemptFactor = 32

// TwoOpt refines a visiting order by first-improvement 2-opt over an open
// path: origin -> order[0] -> ... -> order[n-1], with no return edge. The
// origin is the fixed implicit predecessor of position 0 and never moves.
//
// Candidate pairs (i, j) are scanned in a fixed order (ascending i, then
// ascending j); each candidate reverses order[i..j]. The length delta is
// computed from the edges touched by the reversal only, so every trial is
// O(1): the edge into position i is replaced, and, unless the reversal
// reaches the end of the path, so is the edge out of position j. Interior
// edges flip direction, which is free under a symmetric distance model.
//
// An accepted reversal restarts the scan from the beginning. A full pass
// with no accepted move is a local optimum and terminates with
// converged=true. maxAttempts caps accepted reversals (<= 0 selects an
// n^2-proportional default); exhausting it is not an error, the best order
// found so far is returned with converged=false.
func TwoOpt(m *Matrix, order []int, maxAttempts int) ([]int, bool) {
	n := len(order)
	out := make([]int, n)
	copy(out, order)

	if n <= 1 {
		return out, true
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultAttemptFactor * n * n
	}

	attempts := 0
	for {
		improved := false

	scan:
		for i := 0; i < n-1; i++ {
			// Matrix index of the node preceding position i.
			prev := 0
			if i > 0 {
				prev = out[i-1] + 1
			}

			for j := i + 1; j < n; j++ {
				b := out[i] + 1
				c := out[j] + 1

				removed := m.At(prev, b)
				added := m.At(prev, c)
				if j < n-1 {
					next := out[j+1] + 1
					removed += m.At(c, next)
					added += m.At(b, next)
				}

				if added-removed >= -twoOptEps {
					continue
				}

				for lo, hi := i, j; lo < hi; lo, hi = lo+1, hi-1 {
					out[lo], out[hi] = out[hi], out[lo]
				}
				improved = true
				attempts++
				if attempts >= maxAttempts {
					return out, false
				}
				break scan
			}
		}

		if !improved {
			return out, true
		}
	}
}
