// Package drop holds the probability core: weight aggregation, normalization,
// and the award/pack resolvers that turn raw table records into probability
// distributions.
package drop

// AggregateWeights sums weight contributions per key. A nil weights slice means
// every key contributes 1.0 (uniform by count). Otherwise keys and weights are
// zipped and the longer side is truncated. If the total comes out non-positive
// while keys exist, every key is reset to weight 1.0 so a valid equal
// distribution survives.
func AggregateWeights(keys []int, weights []float64) (map[int]float64, float64) {
	perKey := make(map[int]float64, len(keys))
	if weights == nil {
		for _, key := range keys {
			perKey[key] += 1.0
		}
	} else {
		n := len(keys)
		if len(weights) < n {
			n = len(weights)
		}
		for i := 0; i < n; i++ {
			perKey[keys[i]] += weights[i]
		}
	}

	total := 0.0
	for _, w := range perKey {
		total += w
	}
	if total <= 0 && len(perKey) > 0 {
		equalizeWeights(perKey)
		total = float64(len(perKey))
	}
	return perKey, total
}

// Normalize divides every weight by the total so the result sums to 1. An empty
// input yields an empty map. A non-positive total falls back to an equal split,
// the same recovery AggregateWeights applies; it exists here as a second guard
// for callers that bypass aggregation.
func Normalize(weights map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(weights))
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		if len(weights) == 0 {
			return out
		}
		equal := 1.0 / float64(len(weights))
		for key := range weights {
			out[key] = equal
		}
		return out
	}
	for key, w := range weights {
		out[key] = w / total
	}
	return out
}

// equalizeWeights resets every key to weight 1.0. Shared by both zero-total
// fallbacks.
func equalizeWeights(weights map[int]float64) {
	for key := range weights {
		weights[key] = 1.0
	}
}
