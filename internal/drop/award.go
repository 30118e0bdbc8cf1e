package drop

import (
	"fmt"

	"github.com/gachatools/dropchance/internal/tables"
)

// ResolveAward computes the per-item in-pool probability distribution for one
// award record. An award with no content yields an empty map and contributes no
// report rows. For non-empty content the result sums to 1.
func ResolveAward(rec tables.AwardRecord) (map[int]float64, error) {
	if len(rec.GroupContent) == 0 {
		return map[int]float64{}, nil
	}

	keys := make([]int, 0, len(rec.GroupContent))
	for i, entry := range rec.GroupContent {
		if len(entry) == 0 {
			return nil, fmt.Errorf("award %d: empty content entry at index %d", rec.AwardID, i)
		}
		keys = append(keys, int(entry[0]))
	}

	_, weights := SelectWeightSource(rec.GroupWeight, rec.GroupRates, len(rec.GroupContent))
	perItem, _ := AggregateWeights(keys, weights)
	return Normalize(perItem), nil
}
