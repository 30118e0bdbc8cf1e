package drop

import (
	"math"

	"github.com/gachatools/dropchance/internal/tables"
)

// PackResolution is the derived state of one pack: how many rolls it grants per
// referenced award and the probability that it triggers each award.
type PackResolution struct {
	PackID  int
	Rolls   map[int]int
	Trigger map[int]float64
}

// ResolvePack extracts roll counts and trigger probabilities from one pack
// record. Entries referencing the same award accumulate both. With no weight or
// rate data every referenced award triggers with probability exactly 1.0
// (independent triggers, normalization bypassed); otherwise the index-aligned
// weights are accumulated per award and normalized across the pack.
func ResolvePack(rec tables.PackRecord) PackResolution {
	res := PackResolution{
		PackID:  rec.PackID,
		Rolls:   map[int]int{},
		Trigger: map[int]float64{},
	}
	if len(rec.PackContent) == 0 {
		return res
	}

	source, weights := SelectWeightSource(rec.GroupWeight, rec.GroupRates, len(rec.PackContent))

	weightsByAward := map[int]float64{}
	for i, entry := range rec.PackContent {
		if len(entry) == 0 {
			continue
		}
		awardID := int(entry[0])
		res.Rolls[awardID] += packRollCount(entry)
		if source != SourceUniform && i < len(weights) {
			weightsByAward[awardID] += weights[i]
		}
	}

	if source == SourceUniform {
		for awardID := range res.Rolls {
			res.Trigger[awardID] = 1.0
		}
	} else {
		res.Trigger = Normalize(weightsByAward)
	}
	return res
}

// packRollCount reads the roll count from a pack content entry. Two schema
// variants exist: the fixed [awardID, ?, rollCount, ...] layout stores it at
// index 2, the short [awardID, rollCount] layout stores it last. An entry with
// exactly two elements therefore reads its second element either way.
func packRollCount(entry []float64) int {
	if len(entry) >= 3 {
		return int(entry[2])
	}
	return int(entry[len(entry)-1])
}

// FinalProbability combines a pack's trigger probability with the chance of
// drawing the item at least once across rolls attempts at the pool:
// trigger * (1 - (1-inPool)^rolls). The result stays within [0, trigger].
func FinalProbability(trigger, inPool float64, rolls int) float64 {
	return trigger * (1.0 - math.Pow(1.0-inPool, float64(rolls)))
}
