package drop

// WeightSource tags which per-entry weight list a record supplies.
type WeightSource int

const (
	// SourceUniform means neither weights nor rates are present; entries are
	// weighted by count (awards) or treated as independent certainties (packs).
	SourceUniform WeightSource = iota
	// SourceWeights means the record's explicit GroupWeight list is used.
	SourceWeights
	// SourceRates means the record's GroupRates list is used because
	// GroupWeight is absent.
	SourceRates
)

// SelectWeightSource picks the weight list for a record: explicit weights win
// over rates, rates win over uniform. The chosen list is truncated to limit
// entries (the content length) before pairing. Uniform returns a nil list.
func SelectWeightSource(weights, rates []float64, limit int) (WeightSource, []float64) {
	if len(weights) > 0 {
		return SourceWeights, truncate(weights, limit)
	}
	if len(rates) > 0 {
		return SourceRates, truncate(rates, limit)
	}
	return SourceUniform, nil
}

func truncate(vals []float64, limit int) []float64 {
	if len(vals) > limit {
		return vals[:limit]
	}
	return vals
}
