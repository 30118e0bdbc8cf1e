package drop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gachatools/dropchance/internal/drop"
	"github.com/gachatools/dropchance/internal/tables"
)

func TestResolveAward_EmptyContent(t *testing.T) {
	probs, err := drop.ResolveAward(tables.AwardRecord{AwardID: 1})

	require.NoError(t, err)
	assert.Empty(t, probs)
}

func TestResolveAward_UniformWithoutWeights(t *testing.T) {
	probs, err := drop.ResolveAward(tables.AwardRecord{
		AwardID:      1,
		GroupContent: [][]float64{{10}, {20}},
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.5, probs[10], 1e-9)
	assert.InDelta(t, 0.5, probs[20], 1e-9)
}

func TestResolveAward_WeightsBeatRates(t *testing.T) {
	probs, err := drop.ResolveAward(tables.AwardRecord{
		AwardID:      1,
		GroupContent: [][]float64{{10}, {20}},
		GroupWeight:  []float64{3, 1},
		GroupRates:   []float64{1, 99},
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.75, probs[10], 1e-9)
	assert.InDelta(t, 0.25, probs[20], 1e-9)
}

func TestResolveAward_RatesWhenNoWeights(t *testing.T) {
	probs, err := drop.ResolveAward(tables.AwardRecord{
		AwardID:      1,
		GroupContent: [][]float64{{10}, {20}},
		GroupRates:   []float64{0.2, 0.8},
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.2, probs[10], 1e-9)
	assert.InDelta(t, 0.8, probs[20], 1e-9)
}

func TestResolveAward_DuplicateItemsAccumulate(t *testing.T) {
	probs, err := drop.ResolveAward(tables.AwardRecord{
		AwardID:      1,
		GroupContent: [][]float64{{10}, {10}, {20}},
		GroupWeight:  []float64{1, 1, 2},
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.5, probs[10], 1e-9)
	assert.InDelta(t, 0.5, probs[20], 1e-9)
}

func TestResolveAward_ZeroWeightsRecover(t *testing.T) {
	probs, err := drop.ResolveAward(tables.AwardRecord{
		AwardID:      1,
		GroupContent: [][]float64{{10}, {20}, {30}, {40}},
		GroupWeight:  []float64{0, 0, 0, 0},
	})

	require.NoError(t, err)
	sum := 0.0
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, 0.25, probs[10], 1e-9)
}

func TestResolveAward_EmptyEntryIsFatal(t *testing.T) {
	_, err := drop.ResolveAward(tables.AwardRecord{
		AwardID:      7,
		GroupContent: [][]float64{{10}, {}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "award 7")
}
