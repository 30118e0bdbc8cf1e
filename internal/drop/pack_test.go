package drop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gachatools/dropchance/internal/drop"
	"github.com/gachatools/dropchance/internal/tables"
)

func TestResolvePack_EmptyContent(t *testing.T) {
	res := drop.ResolvePack(tables.PackRecord{PackID: 5})

	assert.Equal(t, 5, res.PackID)
	assert.Empty(t, res.Rolls)
	assert.Empty(t, res.Trigger)
}

func TestResolvePack_FixedSchemaRollCount(t *testing.T) {
	// [awardID, ?, rollCount, ...]: the count sits at index 2.
	res := drop.ResolvePack(tables.PackRecord{
		PackID:      5,
		PackContent: [][]float64{{1, 99, 3, 42}},
	})

	assert.Equal(t, map[int]int{1: 3}, res.Rolls)
}

func TestResolvePack_ShortSchemaRollCount(t *testing.T) {
	// [awardID, rollCount]: the count is the last element.
	res := drop.ResolvePack(tables.PackRecord{
		PackID:      5,
		PackContent: [][]float64{{1, 2}},
	})

	assert.Equal(t, map[int]int{1: 2}, res.Rolls)
}

func TestResolvePack_RepeatedAwardAccumulates(t *testing.T) {
	res := drop.ResolvePack(tables.PackRecord{
		PackID:      5,
		PackContent: [][]float64{{1, 0, 1}, {1, 0, 2}, {2, 0, 4}},
		GroupWeight: []float64{10, 20, 30},
	})

	assert.Equal(t, map[int]int{1: 3, 2: 4}, res.Rolls)
	assert.InDelta(t, 0.5, res.Trigger[1], 1e-9)
	assert.InDelta(t, 0.5, res.Trigger[2], 1e-9)
}

func TestResolvePack_NoWeightsMeansCertainTriggers(t *testing.T) {
	res := drop.ResolvePack(tables.PackRecord{
		PackID:      5,
		PackContent: [][]float64{{1, 0, 3}, {2, 0, 1}},
	})

	require.Len(t, res.Trigger, 2)
	assert.Equal(t, 1.0, res.Trigger[1])
	assert.Equal(t, 1.0, res.Trigger[2])
}

func TestResolvePack_WeightedTriggersSumToOne(t *testing.T) {
	res := drop.ResolvePack(tables.PackRecord{
		PackID:      5,
		PackContent: [][]float64{{1, 0, 3}, {2, 0, 1}},
		GroupWeight: []float64{70, 30},
	})

	sum := 0.0
	for _, p := range res.Trigger {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, 0.7, res.Trigger[1], 1e-9)
	assert.InDelta(t, 0.3, res.Trigger[2], 1e-9)
}

func TestResolvePack_RatesWhenNoWeights(t *testing.T) {
	res := drop.ResolvePack(tables.PackRecord{
		PackID:      5,
		PackContent: [][]float64{{1, 0, 1}, {2, 0, 1}},
		GroupRates:  []float64{0.25, 0.75},
	})

	assert.InDelta(t, 0.25, res.Trigger[1], 1e-9)
	assert.InDelta(t, 0.75, res.Trigger[2], 1e-9)
}

func TestResolvePack_WeightListShorterThanContent(t *testing.T) {
	// Entries past the weight list still roll but contribute no weight.
	res := drop.ResolvePack(tables.PackRecord{
		PackID:      5,
		PackContent: [][]float64{{1, 0, 1}, {2, 0, 1}},
		GroupWeight: []float64{10},
	})

	assert.Equal(t, map[int]int{1: 1, 2: 1}, res.Rolls)
	assert.InDelta(t, 1.0, res.Trigger[1], 1e-9)
	_, ok := res.Trigger[2]
	assert.False(t, ok)
}

func TestResolvePack_SkipsEmptyEntries(t *testing.T) {
	res := drop.ResolvePack(tables.PackRecord{
		PackID:      5,
		PackContent: [][]float64{{}, {1, 0, 2}},
	})

	assert.Equal(t, map[int]int{1: 2}, res.Rolls)
}

func TestFinalProbability(t *testing.T) {
	// 0.5 * (1 - 0.75^2) = 0.5 * 0.4375
	assert.InDelta(t, 0.21875, drop.FinalProbability(0.5, 0.25, 2), 1e-12)
}

func TestFinalProbability_ZeroRolls(t *testing.T) {
	assert.Equal(t, 0.0, drop.FinalProbability(1.0, 0.5, 0))
}

func TestFinalProbability_StaysWithinTrigger(t *testing.T) {
	p := drop.FinalProbability(0.3, 0.9, 50)

	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 0.3)
}
