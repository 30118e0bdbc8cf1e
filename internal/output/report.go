// Package output assembles report rows and writes the per-award and index
// report files.
package output

import (
	"github.com/gachatools/dropchance/internal/drop"
	"github.com/gachatools/dropchance/internal/tables"
)

// Header is the column layout shared by every report file.
var Header = []string{
	"AwardID",
	"PackID",
	"ItemID",
	"ItemName",
	"Rolls",
	"InPoolProbability",
	"PackTriggerProbability",
	"FinalPerRunProbability",
}

// Row is one report line: an (award, pack, item) triple with its probabilities.
type Row struct {
	AwardID int
	PackID  int
	ItemID  int
	Name    string
	Rolls   int
	InPool  float64
	Trigger float64
	Final   float64
}

// BuildRows produces the full row set from resolved awards and packs. A pack's
// reference to an award that resolved empty is skipped outright; no data, no
// row. Row order is not significant here, the exporters sort explicitly.
func BuildRows(awardProbs map[int]map[int]float64, packs []drop.PackResolution, names map[int]string) []Row {
	var rows []Row
	for _, pack := range packs {
		for awardID, rolls := range pack.Rolls {
			items := awardProbs[awardID]
			if len(items) == 0 {
				continue
			}
			trigger, ok := pack.Trigger[awardID]
			if !ok {
				trigger = 1.0
			}
			for itemID, inPool := range items {
				rows = append(rows, Row{
					AwardID: awardID,
					PackID:  pack.PackID,
					ItemID:  itemID,
					Name:    tables.ItemName(names, itemID),
					Rolls:   rolls,
					InPool:  inPool,
					Trigger: trigger,
					Final:   drop.FinalProbability(trigger, inPool, rolls),
				})
			}
		}
	}
	return rows
}
