package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// IndexFile is the consolidated CSV written next to the per-award files.
const IndexFile = "index.csv"

func (r Row) record() []string {
	return []string{
		strconv.Itoa(r.AwardID),
		strconv.Itoa(r.PackID),
		strconv.Itoa(r.ItemID),
		r.Name,
		strconv.Itoa(r.Rolls),
		strconv.FormatFloat(r.InPool, 'f', 6, 64),
		strconv.FormatFloat(r.Trigger, 'f', 6, 64),
		strconv.FormatFloat(r.Final, 'f', 6, 64),
	}
}

func awardFileName(awardID int) string {
	return fmt.Sprintf("award_%d.csv", awardID)
}

func writeCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row.record()); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ExportCSV writes one award_<id>.csv per award plus index.csv into reportDir,
// creating the directory if needed. Every ID in awardIDs gets a file even when
// no rows reference it, so awards absent from all packs still produce a
// header-only report. The rows slice is re-sorted per file; callers need not
// pre-sort.
func ExportCSV(reportDir string, awardIDs []int, rows []Row) error {
	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		return fmt.Errorf("create report dir %s: %w", reportDir, err)
	}

	byAward := make(map[int][]Row)
	for _, row := range rows {
		byAward[row.AwardID] = append(byAward[row.AwardID], row)
	}

	for _, awardID := range awardIDs {
		awardRows := byAward[awardID]
		SortForAward(awardRows)
		path := filepath.Join(reportDir, awardFileName(awardID))
		if err := writeCSV(path, awardRows); err != nil {
			return err
		}
	}

	SortForIndex(rows)
	return writeCSV(filepath.Join(reportDir, IndexFile), rows)
}
