package output

import "sort"

// SortForAward orders rows for a per-award file: ascending by (PackID, ItemID).
func SortForAward(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PackID != rows[j].PackID {
			return rows[i].PackID < rows[j].PackID
		}
		return rows[i].ItemID < rows[j].ItemID
	})
}

// SortForIndex orders rows for the consolidated index: ascending by
// (AwardID, PackID, ItemID).
func SortForIndex(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AwardID != rows[j].AwardID {
			return rows[i].AwardID < rows[j].AwardID
		}
		if rows[i].PackID != rows[j].PackID {
			return rows[i].PackID < rows[j].PackID
		}
		return rows[i].ItemID < rows[j].ItemID
	})
}
