package tables

// ItemRecord is one entry of ItemTable.json. Id is a pointer so that records
// without an Id can be skipped instead of being read as item 0. Name is decoded
// loosely: anything other than a non-empty string gets a synthesized name.
type ItemRecord struct {
	Id   *int `json:"Id"`
	Name any  `json:"Name"`
}

// AwardRecord is one award (pool) definition from DropTable.json.
// GroupContent entries are variable-length number arrays whose first element is
// the item ID. GroupWeight and GroupRates, when present, align index-wise with
// GroupContent.
type AwardRecord struct {
	AwardID      int         `json:"AwardID"`
	GroupContent [][]float64 `json:"GroupContent"`
	GroupWeight  []float64   `json:"GroupWeight"`
	GroupRates   []float64   `json:"GroupRates"`
}

// PackRecord is one pack definition from DropPackageTable.json.
// PackContent entries are either [awardID, ?, rollCount, ...] or
// [awardID, rollCount].
type PackRecord struct {
	PackID      int         `json:"PackID"`
	PackContent [][]float64 `json:"PackContent"`
	GroupWeight []float64   `json:"GroupWeight"`
	GroupRates  []float64   `json:"GroupRates"`
}
