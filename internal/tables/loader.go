package tables

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	ItemTableFile = "ItemTable.json"
	DropTableFile = "DropTable.json"
	PackTableFile = "DropPackageTable.json"
)

// ErrNotFound reports that a table file exists in none of the candidate
// directories.
var ErrNotFound = errors.New("table not found")

func findTable(dirs []string, name string) (string, bool) {
	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

func loadTable(dirs []string, name string, out any) error {
	path, ok := findTable(dirs, name)
	if !ok {
		return fmt.Errorf("%w: %s (looked in %v)", ErrNotFound, name, dirs)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// LoadItemNames builds the item ID to display name catalog. A missing
// ItemTable.json is not an error: the returned bool is false and the catalog is
// empty, so every name falls back to the synthesized form.
func LoadItemNames(dirs []string) (map[int]string, bool, error) {
	var raw map[string]ItemRecord
	if err := loadTable(dirs, ItemTableFile, &raw); err != nil {
		if errors.Is(err, ErrNotFound) {
			return map[int]string{}, false, nil
		}
		return nil, false, err
	}
	names := make(map[int]string, len(raw))
	for _, rec := range raw {
		if rec.Id == nil {
			continue
		}
		name, _ := rec.Name.(string)
		if name == "" {
			name = fmt.Sprintf("Item_%d", *rec.Id)
		}
		names[*rec.Id] = name
	}
	return names, true, nil
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadAwards reads DropTable.json. The file is required. Records are collected
// in table-key order and stably sorted by AwardID, so iteration order is
// deterministic even when records share an AwardID.
func LoadAwards(dirs []string) ([]AwardRecord, error) {
	var raw map[string]AwardRecord
	if err := loadTable(dirs, DropTableFile, &raw); err != nil {
		return nil, err
	}
	awards := make([]AwardRecord, 0, len(raw))
	for _, key := range sortedKeys(raw) {
		awards = append(awards, raw[key])
	}
	sort.SliceStable(awards, func(i, j int) bool { return awards[i].AwardID < awards[j].AwardID })
	return awards, nil
}

// LoadPacks reads DropPackageTable.json. The file is required. Records are
// ordered the same way LoadAwards orders awards.
func LoadPacks(dirs []string) ([]PackRecord, error) {
	var raw map[string]PackRecord
	if err := loadTable(dirs, PackTableFile, &raw); err != nil {
		return nil, err
	}
	packs := make([]PackRecord, 0, len(raw))
	for _, key := range sortedKeys(raw) {
		packs = append(packs, raw[key])
	}
	sort.SliceStable(packs, func(i, j int) bool { return packs[i].PackID < packs[j].PackID })
	return packs, nil
}

// ItemName resolves an item's display name, synthesizing Item_<id> for items
// absent from the catalog.
func ItemName(names map[int]string, itemID int) string {
	if name, ok := names[itemID]; ok {
		return name
	}
	return fmt.Sprintf("Item_%d", itemID)
}
