package schedule

import (
	"encoding/json"
	"fmt"

	"github.com/hallboard/schoolfeed/core/model"
	"github.com/hallboard/schoolfeed/internal/deepmerge"
)

// overridesDateKey is the top-level key of the overrides document.
const overridesDateKey = "by_date"

// ApplyOverrides converts a built day record to its generic tree form and
// merges the override fragment for its date, if any. The record itself is
// never mutated.
func ApplyOverrides(rec model.DayRecord, overrides map[string]any) (map[string]any, error) {
	base, err := toTree(rec)
	if err != nil {
		return nil, err
	}
	return deepmerge.Merge(base, FragmentFor(overrides, rec.Date)), nil
}

// FragmentFor extracts the override fragment keyed by the given ISO date.
// Returns nil when the document or the date entry is absent.
func FragmentFor(overrides map[string]any, isoDate string) map[string]any {
	byDate, ok := overrides[overridesDateKey].(map[string]any)
	if !ok {
		return nil
	}
	frag, _ := byDate[isoDate].(map[string]any)
	return frag
}

func toTree(rec model.DayRecord) (map[string]any, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode day record: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode day record: %w", err)
	}
	return tree, nil
}
