package assignment

import (
	"encoding/json"
	"strconv"
)

// ExtractItemIDs normalizes the item payload shapes that appear in stored
// assignments and inbound requests into a flat id slice. Accepted shapes:
//
//	[{"item_id": 1}, {"item_id": 2}]
//	[1, 2] or ["1", "2"]
//	{"itemIds": [1, 2]}
//
// Anything unrecognized yields an empty slice. Malformed payloads are a
// data-quality issue for the reconciliation report, not an error here.
func ExtractItemIDs(raw []byte) []int64 {
	if len(raw) == 0 {
		return nil
	}

	var objects []struct {
		ItemID *json.Number `json:"item_id"`
	}
	if err := json.Unmarshal(raw, &objects); err == nil && len(objects) > 0 && objects[0].ItemID != nil {
		ids := make([]int64, 0, len(objects))
		for _, o := range objects {
			if o.ItemID == nil {
				continue
			}
			if id, err := o.ItemID.Int64(); err == nil {
				ids = append(ids, id)
			}
		}
		return ids
	}

	var flat []any
	if err := json.Unmarshal(raw, &flat); err == nil {
		return coerceIDs(flat)
	}

	var wrapped struct {
		ItemIDs []any `json:"itemIds"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.ItemIDs != nil {
		return coerceIDs(wrapped.ItemIDs)
	}

	return nil
}

// coerceIDs keeps the numeric and numeric-string members of a mixed list.
func coerceIDs(values []any) []int64 {
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		switch n := v.(type) {
		case float64:
			ids = append(ids, int64(n))
		case string:
			if id, err := strconv.ParseInt(n, 10, 64); err == nil {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
