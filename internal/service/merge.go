package service

import (
	"maps"

	"demo/catalog/internal/model"
)

// Merge joins an order's product references with its history rows by product
// id. refs drive the result: one entry per ref, in ref order. Row fields win
// over ref fields on key collision. Refs without a row keep only their own
// fields and rows without a ref are dropped.
func Merge(refs []model.ProductRef, rows []model.HistoryRow) []map[string]any {
	byProduct := make(map[string]model.HistoryRow, len(rows))
	for _, r := range rows {
		if _, dup := byProduct[r.ProductID]; !dup {
			byProduct[r.ProductID] = r
		}
	}

	out := make([]map[string]any, 0, len(refs))
	for _, ref := range refs {
		entry := make(map[string]any, len(ref))
		maps.Copy(entry, ref)
		if id := ref.ProductID(); id != "" {
			if row, ok := byProduct[id]; ok {
				maps.Copy(entry, row.Fields())
			}
		}
		out = append(out, entry)
	}
	return out
}

func productIDs(refs []model.ProductRef) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		if id := ref.ProductID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
