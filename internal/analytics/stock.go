package analytics

import (
	"sort"

	"go-agroprod-ws/internal/model"
)

// LowStockThresholdKg is the balance under which an item gets flagged on the
// realtime stock view. Negative balances fall under it too.
const LowStockThresholdKg = 10

// StockStatus is the reconciled balance of one item name. Stock is tracked
// per item, not per lot: two lots of the same item are fungible here.
type StockStatus struct {
	ItemName     string  `json:"item_name"`
	TotalInKg    float64 `json:"total_in_kg"`
	TotalOutKg   float64 `json:"total_out_kg"`
	CurrentStock float64 `json:"current_stock"`
	LowStock     bool    `json:"low_stock"`
}

// ReconcileStock folds the inbound purchase stream and the outbound
// stock-out stream into a per-item balance. There is no stored running
// balance; correctness depends on both collections being complete at read
// time. A balance can go negative when outs exceed recorded purchases, which
// is reported as-is, flagged, never clamped or rejected.
func ReconcileStock(purchases []model.PurchaseRecord, stockOuts []model.StockOutRecord) []StockStatus {
	type flow struct {
		in  float64
		out float64
	}
	byItem := make(map[string]*flow)

	for _, p := range purchases {
		f := byItem[p.ItemName]
		if f == nil {
			f = &flow{}
			byItem[p.ItemName] = f
		}
		f.in += p.Quantity
	}
	for _, s := range stockOuts {
		f := byItem[s.ItemName]
		if f == nil {
			f = &flow{}
			byItem[s.ItemName] = f
		}
		f.out += s.Quantity
	}

	out := make([]StockStatus, 0, len(byItem))
	for item, f := range byItem {
		balance := f.in - f.out
		out = append(out, StockStatus{
			ItemName:     item,
			TotalInKg:    f.in,
			TotalOutKg:   f.out,
			CurrentStock: balance,
			LowStock:     balance <= LowStockThresholdKg,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CurrentStock != out[j].CurrentStock {
			return out[i].CurrentStock > out[j].CurrentStock
		}
		return out[i].ItemName < out[j].ItemName
	})
	return out
}
