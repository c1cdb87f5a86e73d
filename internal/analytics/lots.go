package analytics

import (
	"sort"

	"go-agroprod-ws/internal/model"
)

// PurchaseLeg is the inbound side of a lot as displayed: when several
// purchases share a lot number the kilograms accumulate on the lot totals
// but these details keep the last-seen purchase only.
type PurchaseLeg struct {
	Date            string  `json:"date"`
	SupplierName    string  `json:"supplier_name"`
	ItemName        string  `json:"item_name"`
	Variety         string  `json:"variety"`
	QuantityKg      float64 `json:"quantity_kg"`
	InfestationRate float64 `json:"infestation_rate"`
}

// ProductionLeg is one production run attached to a lot.
type ProductionLeg struct {
	Date            string  `json:"date"`
	ClientName      string  `json:"client_name"`
	ProductName     string  `json:"product_name"`
	WeightKg        float64 `json:"weight_kg"`
	WasteKg         float64 `json:"waste_kg"`
	InfestationRate float64 `json:"infestation_rate"`
}

// LotSummary answers "what happened to this batch": the purchase entry leg,
// every production leg, and the derived yield and quality-drift figures.
type LotSummary struct {
	LotNumber  string          `json:"lot_number"`
	Purchase   *PurchaseLeg    `json:"purchase,omitempty"`
	Production []ProductionLeg `json:"production"`

	PurchasedKg  float64 `json:"purchased_kg"`
	ProducedKg   float64 `json:"produced_kg"`
	WasteKg      float64 `json:"waste_kg"`
	YieldPercent float64 `json:"yield_percent"`

	PurchaseInfestation   float64 `json:"purchase_infestation"`
	ProductionInfestation float64 `json:"production_infestation"`
	InfestationDrift      float64 `json:"infestation_drift"`

	// PurchaseMissing marks a lot seen only on the production side: a typo,
	// legacy data, or a receipt keyed elsewhere. A displayed state, not an
	// error.
	PurchaseMissing bool `json:"purchase_missing"`
}

// TraceLots joins purchases and production by lot number. The join is an
// outer join over the union of lot numbers seen in either collection: a lot
// is never silently dropped. Output is sorted by lot number descending as a
// plain string sort, so "LOT-9" lands after "LOT-10".
func TraceLots(productions []model.ProductionRecord, purchases []model.PurchaseRecord) []LotSummary {
	lots := make(map[string]*LotSummary)

	get := func(lotNumber string) *LotSummary {
		l := lots[lotNumber]
		if l == nil {
			l = &LotSummary{LotNumber: lotNumber, Production: []ProductionLeg{}}
			lots[lotNumber] = l
		}
		return l
	}

	for _, p := range purchases {
		l := get(p.LotNumber)
		l.PurchasedKg += p.Quantity
		l.Purchase = &PurchaseLeg{
			Date:            p.Date,
			SupplierName:    p.SupplierName,
			ItemName:        p.ItemName,
			Variety:         p.Variety,
			QuantityKg:      p.Quantity,
			InfestationRate: p.InfestationRate,
		}
		l.PurchaseInfestation = p.InfestationRate
	}

	for _, r := range productions {
		l := get(r.LotNumber)
		l.Production = append(l.Production, ProductionLeg{
			Date:            r.Date,
			ClientName:      r.ClientName,
			ProductName:     r.ProductName,
			WeightKg:        r.TotalWeightKg,
			WasteKg:         r.WasteKg,
			InfestationRate: r.InfestationRate,
		})
		l.ProducedKg += r.TotalWeightKg
		l.WasteKg += r.WasteKg
	}

	out := make([]LotSummary, 0, len(lots))
	for _, l := range lots {
		if len(l.Production) > 0 {
			var sum float64
			for _, p := range l.Production {
				sum += p.InfestationRate
			}
			l.ProductionInfestation = sum / float64(len(l.Production))
		}
		if l.PurchasedKg > 0 {
			l.YieldPercent = l.ProducedKg / l.PurchasedKg * 100
		}
		l.InfestationDrift = l.ProductionInfestation - l.PurchaseInfestation
		l.PurchaseMissing = l.Purchase == nil
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LotNumber > out[j].LotNumber
	})
	return out
}
