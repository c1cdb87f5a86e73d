package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agroprod-ws/internal/model"
)

func TestTraceLotsJoinsPurchaseAndProduction(t *testing.T) {
	purchases := []model.PurchaseRecord{
		{Date: "2026-09-01", LotNumber: "L1", SupplierName: "AgriPlus", ItemName: "Tomate", Quantity: 100, InfestationRate: 2},
	}
	productions := []model.ProductionRecord{
		prod("2026-09-02", "L1", "Export FR", 4, 60, 5, 3),
		prod("2026-09-03", "L1", "Export FR", 4, 30, 2, 5),
	}

	lots := TraceLots(productions, purchases)
	require.Len(t, lots, 1)

	l := lots[0]
	assert.Equal(t, "L1", l.LotNumber)
	assert.Equal(t, 100.0, l.PurchasedKg)
	assert.Equal(t, 90.0, l.ProducedKg)
	assert.Equal(t, 7.0, l.WasteKg)
	assert.Equal(t, 90.0, l.YieldPercent)
	assert.Len(t, l.Production, 2)
	assert.False(t, l.PurchaseMissing)

	// Mean production infestation 4% against 2% at receipt: +2 drift.
	assert.Equal(t, 4.0, l.ProductionInfestation)
	assert.Equal(t, 2.0, l.InfestationDrift)
}

func TestTraceLotsOuterJoinKeepsEveryLot(t *testing.T) {
	purchases := []model.PurchaseRecord{
		purchase("LOT-A", "Tomate", 50),
	}
	productions := []model.ProductionRecord{
		prod("2026-09-01", "LOT-B", "Export FR", 1, 20, 0, 0),
	}

	lots := TraceLots(productions, purchases)
	require.Len(t, lots, 2)

	seen := map[string]LotSummary{}
	for _, l := range lots {
		seen[l.LotNumber] = l
	}

	// Purchase-only lot: no production legs, zero yield.
	a := seen["LOT-A"]
	assert.False(t, a.PurchaseMissing)
	assert.Empty(t, a.Production)
	assert.Equal(t, 0.0, a.YieldPercent)

	// Production-only lot: displayed with its purchase data missing.
	b := seen["LOT-B"]
	assert.True(t, b.PurchaseMissing)
	assert.Nil(t, b.Purchase)
	assert.Equal(t, 0.0, b.YieldPercent)
	assert.Equal(t, 20.0, b.ProducedKg)
}

func TestTraceLotsMultiplePurchasesAccumulateButDetailsOverwrite(t *testing.T) {
	purchases := []model.PurchaseRecord{
		{Date: "2026-09-01", LotNumber: "L1", SupplierName: "AgriPlus", Variety: "Roma", ItemName: "Tomate", Quantity: 40, InfestationRate: 1},
		{Date: "2026-09-02", LotNumber: "L1", SupplierName: "Local Farmer", Variety: "Cerise", ItemName: "Tomate", Quantity: 60, InfestationRate: 3},
	}

	lots := TraceLots(nil, purchases)
	require.Len(t, lots, 1)

	l := lots[0]
	assert.Equal(t, 100.0, l.PurchasedKg)
	// Displayed details come from the last-seen purchase for the lot.
	require.NotNil(t, l.Purchase)
	assert.Equal(t, "Local Farmer", l.Purchase.SupplierName)
	assert.Equal(t, "Cerise", l.Purchase.Variety)
	assert.Equal(t, 3.0, l.PurchaseInfestation)
}

func TestTraceLotsSortsLexicographicallyDescending(t *testing.T) {
	purchases := []model.PurchaseRecord{
		purchase("LOT-10", "Tomate", 10),
		purchase("LOT-9", "Tomate", 10),
		purchase("LOT-2", "Tomate", 10),
	}

	lots := TraceLots(nil, purchases)
	require.Len(t, lots, 3)

	// String sort, not numeric: LOT-9 sorts before LOT-10.
	assert.Equal(t, "LOT-9", lots[0].LotNumber)
	assert.Equal(t, "LOT-2", lots[1].LotNumber)
	assert.Equal(t, "LOT-10", lots[2].LotNumber)
}

func TestTraceLotsIdempotent(t *testing.T) {
	purchases := []model.PurchaseRecord{
		purchase("L1", "Tomate", 100),
		purchase("L2", "Poivron", 30),
	}
	productions := []model.ProductionRecord{
		prod("2026-09-01", "L1", "Export FR", 2, 40, 1, 2),
		prod("2026-09-01", "L3", "Export DE", 1, 10, 0, 0),
	}

	first := TraceLots(productions, purchases)
	second := TraceLots(productions, purchases)
	assert.Equal(t, first, second)
}
