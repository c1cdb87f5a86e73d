package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agroprod-ws/internal/model"
)

type fakePurchaseRepo struct {
	records []model.PurchaseRecord
}

func (r *fakePurchaseRepo) Create(record *model.PurchaseRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *fakePurchaseRepo) FindAll() ([]model.PurchaseRecord, error) {
	return r.records, nil
}

func (r *fakePurchaseRepo) Search(term string) ([]model.PurchaseRecord, error) {
	term = strings.ToLower(term)
	var out []model.PurchaseRecord
	for _, rec := range r.records {
		if strings.Contains(strings.ToLower(rec.LotNumber), term) ||
			strings.Contains(strings.ToLower(rec.ItemName), term) ||
			strings.Contains(strings.ToLower(rec.SupplierName), term) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) FindByID(id uuid.UUID) (*model.PurchaseRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakePurchaseRepo) Update(record *model.PurchaseRecord) error {
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = *record
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakePurchaseRepo) Delete(id uuid.UUID) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakePurchaseRepo) ReplaceAll(records []model.PurchaseRecord) error {
	r.records = append([]model.PurchaseRecord(nil), records...)
	return nil
}

type fakeStockOutRepo struct {
	records []model.StockOutRecord
}

func (r *fakeStockOutRepo) Create(record *model.StockOutRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeStockOutRepo) FindAll() ([]model.StockOutRecord, error) {
	return r.records, nil
}

func (r *fakeStockOutRepo) Search(term string) ([]model.StockOutRecord, error) {
	return r.records, nil
}

func (r *fakeStockOutRepo) FindByID(id uuid.UUID) (*model.StockOutRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeStockOutRepo) Update(record *model.StockOutRecord) error {
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = *record
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeStockOutRepo) Delete(id uuid.UUID) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeStockOutRepo) ReplaceAll(records []model.StockOutRecord) error {
	r.records = append([]model.StockOutRecord(nil), records...)
	return nil
}

func validPurchase() *model.PurchaseRecord {
	return &model.PurchaseRecord{
		Date:         "2026-09-01",
		LotNumber:    "LOT-1",
		SupplierName: "Coopérative Sud",
		ItemName:     "Tomate Roma",
		Quantity:     100,
		UnitPrice:    2.5,
	}
}

func TestCreatePurchaseSnapshotsTotalAmount(t *testing.T) {
	svc := NewStockService(&fakePurchaseRepo{}, &fakeStockOutRepo{}, nil)

	req := validPurchase()
	req.TotalAmount = 999 // Caller-provided values are ignored.

	require.NoError(t, svc.CreatePurchase(req, "user-1", "Awa"))
	assert.Equal(t, 250.0, req.TotalAmount)
	assert.Equal(t, "kg", req.Unit)
}

func TestUpdatePurchaseDoesNotRederiveTotalAmount(t *testing.T) {
	svc := NewStockService(&fakePurchaseRepo{}, &fakeStockOutRepo{}, nil)

	req := validPurchase()
	require.NoError(t, svc.CreatePurchase(req, "user-1", "Awa"))
	require.Equal(t, 250.0, req.TotalAmount)

	newQty := 200.0
	updated, err := svc.UpdatePurchase(req.ID, &PurchaseUpdateRequest{Quantity: &newQty}, "user-1")
	require.NoError(t, err)

	// The entry-time snapshot survives a quantity edit.
	assert.Equal(t, 200.0, updated.Quantity)
	assert.Equal(t, 250.0, updated.TotalAmount)
}

func TestCreatePurchaseNormalizesLot(t *testing.T) {
	svc := NewStockService(&fakePurchaseRepo{}, &fakeStockOutRepo{}, nil)

	req := validPurchase()
	req.LotNumber = " lot-42 "

	require.NoError(t, svc.CreatePurchase(req, "user-1", "Awa"))
	assert.Equal(t, "LOT-42", req.LotNumber)
}

func TestGetStockStatusReconcilesFlows(t *testing.T) {
	purchases := &fakePurchaseRepo{}
	stockOuts := &fakeStockOutRepo{}
	svc := NewStockService(purchases, stockOuts, nil)

	req := validPurchase()
	require.NoError(t, svc.CreatePurchase(req, "user-1", "Awa"))

	out := &model.StockOutRecord{
		Date:     "2026-09-01",
		ItemName: "Tomate Roma",
		Quantity: 150,
		Reason:   "Vente",
	}
	require.NoError(t, svc.CreateStockOut(out, "user-1", "Awa"))

	status, err := svc.GetStockStatus()
	require.NoError(t, err)
	require.Len(t, status, 1)

	// Over-consumption is reported as a negative balance, not clamped.
	assert.Equal(t, -50.0, status[0].CurrentStock)
	assert.True(t, status[0].LowStock)
}

func TestCreateStockOutAllowsEmptyLot(t *testing.T) {
	svc := NewStockService(&fakePurchaseRepo{}, &fakeStockOutRepo{}, nil)

	out := &model.StockOutRecord{
		Date:     "2026-09-01",
		ItemName: "Tomate Roma",
		Quantity: 10,
		Reason:   "Perte",
	}
	require.NoError(t, svc.CreateStockOut(out, "user-1", "Awa"))
	assert.Empty(t, out.LotNumber)
}
