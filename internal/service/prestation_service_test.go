package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-agroprod-ws/internal/model"
)

type fakePrestationProdRepo struct {
	records []model.PrestationProdRecord
}

func (r *fakePrestationProdRepo) Create(record *model.PrestationProdRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *fakePrestationProdRepo) FindAll() ([]model.PrestationProdRecord, error) {
	return r.records, nil
}

func (r *fakePrestationProdRepo) FindByID(id uuid.UUID) (*model.PrestationProdRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakePrestationProdRepo) Update(record *model.PrestationProdRecord) error {
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = *record
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakePrestationProdRepo) Delete(id uuid.UUID) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakePrestationProdRepo) ReplaceAll(records []model.PrestationProdRecord) error {
	r.records = append([]model.PrestationProdRecord(nil), records...)
	return nil
}

type fakePrestationEtuvageRepo struct {
	records []model.PrestationEtuvageRecord
}

func (r *fakePrestationEtuvageRepo) Create(record *model.PrestationEtuvageRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *fakePrestationEtuvageRepo) FindAll() ([]model.PrestationEtuvageRecord, error) {
	return r.records, nil
}

func (r *fakePrestationEtuvageRepo) FindByID(id uuid.UUID) (*model.PrestationEtuvageRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			rec := r.records[i]
			return &rec, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakePrestationEtuvageRepo) Update(record *model.PrestationEtuvageRecord) error {
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = *record
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakePrestationEtuvageRepo) Delete(id uuid.UUID) error {
	for i := range r.records {
		if r.records[i].ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakePrestationEtuvageRepo) ReplaceAll(records []model.PrestationEtuvageRecord) error {
	r.records = append([]model.PrestationEtuvageRecord(nil), records...)
	return nil
}

func TestCreateProdBillsOnInboundWeight(t *testing.T) {
	svc := NewPrestationService(&fakePrestationProdRepo{}, &fakePrestationEtuvageRepo{}, nil)

	req := &model.PrestationProdRecord{
		Date:        "2026-09-01",
		LotNumber:   "lot-p1",
		ClientName:  "Export FR",
		ServiceType: "Triage",
		WeightInKg:  300,
		WeightOutKg: 280,
		UnitPrice:   0.5,
	}
	require.NoError(t, svc.CreateProd(req, "user-1", "Awa"))

	assert.Equal(t, 150.0, req.TotalAmount)
	assert.Equal(t, "LOT-P1", req.LotNumber)
}

func TestUpdateProdKeepsAmountSnapshot(t *testing.T) {
	svc := NewPrestationService(&fakePrestationProdRepo{}, &fakePrestationEtuvageRepo{}, nil)

	req := &model.PrestationProdRecord{
		Date:        "2026-09-01",
		LotNumber:   "LOT-P1",
		ClientName:  "Export FR",
		ServiceType: "Triage",
		WeightInKg:  300,
		UnitPrice:   0.5,
	}
	require.NoError(t, svc.CreateProd(req, "user-1", "Awa"))
	require.Equal(t, 150.0, req.TotalAmount)

	newWeight := 500.0
	updated, err := svc.UpdateProd(req.ID, &PrestationProdUpdateRequest{WeightInKg: &newWeight}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 500.0, updated.WeightInKg)
	assert.Equal(t, 150.0, updated.TotalAmount)
}

func TestCreateEtuvage(t *testing.T) {
	etuvageRepo := &fakePrestationEtuvageRepo{}
	svc := NewPrestationService(&fakePrestationProdRepo{}, etuvageRepo, nil)

	req := &model.PrestationEtuvageRecord{
		Date:          "2026-09-01",
		LotNumber:     "LOT-E1",
		ClientName:    "Export DE",
		WeightInKg:    400,
		WeightOutKg:   360,
		HumidityLevel: 12,
		DurationHours: 6,
		UnitPrice:     0.8,
	}
	require.NoError(t, svc.CreateEtuvage(req, "user-1", "Awa"))

	assert.Equal(t, 320.0, req.TotalAmount)
	require.Len(t, etuvageRepo.records, 1)
}
