package memory

import (
	"context"

	"github.com/ecogaon/waste-ledger-service/internal/models"
)

type wasteRepository struct {
	r *repository
}

func (wr *wasteRepository) Create(ctx context.Context, record *models.WasteRecord) error {
	unlock := wr.r.lock()
	defer unlock()

	record.ID = len(wr.r.store.waste) + 1
	wr.r.store.waste = append(wr.r.store.waste, *record)
	return nil
}

func (wr *wasteRepository) GetByUser(ctx context.Context, userID int) ([]models.WasteRecord, error) {
	unlock := wr.r.rlock()
	defer unlock()

	var out []models.WasteRecord
	for i := range wr.r.store.waste {
		if wr.r.store.waste[i].UserID == userID {
			out = append(out, wr.r.store.waste[i])
		}
	}
	return out, nil
}

func (wr *wasteRepository) List(ctx context.Context) ([]models.WasteRecord, error) {
	unlock := wr.r.rlock()
	defer unlock()

	out := make([]models.WasteRecord, len(wr.r.store.waste))
	copy(out, wr.r.store.waste)
	return out, nil
}

func (wr *wasteRepository) Count(ctx context.Context) (int, error) {
	unlock := wr.r.rlock()
	defer unlock()

	return len(wr.r.store.waste), nil
}
