package memory

import (
	"context"

	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/repositories"
)

type verificationCodeRepository struct {
	r *repository
}

func (vr *verificationCodeRepository) Create(ctx context.Context, code *models.VerificationCode) error {
	unlock := vr.r.lock()
	defer unlock()

	// Collisions with existing codes are possible and deliberately unchecked;
	// codes accumulate for the lifetime of the process.
	vr.r.store.codes = append(vr.r.store.codes, *code)
	return nil
}

func (vr *verificationCodeRepository) Consume(ctx context.Context, code, operatorPhone string) (*models.VerificationCode, error) {
	unlock := vr.r.lock()
	defer unlock()

	// First unused record in insertion order wins when duplicates exist.
	for i := range vr.r.store.codes {
		stored := &vr.r.store.codes[i]
		if !stored.Used && stored.Code == code && stored.OperatorPhone == operatorPhone {
			stored.Used = true
			consumed := *stored
			return &consumed, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (vr *verificationCodeRepository) List(ctx context.Context) ([]models.VerificationCode, error) {
	unlock := vr.r.rlock()
	defer unlock()

	out := make([]models.VerificationCode, len(vr.r.store.codes))
	copy(out, vr.r.store.codes)
	return out, nil
}
