package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/ecogaon/waste-ledger-service/internal/events"
	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/repositories"
)

// ecoScoreCap bounds a user's ecoscore.
const ecoScoreCap = 100

type wasteService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	publisher events.EventPublisher
}

func NewWasteService(repo repositories.Repository, logger *slog.Logger, publisher events.EventPublisher) WasteService {
	return &wasteService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

func (s *wasteService) Record(ctx context.Context, req *WasteSubmitRequest) (*models.WasteRecord, error) {
	// Zero values count as missing, including amount == 0.
	if req.UserID == 0 || req.Location == "" || req.Amount == 0 ||
		req.Type == "" || req.Verification == "" || req.OperatorPhone == "" {
		return nil, ErrMissingFields
	}

	points := int(math.Round(req.Amount * 10))
	record := &models.WasteRecord{
		UserID:   req.UserID,
		Location: req.Location,
		Amount:   req.Amount,
		Type:     req.Type,
		Date:     time.Now().Format(time.DateOnly),
		Points:   points,
	}

	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		// Exact match, no normalization; a consumed code stays consumed even
		// if the user lookup below comes up empty.
		if _, err := tx.VerificationCode().Consume(ctx, req.Verification, req.OperatorPhone); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCodeInvalid
			}
			return err
		}

		if err := tx.Waste().Create(ctx, record); err != nil {
			return err
		}

		user, err := tx.User().GetByID(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				// Orphaned record: persisted without a matching user, no
				// rollback. Tolerated inconsistency.
				s.logger.Warn("waste record references unknown user",
					"record_id", record.ID, "user_id", req.UserID)
				return nil
			}
			return err
		}

		user.TotalWaste += req.Amount
		user.TotalPoints += points
		user.EcoScore = min(ecoScoreCap, user.EcoScore+int(math.Floor(req.Amount/10)))
		return tx.User().Update(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("waste recorded",
		"record_id", record.ID, "user_id", record.UserID, "amount_kg", record.Amount)
	s.publish(ctx, events.NewEvent(events.TypeWasteRecorded, map[string]interface{}{
		"record_id": record.ID,
		"user_id":   record.UserID,
		"amount_kg": record.Amount,
		"points":    record.Points,
	}))

	return record, nil
}

func (s *wasteService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "event_type", event.Type, "error", err)
	}
}
