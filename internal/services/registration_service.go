package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ecogaon/waste-ledger-service/internal/events"
	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/repositories"
)

type registrationService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	publisher events.EventPublisher
}

func NewRegistrationService(repo repositories.Repository, logger *slog.Logger, publisher events.EventPublisher) RegistrationService {
	return &registrationService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

func (s *registrationService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, ErrInvalidName
	}

	phone := strings.TrimSpace(req.Phone)
	if utf8.RuneCountInString(phone) < 10 {
		return nil, ErrInvalidPhone
	}

	role := models.UserRole(req.Role)
	if req.Role == "" {
		role = models.DefaultRole
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	user := &models.User{
		Name:         name,
		Phone:        phone,
		Role:         role,
		EcoScore:     0,
		TotalWaste:   0,
		TotalPoints:  0,
		RegisteredAt: time.Now().Format(time.DateOnly),
	}

	// Duplicate check and insert must see the same ledger state.
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		_, err := tx.User().GetByPhone(ctx, phone)
		if err == nil {
			return ErrDuplicatePhone
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		return tx.User().Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	s.publish(ctx, events.NewEvent(events.TypeUserRegistered, map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	}))

	return user, nil
}

func (s *registrationService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "event_type", event.Type, "error", err)
	}
}
