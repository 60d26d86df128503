package services

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ecogaon/waste-ledger-service/internal/events"
	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/repositories"
)

var tenDigits = regexp.MustCompile(`^\d{10}$`)

// NormalizeOperatorPhone canonicalizes a bare 10-digit Indian number to
// +91XXXXXXXXXX. Anything else passes through trimmed. Applied at code
// generation only — verification matches the stored value verbatim.
func NormalizeOperatorPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	if tenDigits.MatchString(phone) {
		return "+91" + phone
	}
	return phone
}

type verificationService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	publisher events.EventPublisher
}

func NewVerificationService(repo repositories.Repository, logger *slog.Logger, publisher events.EventPublisher) VerificationService {
	return &verificationService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

func (s *verificationService) GenerateCode(ctx context.Context, operatorPhone string) (string, error) {
	if strings.TrimSpace(operatorPhone) == "" {
		return "", ErrOperatorPhoneRequired
	}

	normalized := NormalizeOperatorPhone(operatorPhone)

	// Uniform over [100000, 999999]; always six digits, collisions with
	// earlier codes are possible and unchecked.
	code := strconv.Itoa(100000 + rand.Intn(900000))

	record := &models.VerificationCode{
		Code:          code,
		OperatorPhone: normalized,
		CreatedAt:     time.Now().UTC(),
		Used:          false,
	}
	if err := s.repo.VerificationCode().Create(ctx, record); err != nil {
		return "", err
	}

	s.logger.Info("verification code generated", "operator_phone", normalized)
	s.publish(ctx, events.NewEvent(events.TypeCodeGenerated, map[string]interface{}{
		"operator_phone": normalized,
	}))

	return code, nil
}

func (s *verificationService) VerifyCode(ctx context.Context, code, operatorPhone string) error {
	if code == "" || operatorPhone == "" {
		return ErrCodeAndPhoneRequired
	}

	// Exact match on both fields, no normalization. Failure leaves every
	// stored code untouched.
	_, err := s.repo.VerificationCode().Consume(ctx, code, operatorPhone)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCodeInvalid
		}
		return err
	}

	s.logger.Info("verification code consumed", "operator_phone", operatorPhone)
	s.publish(ctx, events.NewEvent(events.TypeCodeConsumed, map[string]interface{}{
		"operator_phone": operatorPhone,
	}))

	return nil
}

func (s *verificationService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "event_type", event.Type, "error", err)
	}
}
