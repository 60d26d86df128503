package services

import (
	"context"

	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/validator"
)

// ===== REQUEST DTOs =====

// Request shapes live with their validation rules.
type RegisterRequest = validator.RegisterRequest
type GenerateCodeRequest = validator.GenerateCodeRequest
type VerifyCodeRequest = validator.VerifyCodeRequest
type WasteSubmitRequest = validator.WasteSubmitRequest

// ===== SERVICE INTERFACES =====

type RegistrationService interface {
	// Register admits a new user. Checks run in order (name, phone, role,
	// duplicate phone); the first failure determines the error.
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
}

type VerificationService interface {
	// GenerateCode issues a one-time 6-digit code bound to the operator's
	// normalized phone number and returns it.
	GenerateCode(ctx context.Context, operatorPhone string) (string, error)

	// VerifyCode consumes an unused code matching (code, operatorPhone)
	// exactly. The operator phone is NOT normalized here; a code generated
	// from a bare 10-digit number only verifies against its +91 form.
	VerifyCode(ctx context.Context, code, operatorPhone string) error
}

type WasteService interface {
	// Record validates the submission, consumes the verification code, appends
	// the waste record and folds the amount into the user's aggregates. A
	// missing user leaves an orphaned record; the code stays consumed.
	Record(ctx context.Context, req *WasteSubmitRequest) (*models.WasteRecord, error)
}

type QueryService interface {
	// All derivations are recomputed from the ledger on every call.
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
	UserProfile(ctx context.Context, phone string) (*models.UserProfile, error)
	VillageStats(ctx context.Context) (*models.VillageStats, error)
	UserStats(ctx context.Context) (*models.UserStats, error)
	Status(ctx context.Context) (*models.ServiceStatus, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type ExportService interface {
	// ExportLeaderboard renders the leaderboard and waste register as an
	// XLSX workbook.
	ExportLeaderboard(ctx context.Context) ([]byte, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Registration() RegistrationService
	Verification() VerificationService
	Waste() WasteService
	Query() QueryService
	Export() ExportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
