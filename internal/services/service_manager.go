package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ecogaon/waste-ledger-service/internal/events"
	"github.com/ecogaon/waste-ledger-service/internal/repositories"
	"github.com/ecogaon/waste-ledger-service/internal/validator"
)

// serviceManager implements ServiceManager.
type serviceManager struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher

	registrationService RegistrationService
	verificationService VerificationService
	wasteService        WasteService
	queryService        QueryService
	exportService       ExportService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

func NewServiceManager(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) ServiceManager {
	return &serviceManager{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

// Initialize sets up all services.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.registrationService = NewRegistrationService(sm.repo, sm.logger, sm.publisher)
	sm.verificationService = NewVerificationService(sm.repo, sm.logger, sm.publisher)
	sm.wasteService = NewWasteService(sm.repo, sm.logger, sm.publisher)
	sm.queryService = NewQueryService(sm.repo, sm.logger)
	sm.exportService = NewExportService(sm.repo, sm.queryService, sm.logger)

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("ledger store unavailable: %w", err)
	}

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")
	return nil
}

func (sm *serviceManager) Registration() RegistrationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.registrationService
}

func (sm *serviceManager) Verification() VerificationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.verificationService
}

func (sm *serviceManager) Waste() WasteService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.wasteService
}

func (sm *serviceManager) Query() QueryService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.queryService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.exportService
}

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}
	return sm.repo.Ping(ctx)
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")
	if err := sm.repo.Close(); err != nil {
		sm.logger.Error("Failed to close ledger store", "error", err)
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")
	return nil
}
