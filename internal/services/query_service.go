package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/repositories"
)

// villageCount is a hardcoded placeholder, not derived from the ledger.
const villageCount = 5

const topContributorCount = 3
const recentRegistrationCount = 5

type queryService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewQueryService(repo repositories.Repository, logger *slog.Logger) QueryService {
	return &queryService{
		repo:   repo,
		logger: logger,
	}
}

// byWasteDesc returns a stable totalWaste-descending copy; ties keep their
// registration order. Leaderboard and profile ranks both derive from it.
func byWasteDesc(users []models.User) []models.User {
	out := make([]models.User, len(users))
	copy(out, users)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalWaste > out[j].TotalWaste
	})
	return out
}

func (s *queryService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, err
	}

	ranked := byWasteDesc(users)
	entries := make([]models.LeaderboardEntry, 0, len(ranked))
	for i, user := range ranked {
		entries = append(entries, models.LeaderboardEntry{
			Rank:     i + 1,
			Name:     user.Name,
			Waste:    user.TotalWaste,
			EcoScore: user.EcoScore,
		})
	}
	return entries, nil
}

func (s *queryService) UserProfile(ctx context.Context, phone string) (*models.UserProfile, error) {
	user, err := s.repo.User().GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	history, err := s.repo.Waste().GetByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})

	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, err
	}
	rank := 0
	for i, ranked := range byWasteDesc(users) {
		if ranked.ID == user.ID {
			rank = i + 1
			break
		}
	}

	if history == nil {
		history = []models.WasteRecord{}
	}
	return &models.UserProfile{
		User:         *user,
		Rank:         rank,
		WasteHistory: history,
	}, nil
}

func (s *queryService) VillageStats(ctx context.Context) (*models.VillageStats, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, err
	}

	var totalKg float64
	for _, user := range users {
		totalKg += user.TotalWaste
	}

	ranked := byWasteDesc(users)
	if len(ranked) > topContributorCount {
		ranked = ranked[:topContributorCount]
	}
	top := make([]models.TopContributor, 0, len(ranked))
	for _, user := range ranked {
		top = append(top, models.TopContributor{Name: user.Name, Kg: user.TotalWaste})
	}

	return &models.VillageStats{
		Villages:        villageCount,
		TotalKg:         int(math.Round(totalKg)),
		TopContributors: top,
	}, nil
}

func (s *queryService) UserStats(ctx context.Context) (*models.UserStats, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, err
	}

	roleStats := make(map[models.UserRole]int)
	for _, user := range users {
		roleStats[user.Role]++
	}

	recent := make([]models.User, len(users))
	copy(recent, users)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].RegisteredAt > recent[j].RegisteredAt
	})
	if len(recent) > recentRegistrationCount {
		recent = recent[:recentRegistrationCount]
	}

	return &models.UserStats{
		TotalUsers:          len(users),
		RoleStats:           roleStats,
		RecentRegistrations: recent,
	}, nil
}

func (s *queryService) Status(ctx context.Context) (*models.ServiceStatus, error) {
	count, err := s.repo.User().Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ServiceStatus{
		Status:     "Server is running",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		TotalUsers: count,
	}, nil
}

func (s *queryService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
