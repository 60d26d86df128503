package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/ecogaon/waste-ledger-service/internal/repositories"
)

const (
	leaderboardSheet   = "Leaderboard"
	wasteRegisterSheet = "Waste Register"
)

type exportService struct {
	repo   repositories.Repository
	query  QueryService
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, query QueryService, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		query:  query,
		logger: logger,
	}
}

func (s *exportService) ExportLeaderboard(ctx context.Context) ([]byte, error) {
	entries, err := s.query.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.Waste().List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", leaderboardSheet)
	if err := setRow(f, leaderboardSheet, 1, "Rank", "Name", "Total Waste (kg)", "Ecoscore"); err != nil {
		return nil, err
	}
	for i, entry := range entries {
		if err := setRow(f, leaderboardSheet, i+2, entry.Rank, entry.Name, entry.Waste, entry.EcoScore); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(wasteRegisterSheet); err != nil {
		return nil, err
	}
	if err := setRow(f, wasteRegisterSheet, 1, "ID", "User ID", "Location", "Amount (kg)", "Type", "Date", "Points"); err != nil {
		return nil, err
	}
	for i, record := range records {
		if err := setRow(f, wasteRegisterSheet, i+2,
			record.ID, record.UserID, record.Location, record.Amount, record.Type, record.Date, record.Points); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	s.logger.Info("leaderboard exported", "entries", len(entries), "waste_records", len(records))
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
