package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ecogaon/waste-ledger-service/internal/events"
	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/repositories"
	"github.com/ecogaon/waste-ledger-service/internal/repositories/memory"
)

func newSeededLedger() (repositories.Repository, *events.MockEventPublisher) {
	store := memory.NewStore()
	store.SeedDemoData()
	return store.Repository(), events.NewMockEventPublisher(testLogger())
}

func addTestCode(t *testing.T, repo repositories.Repository, code, phone string) {
	t.Helper()
	err := repo.VerificationCode().Create(context.Background(), &models.VerificationCode{
		Code:          code,
		OperatorPhone: phone,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Failed to create verification code: %v", err)
	}
}

func TestWasteService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("records waste and updates the user's aggregates", func(t *testing.T) {
		repo, publisher := newSeededLedger()
		service := NewWasteService(repo, testLogger(), publisher)

		record, err := service.Record(ctx, &WasteSubmitRequest{
			UserID:        1,
			Location:      "Dumping Point 1",
			Amount:        10,
			Type:          "Kitchen Waste",
			Verification:  "123456",
			OperatorPhone: "+919960775814",
		})
		if err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		if record.ID != 5 {
			t.Errorf("Expected record id 5 after seed data, got %d", record.ID)
		}
		if record.Points != 100 {
			t.Errorf("Expected 100 points for 10 kg, got %d", record.Points)
		}
		if record.Date != time.Now().Format(time.DateOnly) {
			t.Errorf("Expected today's date, got %s", record.Date)
		}

		user, err := repo.User().GetByID(ctx, 1)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if user.TotalWaste != 166.5 {
			t.Errorf("Expected totalWaste 166.5, got %v", user.TotalWaste)
		}
		if user.TotalPoints != 1665 {
			t.Errorf("Expected totalPoints 1665, got %d", user.TotalPoints)
		}
		if user.EcoScore != 86 {
			t.Errorf("Expected ecoscore 86, got %d", user.EcoScore)
		}
	})

	t.Run("consumed code cannot be reused", func(t *testing.T) {
		repo, publisher := newSeededLedger()
		service := NewWasteService(repo, testLogger(), publisher)

		req := &WasteSubmitRequest{
			UserID:        1,
			Location:      "Dumping Point 1",
			Amount:        5,
			Type:          "Garden Waste",
			Verification:  "123456",
			OperatorPhone: "+919960775814",
		}
		if _, err := service.Record(ctx, req); err != nil {
			t.Fatalf("First submission failed: %v", err)
		}
		if _, err := service.Record(ctx, req); !errors.Is(err, ErrCodeInvalid) {
			t.Errorf("Expected ErrCodeInvalid on reuse, got %v", err)
		}
	})

	t.Run("rounds points half away from zero", func(t *testing.T) {
		repo, publisher := newSeededLedger()
		service := NewWasteService(repo, testLogger(), publisher)

		tests := []struct {
			amount float64
			points int
		}{
			{1.25, 13},
			{0.04, 0},
			{12.34, 123},
		}
		for i, tt := range tests {
			code := fmt.Sprintf("55500%d", i)
			addTestCode(t, repo, code, "+919960775814")
			record, err := service.Record(ctx, &WasteSubmitRequest{
				UserID:        2,
				Location:      "Dumping Point 2",
				Amount:        tt.amount,
				Type:          "Mixed Organic",
				Verification:  code,
				OperatorPhone: "+919960775814",
			})
			if err != nil {
				t.Fatalf("Record(%v) failed: %v", tt.amount, err)
			}
			if record.Points != tt.points {
				t.Errorf("Record(%v): expected %d points, got %d", tt.amount, tt.points, record.Points)
			}
		}
	})

	t.Run("ecoscore is capped at 100", func(t *testing.T) {
		repo, publisher := newTestLedger()
		service := NewWasteService(repo, testLogger(), publisher)

		user := &models.User{
			Name: "Sita Devi", Phone: "+919876543211", Role: models.RoleHousehold,
			EcoScore: 99, RegisteredAt: "2024-01-02",
		}
		if err := repo.User().Create(ctx, user); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		addTestCode(t, repo, "654321", "+919960775814")

		if _, err := service.Record(ctx, &WasteSubmitRequest{
			UserID:        user.ID,
			Location:      "Dumping Point 1",
			Amount:        50,
			Type:          "Kitchen Waste",
			Verification:  "654321",
			OperatorPhone: "+919960775814",
		}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		updated, _ := repo.User().GetByID(ctx, user.ID)
		if updated.EcoScore != 100 {
			t.Errorf("Expected ecoscore capped at 100, got %d", updated.EcoScore)
		}
	})

	t.Run("keeps record and consumes code for unknown user", func(t *testing.T) {
		repo, publisher := newSeededLedger()
		service := NewWasteService(repo, testLogger(), publisher)

		record, err := service.Record(ctx, &WasteSubmitRequest{
			UserID:        9999,
			Location:      "Dumping Point 1",
			Amount:        4.5,
			Type:          "Kitchen Waste",
			Verification:  "789012",
			OperatorPhone: "+917028911914",
		})
		if err != nil {
			t.Fatalf("Expected orphaned submission to succeed, got %v", err)
		}
		if record.ID == 0 {
			t.Error("Expected orphaned record to get an id")
		}

		codes, _ := repo.VerificationCode().List(ctx)
		for _, c := range codes {
			if c.Code == "789012" && !c.Used {
				t.Error("Expected code to stay consumed despite unknown user")
			}
		}
		count, _ := repo.Waste().Count(ctx)
		if count != 5 {
			t.Errorf("Expected 5 waste records, got %d", count)
		}
	})

	t.Run("treats zero values as missing fields", func(t *testing.T) {
		repo, publisher := newSeededLedger()
		service := NewWasteService(repo, testLogger(), publisher)

		valid := WasteSubmitRequest{
			UserID:        1,
			Location:      "Dumping Point 1",
			Amount:        10,
			Type:          "Kitchen Waste",
			Verification:  "123456",
			OperatorPhone: "+919960775814",
		}
		tests := []struct {
			name   string
			mutate func(*WasteSubmitRequest)
		}{
			{"zero user id", func(r *WasteSubmitRequest) { r.UserID = 0 }},
			{"empty location", func(r *WasteSubmitRequest) { r.Location = "" }},
			{"zero amount", func(r *WasteSubmitRequest) { r.Amount = 0 }},
			{"empty type", func(r *WasteSubmitRequest) { r.Type = "" }},
			{"empty verification", func(r *WasteSubmitRequest) { r.Verification = "" }},
			{"empty operator phone", func(r *WasteSubmitRequest) { r.OperatorPhone = "" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := valid
				tt.mutate(&req)
				if _, err := service.Record(ctx, &req); !errors.Is(err, ErrMissingFields) {
					t.Errorf("Expected ErrMissingFields, got %v", err)
				}
			})
		}

		// Validation failures must not touch the code.
		if _, err := service.Record(ctx, &valid); err != nil {
			t.Errorf("Expected valid submission to still succeed, got %v", err)
		}
	})

	t.Run("rejects invalid code without writing a record", func(t *testing.T) {
		repo, publisher := newSeededLedger()
		service := NewWasteService(repo, testLogger(), publisher)

		_, err := service.Record(ctx, &WasteSubmitRequest{
			UserID:        1,
			Location:      "Dumping Point 1",
			Amount:        10,
			Type:          "Kitchen Waste",
			Verification:  "123456",
			OperatorPhone: "9960775814",
		})
		if !errors.Is(err, ErrCodeInvalid) {
			t.Fatalf("Expected ErrCodeInvalid for raw operator phone, got %v", err)
		}

		count, _ := repo.Waste().Count(ctx)
		if count != 4 {
			t.Errorf("Expected waste register unchanged, got %d records", count)
		}
	})

	t.Run("publishes waste.recorded event", func(t *testing.T) {
		repo, publisher := newSeededLedger()
		service := NewWasteService(repo, testLogger(), publisher)

		if _, err := service.Record(ctx, &WasteSubmitRequest{
			UserID:        1,
			Location:      "Dumping Point 1",
			Amount:        10,
			Type:          "Kitchen Waste",
			Verification:  "123456",
			OperatorPhone: "+919960775814",
		}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}

		published := publisher.GetPublishedEvents()
		if len(published) != 1 || published[0].Type != events.TypeWasteRecorded {
			t.Fatalf("Expected a single %s event, got %+v", events.TypeWasteRecorded, published)
		}
		data, ok := published[0].Data.(map[string]interface{})
		if !ok {
			t.Fatalf("Expected map payload, got %T", published[0].Data)
		}
		if data["user_id"] != 1 {
			t.Errorf("Expected user_id 1 in payload, got %v", data["user_id"])
		}
	})
}
