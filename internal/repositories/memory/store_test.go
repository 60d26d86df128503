package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecogaon/waste-ledger-service/internal/models"
	"github.com/ecogaon/waste-ledger-service/internal/repositories"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns count plus one", func(t *testing.T) {
		repo := NewStore().Repository()

		for i := 1; i <= 3; i++ {
			user := &models.User{Name: fmt.Sprintf("User %d", i), Phone: fmt.Sprintf("+9190000000%02d", i)}
			if err := repo.User().Create(ctx, user); err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if user.ID != i {
				t.Errorf("Expected id %d, got %d", i, user.ID)
			}
		}
	})

	t.Run("lookups return copies", func(t *testing.T) {
		repo := NewStore().Repository()

		user := &models.User{Name: "Ram Kumar", Phone: "+919876543210"}
		if err := repo.User().Create(ctx, user); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.User().GetByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		got.Name = "Mutated"

		again, _ := repo.User().GetByPhone(ctx, "+919876543210")
		if again.Name != "Ram Kumar" {
			t.Errorf("Stored user mutated through a returned copy: %q", again.Name)
		}
	})

	t.Run("missing lookups return ErrNotFound", func(t *testing.T) {
		repo := NewStore().Repository()

		if _, err := repo.User().GetByID(ctx, 42); !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("GetByID: expected ErrNotFound, got %v", err)
		}
		if _, err := repo.User().GetByPhone(ctx, "+910000000000"); !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("GetByPhone: expected ErrNotFound, got %v", err)
		}
		if err := repo.User().Update(ctx, &models.User{ID: 42}); !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("Update: expected ErrNotFound, got %v", err)
		}
	})
}

func TestVerificationCodeRepository_Consume(t *testing.T) {
	ctx := context.Background()

	t.Run("exact match marks code used", func(t *testing.T) {
		repo := NewStore().Repository()
		code := &models.VerificationCode{Code: "123456", OperatorPhone: "+919960775814", CreatedAt: time.Now().UTC()}
		if err := repo.VerificationCode().Create(ctx, code); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		consumed, err := repo.VerificationCode().Consume(ctx, "123456", "+919960775814")
		if err != nil {
			t.Fatalf("Consume failed: %v", err)
		}
		if !consumed.Used {
			t.Error("Expected returned copy to be marked used")
		}

		if _, err := repo.VerificationCode().Consume(ctx, "123456", "+919960775814"); !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second consume, got %v", err)
		}
	})

	t.Run("both fields must match", func(t *testing.T) {
		repo := NewStore().Repository()
		code := &models.VerificationCode{Code: "123456", OperatorPhone: "+919960775814", CreatedAt: time.Now().UTC()}
		if err := repo.VerificationCode().Create(ctx, code); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if _, err := repo.VerificationCode().Consume(ctx, "123456", "9960775814"); !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for mismatched phone, got %v", err)
		}
		if _, err := repo.VerificationCode().Consume(ctx, "654321", "+919960775814"); !errors.Is(err, repositories.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for mismatched code, got %v", err)
		}

		codes, _ := repo.VerificationCode().List(ctx)
		if codes[0].Used {
			t.Error("Failed consume attempts must not mark the code used")
		}
	})

	t.Run("concurrent consumers succeed at most once", func(t *testing.T) {
		repo := NewStore().Repository()
		code := &models.VerificationCode{Code: "123456", OperatorPhone: "+919960775814", CreatedAt: time.Now().UTC()}
		if err := repo.VerificationCode().Create(ctx, code); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		const n = 50
		var wg sync.WaitGroup
		var successes atomic.Int32
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := repo.VerificationCode().Consume(ctx, "123456", "+919960775814"); err == nil {
					successes.Add(1)
				}
			}()
		}
		wg.Wait()

		if got := successes.Load(); got != 1 {
			t.Errorf("Expected exactly 1 successful consume, got %d", got)
		}
	})
}

func TestRepository_WithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("transaction sees and mutates the same state", func(t *testing.T) {
		repo := NewStore().Repository()

		err := repo.WithTransaction(ctx, func(tx repositories.Repository) error {
			user := &models.User{Name: "Ram Kumar", Phone: "+919876543210"}
			if err := tx.User().Create(ctx, user); err != nil {
				return err
			}
			got, err := tx.User().GetByID(ctx, user.ID)
			if err != nil {
				return err
			}
			got.EcoScore = 10
			return tx.User().Update(ctx, got)
		})
		if err != nil {
			t.Fatalf("WithTransaction failed: %v", err)
		}

		user, _ := repo.User().GetByID(ctx, 1)
		if user.EcoScore != 10 {
			t.Errorf("Expected ecoscore 10 after transaction, got %d", user.EcoScore)
		}
	})

	t.Run("nested transactions reuse the held lock", func(t *testing.T) {
		repo := NewStore().Repository()

		done := make(chan error, 1)
		go func() {
			done <- repo.WithTransaction(ctx, func(tx repositories.Repository) error {
				return tx.WithTransaction(ctx, func(inner repositories.Repository) error {
					return inner.User().Create(ctx, &models.User{Name: "Ram Kumar", Phone: "+919876543210"})
				})
			})
		}()

		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("Nested transaction failed: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("Nested transaction deadlocked")
		}
	})

	t.Run("concurrent transactions serialize", func(t *testing.T) {
		repo := NewStore().Repository()

		const n = 20
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				err := repo.WithTransaction(ctx, func(tx repositories.Repository) error {
					count, err := tx.User().Count(ctx)
					if err != nil {
						return err
					}
					return tx.User().Create(ctx, &models.User{
						Name:  fmt.Sprintf("User %d", count+1),
						Phone: fmt.Sprintf("+9190000000%02d", i),
					})
				})
				if err != nil {
					t.Errorf("WithTransaction failed: %v", err)
				}
			}(i)
		}
		wg.Wait()

		users, _ := repo.User().List(ctx)
		if len(users) != n {
			t.Fatalf("Expected %d users, got %d", n, len(users))
		}
		seen := make(map[int]bool)
		for _, u := range users {
			if seen[u.ID] {
				t.Errorf("Duplicate id %d", u.ID)
			}
			seen[u.ID] = true
		}
	})
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	store.SeedDemoData()
	repo := store.Repository()

	users, _ := repo.User().Count(ctx)
	if users != 3 {
		t.Errorf("Expected 3 seeded users, got %d", users)
	}
	waste, _ := repo.Waste().Count(ctx)
	if waste != 4 {
		t.Errorf("Expected 4 seeded waste records, got %d", waste)
	}
	codes, _ := repo.VerificationCode().List(ctx)
	if len(codes) != 2 {
		t.Errorf("Expected 2 seeded codes, got %d", len(codes))
	}
	for _, c := range codes {
		if c.Used {
			t.Errorf("Expected seeded code %s to be unused", c.Code)
		}
	}

	// Seeding and sequential id assignment stay consistent.
	user := &models.User{Name: "New Villager", Phone: "+919111111111"}
	if err := repo.User().Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.ID != 4 {
		t.Errorf("Expected id 4 after seed, got %d", user.ID)
	}
}
