package memory

import (
	"time"

	"github.com/ecogaon/waste-ledger-service/internal/models"
)

// SeedDemoData loads the demo village fixtures: three households, their past
// drop-offs, and two unused operator codes.
func (s *Store) SeedDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users,
		models.User{
			ID: 1, Name: "Ram Kumar", Phone: "+919876543210", Role: models.RoleHousehold,
			EcoScore: 85, TotalWaste: 156.5, TotalPoints: 1565, RegisteredAt: "2024-01-01",
		},
		models.User{
			ID: 2, Name: "Sita Devi", Phone: "+919876543211", Role: models.RoleHousehold,
			EcoScore: 92, TotalWaste: 245.2, TotalPoints: 2452, RegisteredAt: "2024-01-02",
		},
		models.User{
			ID: 3, Name: "Ramesh Singh", Phone: "+919876543212", Role: models.RoleHousehold,
			EcoScore: 78, TotalWaste: 198.7, TotalPoints: 1987, RegisteredAt: "2024-01-03",
		},
	)

	s.waste = append(s.waste,
		models.WasteRecord{ID: 1, UserID: 1, Location: "Dumping Point 1", Amount: 12.5, Type: "Kitchen Waste", Date: "2024-01-15", Points: 125},
		models.WasteRecord{ID: 2, UserID: 1, Location: "Dumping Point 2", Amount: 8.2, Type: "Garden Waste", Date: "2024-01-14", Points: 82},
		models.WasteRecord{ID: 3, UserID: 2, Location: "Dumping Point 1", Amount: 15.3, Type: "Mixed Organic", Date: "2024-01-15", Points: 153},
		models.WasteRecord{ID: 4, UserID: 3, Location: "Dumping Point 3", Amount: 11.8, Type: "Garden Waste", Date: "2024-01-14", Points: 118},
	)

	now := time.Now().UTC()
	s.codes = append(s.codes,
		models.VerificationCode{Code: "123456", OperatorPhone: "+919960775814", CreatedAt: now, Used: false},
		models.VerificationCode{Code: "789012", OperatorPhone: "+917028911914", CreatedAt: now, Used: false},
	)
}
