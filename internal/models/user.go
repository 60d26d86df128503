package models

type UserRole string

const (
	RoleHousehold       UserRole = "household"
	RoleFarmer          UserRole = "farmer"
	RoleBuyer           UserRole = "buyer"
	RoleKrushikendra    UserRole = "krushikendra"
	RoleAdmin           UserRole = "admin"
	RoleTruckDriver     UserRole = "truck_driver"
	RoleCompostOperator UserRole = "compost_operator"
	RoleDumpingManager  UserRole = "dumping_manager"
)

// DefaultRole is assigned when a registration omits the role field.
const DefaultRole = RoleHousehold

var validRoles = map[UserRole]bool{
	RoleHousehold:       true,
	RoleFarmer:          true,
	RoleBuyer:           true,
	RoleKrushikendra:    true,
	RoleAdmin:           true,
	RoleTruckDriver:     true,
	RoleCompostOperator: true,
	RoleDumpingManager:  true,
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

// User is a registered program participant. Aggregates (TotalWaste, TotalPoints,
// EcoScore) are mutated only by waste recording; everything else is immutable
// after registration. Users are never deleted.
type User struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Role         UserRole `json:"role"`
	EcoScore     int      `json:"ecoscore"`
	TotalWaste   float64  `json:"totalWaste"`
	TotalPoints  int      `json:"totalPoints"`
	RegisteredAt string   `json:"registeredAt"` // calendar date, YYYY-MM-DD
}
