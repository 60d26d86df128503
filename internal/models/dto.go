package models

// ===== ERROR RESPONSES =====

// ErrorResponse is the only error envelope on the wire: {"error": "<message>"}.
// No codes, no structured fields, no stack traces.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ===== MUTATION RESPONSES =====

type RegisterResponse struct {
	Success bool  `json:"success"`
	User    *User `json:"user"`
}

type GenerateCodeResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
}

type VerifyCodeResponse struct {
	Success bool `json:"success"`
	Valid   bool `json:"valid"`
}

type WasteResponse struct {
	Success bool         `json:"success"`
	Record  *WasteRecord `json:"record"`
}

// ===== QUERY RESPONSES =====

type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	Name     string  `json:"name"`
	Waste    float64 `json:"waste"`
	EcoScore int     `json:"ecoscore"`
}

type UserProfile struct {
	User
	Rank         int           `json:"rank"`
	WasteHistory []WasteRecord `json:"wasteHistory"`
}

type TopContributor struct {
	Name string  `json:"name"`
	Kg   float64 `json:"kg"`
}

type VillageStats struct {
	Villages        int              `json:"villages"`
	TotalKg         int              `json:"totalKg"`
	TopContributors []TopContributor `json:"topContributors"`
}

type UserStats struct {
	TotalUsers          int              `json:"totalUsers"`
	RoleStats           map[UserRole]int `json:"roleStats"`
	RecentRegistrations []User           `json:"recentRegistrations"`
}

type ServiceStatus struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	TotalUsers int    `json:"totalUsers"`
}
