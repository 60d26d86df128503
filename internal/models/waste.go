package models

// WasteRecord is an immutable waste drop-off event. UserID is a best-effort
// reference: a record may outlive the lookup that created it (orphaned records
// are tolerated, not rolled back).
type WasteRecord struct {
	ID       int     `json:"id"`
	UserID   int     `json:"userId"`
	Location string  `json:"location"`
	Amount   float64 `json:"amount"` // kilograms
	Type     string  `json:"type"`
	Date     string  `json:"date"` // calendar date, YYYY-MM-DD
	Points   int     `json:"points"`
}
