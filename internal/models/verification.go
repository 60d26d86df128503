package models

import "time"

// VerificationCode is a one-time token issued by a dumping point operator.
// Codes are not globally unique and are never pruned; Used flips to true at
// most once, on verification or on an actual waste submission.
type VerificationCode struct {
	Code          string    `json:"code"`
	OperatorPhone string    `json:"operatorPhone"`
	CreatedAt     time.Time `json:"createdAt"`
	Used          bool      `json:"used"`
}
