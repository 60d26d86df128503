package validator

// RegisterRequest is the registration payload. Field checks run in order in
// the registration service (first failure wins), so the struct carries no
// validation tags of its own.
type RegisterRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// GenerateCodeRequest asks for a one-time code on behalf of an operator.
type GenerateCodeRequest struct {
	OperatorPhone string `json:"operatorPhone" validate:"required"`
}

// VerifyCodeRequest consumes a previously issued code.
type VerifyCodeRequest struct {
	Code          string `json:"code" validate:"required"`
	OperatorPhone string `json:"operatorPhone" validate:"required"`
}

// WasteSubmitRequest records a waste drop-off. Every field is required; a zero
// amount counts as missing, same as the original truthiness check.
type WasteSubmitRequest struct {
	UserID        int     `json:"userId" validate:"required"`
	Location      string  `json:"location" validate:"required"`
	Amount        float64 `json:"amount" validate:"required"`
	Type          string  `json:"type" validate:"required"`
	Verification  string  `json:"verification" validate:"required"`
	OperatorPhone string  `json:"operatorPhone" validate:"required"`
}
