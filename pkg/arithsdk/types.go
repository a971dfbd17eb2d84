package arithsdk

import "time"

// RegisterRequest is the body of POST /v1/register.
type RegisterRequest struct {
	Username string  `json:"username" example:"alice"`
	Password string  `json:"password" example:"correct-horse"`
	Email    *string `json:"email,omitempty" example:"alice@example.com"`
}

// RegisterResponse is returned by POST /v1/register. It carries a token so a
// new user can start calling the API straight away.
type RegisterResponse struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	TokenResponse
}

// TokenResponse is returned by POST /v1/token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type" example:"bearer"`
	ExpiresIn   int64     `json:"expires_in" example:"1800"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// LoginRequest is the JSON form of POST /v1/token. The endpoint also accepts
// application/x-www-form-urlencoded with the same field names.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BinaryRequest is the body of /v1/add, /v1/subtract and /v1/multiply.
type BinaryRequest struct {
	Num1 *float64 `json:"num1" validate:"required" example:"2"`
	Num2 *float64 `json:"num2" validate:"required" example:"3"`
}

// UnaryRequest is the body of /v1/sqrt.
type UnaryRequest struct {
	Number *float64 `json:"number" validate:"required" example:"16"`
}

// OperationResponse is the result of one arithmetic call.
type OperationResponse struct {
	Operation string    `json:"operation" example:"add"`
	Operands  []float64 `json:"operands"`
	Result    float64   `json:"result" example:"5"`
}

// HistoryEntry is one recorded operation.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	Operation string    `json:"operation"`
	Operands  []float64 `json:"operands"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse lists the caller's operations oldest first.
type HistoryResponse struct {
	Operations []HistoryEntry `json:"operations"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
