package model

// Buyer identifies the authenticated buyer for a submission. Email doubles as
// the fallback-storage key so demo orders can be retrieved later.
type Buyer struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}

// Session is what the gateway keeps per login: the buyer identity plus the
// backend-issued token used for upstream calls.
type Session struct {
	BuyerID      uint64 `json:"buyer_id"`
	Email        string `json:"email"`
	BackendToken string `json:"backend_token"`
}

// LoginRequest accepts email or username as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// BackendLoginResult is the backend auth response consumed by the gateway.
type BackendLoginResult struct {
	UserID uint64 `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"access_token"`
}
