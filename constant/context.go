package constant

type ContextKey string

const (
	BuyerIDKey      ContextKey = "buyer_id"
	BuyerEmailKey   ContextKey = "buyer_email"
	BackendTokenKey ContextKey = "backend_token"
)
