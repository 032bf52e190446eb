package constant

// AuctionSource tags where an auction record came from. Synthetic auctions are
// computed on the gateway when the backend has no live record; they carry no id
// and are never persisted.
type AuctionSource string

const (
	AuctionSourceBackend   AuctionSource = "backend"
	AuctionSourceSynthetic AuctionSource = "synthetic"
)
