package model

import (
	"time"

	"github.com/muhammadheryan/scrapmarket/constant"
)

// Auction is the bidding state attached to an auction listing. Source tells
// whether the record came from the backend or was synthesized on the gateway.
// Synthetic auctions always have ID == 0.
type Auction struct {
	ID                uint64                 `json:"id,omitempty"`
	ListingID         uint64                 `json:"listing_id"`
	StartingBid       float64                `json:"starting_bid"`
	CurrentHighestBid float64                `json:"current_highest_bid"`
	EndTime           time.Time              `json:"end_time"`
	TotalBids         int64                  `json:"total_bids"`
	IsActive          bool                   `json:"is_active"`
	SellerCompany     string                 `json:"seller_company,omitempty"`
	Source            constant.AuctionSource `json:"source"`
}

// Synthetic reports whether this auction was computed locally and therefore
// cannot accept a backend bid.
func (a *Auction) Synthetic() bool {
	return a.Source == constant.AuctionSourceSynthetic
}

// Bid is a buyer's offer against an auction.
type Bid struct {
	ID        uint64    `json:"id"`
	AuctionID uint64    `json:"auction_id"`
	BidderID  uint64    `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	IsWinning bool      `json:"is_winning"`
	CreatedAt time.Time `json:"created_at"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0,finite"`
}

// BidResult is the terminal state of a bid submission. Fallback marks a
// demo-labeled success: the bid was accepted locally but never reached the
// backend, either because the auction was synthetic or because the backend
// call failed.
type BidResult struct {
	Bid      *Bid    `json:"bid,omitempty"`
	Amount   float64 `json:"amount"`
	Fallback bool    `json:"demo"`
	Message  string  `json:"message"`
}
