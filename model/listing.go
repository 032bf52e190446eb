package model

import (
	"time"

	"github.com/muhammadheryan/scrapmarket/constant"
)

// Listing is a sellable lot of waste material or machinery as served by the
// marketplace backend. The gateway never mutates listings.
type Listing struct {
	ID               uint64                 `json:"id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description,omitempty"`
	MaterialName     string                 `json:"material_name"`
	Category         string                 `json:"category,omitempty"`
	Quantity         float64                `json:"quantity"`
	QuantityUnit     string                 `json:"quantity_unit"`
	Price            float64                `json:"price"`
	PricePerUnit     float64                `json:"price_per_unit,omitempty"`
	ListingType      constant.ListingType   `json:"listing_type"`
	MinOrderQuantity float64                `json:"min_order_quantity,omitempty"`
	Status           constant.ListingStatus `json:"status"`
	Location         string                 `json:"location"`
	SellerID         uint64                 `json:"seller_id"`
	SellerCompany    string                 `json:"seller_company,omitempty"`
	Views            int64                  `json:"views"`
	Inquiries        int64                  `json:"inquiries,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

// UnitPrice returns the effective per-unit price. Older backend payloads carry
// price_per_unit instead of price, so both fields are checked.
func (l *Listing) UnitPrice() float64 {
	if l.Price > 0 {
		return l.Price
	}
	return l.PricePerUnit
}

type ListingListResponse struct {
	Items      []Listing `json:"items"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}

// ListingDetailResponse is the listing detail payload served by the gateway.
// Auction is only set for auction listings; Synthetic mirrors the auction
// source tag so clients cannot treat computed data as persistent.
type ListingDetailResponse struct {
	Listing   *Listing `json:"listing"`
	Auction   *Auction `json:"auction,omitempty"`
	Synthetic bool     `json:"synthetic_auction,omitempty"`
}
