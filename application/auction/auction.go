package auction

import (
	"context"
	"math"
	"time"

	"github.com/muhammadheryan/scrapmarket/application/pricing"
	"github.com/muhammadheryan/scrapmarket/cmd/config"
	"github.com/muhammadheryan/scrapmarket/constant"
	"github.com/muhammadheryan/scrapmarket/model"
	"github.com/muhammadheryan/scrapmarket/thirdparty/backendapi"
	"github.com/muhammadheryan/scrapmarket/utils/logger"
	"go.uber.org/zap"
)

// synthetic auction multipliers relative to the listing unit price
const (
	syntheticStartFactor   = 1.02
	syntheticCurrentFactor = 1.08
	syntheticMinBids       = 5
	syntheticDefaultViews  = 10
)

// Resolver produces the effective auction state for a listing: the backend
// record when the auction API is enabled and reachable, else a synthesized
// stand-in derived from listing price and views. Resolve never fails; the
// caller always gets a baseline to validate bids against.
type Resolver interface {
	Resolve(ctx context.Context, listing *model.Listing) *model.Auction
	ActiveAuctions(ctx context.Context) ([]model.Auction, error)
}

type resolverImpl struct {
	config  *config.Config
	backend backendapi.Client
	now     func() time.Time
}

func NewResolver(config *config.Config, backend backendapi.Client) Resolver {
	return &resolverImpl{
		config:  config,
		backend: backend,
		now:     time.Now,
	}
}

func (s *resolverImpl) Resolve(ctx context.Context, listing *model.Listing) *model.Auction {
	if listing == nil || listing.ListingType != constant.ListingTypeAuction {
		return nil
	}

	if s.config.Auction.UseRealAuctionAPI {
		auction, err := s.backend.GetAuctionByListingID(ctx, listing.ID)
		if err == nil {
			return auction
		}
		logger.Warn("[Resolve] auction fetch failed, synthesizing",
			zap.Uint64("listing_id", listing.ID), zap.String("error", err.Error()))
	}

	return s.synthesize(listing)
}

// synthesize builds a display-only auction from listing data. The record has
// no id and must never be persisted or bid against upstream.
func (s *resolverImpl) synthesize(listing *model.Listing) *model.Auction {
	basePrice := listing.UnitPrice()

	views := listing.Views
	if views == 0 {
		views = syntheticDefaultViews
	}
	totalBids := int64(math.Round(float64(views) / 3))
	if totalBids < syntheticMinBids {
		totalBids = syntheticMinBids
	}

	window := s.config.Auction.SyntheticWindow
	if window <= 0 {
		window = 6 * time.Hour
	}

	return &model.Auction{
		ListingID:         listing.ID,
		StartingBid:       pricing.Round2(basePrice * syntheticStartFactor),
		CurrentHighestBid: pricing.Round2(basePrice * syntheticCurrentFactor),
		EndTime:           s.now().Add(window),
		TotalBids:         totalBids,
		IsActive:          true,
		SellerCompany:     listing.SellerCompany,
		Source:            constant.AuctionSourceSynthetic,
	}
}

// ActiveAuctions proxies the live auction list from the backend.
func (s *resolverImpl) ActiveAuctions(ctx context.Context) ([]model.Auction, error) {
	auctions, err := s.backend.ListActiveAuctions(ctx)
	if err != nil {
		logger.Error("[ActiveAuctions] backend list failed", zap.String("error", err.Error()))
		return nil, err
	}
	return auctions, nil
}
