package auction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appauction "github.com/muhammadheryan/scrapmarket/application/auction"
	"github.com/muhammadheryan/scrapmarket/cmd/config"
	"github.com/muhammadheryan/scrapmarket/constant"
	backendmocks "github.com/muhammadheryan/scrapmarket/mocks/thirdparty/backendapi"
	"github.com/muhammadheryan/scrapmarket/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func auctionConfig(useRealAPI bool) *config.Config {
	return &config.Config{
		Auction: config.AuctionConfig{
			UseRealAuctionAPI: useRealAPI,
			SyntheticWindow:   6 * time.Hour,
		},
	}
}

func TestResolver_NonAuctionListing(t *testing.T) {
	backend := backendmocks.NewClient(t)
	resolver := appauction.NewResolver(auctionConfig(true), backend)

	listing := &model.Listing{ID: 1, ListingType: constant.ListingTypeFixedPrice}
	require.Nil(t, resolver.Resolve(context.Background(), listing))
	require.Nil(t, resolver.Resolve(context.Background(), nil))
}

func TestResolver_SynthesizesWhenAPIDisabled(t *testing.T) {
	backend := backendmocks.NewClient(t)
	resolver := appauction.NewResolver(auctionConfig(false), backend)

	listing := &model.Listing{
		ID:          7,
		ListingType: constant.ListingTypeAuction,
		Price:       1000,
		Views:       30,
	}

	before := time.Now()
	auction := resolver.Resolve(context.Background(), listing)
	require.NotNil(t, auction)

	require.Equal(t, uint64(0), auction.ID, "synthetic auction must not carry an id")
	require.Equal(t, constant.AuctionSourceSynthetic, auction.Source)
	require.True(t, auction.Synthetic())
	require.Equal(t, uint64(7), auction.ListingID)
	require.Equal(t, 1020.0, auction.StartingBid)
	require.Equal(t, 1080.0, auction.CurrentHighestBid)
	require.Equal(t, int64(10), auction.TotalBids)
	require.True(t, auction.IsActive)
	require.WithinDuration(t, before.Add(6*time.Hour), auction.EndTime, 5*time.Second)
}

func TestResolver_UsesBackendWhenEnabled(t *testing.T) {
	backend := backendmocks.NewClient(t)
	fetched := &model.Auction{
		ID:                42,
		ListingID:         7,
		StartingBid:       500,
		CurrentHighestBid: 620,
		Source:            constant.AuctionSourceBackend,
	}
	backend.On("GetAuctionByListingID", mock.Anything, uint64(7)).Return(fetched, nil).Once()

	resolver := appauction.NewResolver(auctionConfig(true), backend)
	listing := &model.Listing{ID: 7, ListingType: constant.ListingTypeAuction, Price: 1000}

	auction := resolver.Resolve(context.Background(), listing)
	require.Equal(t, fetched, auction)
	require.False(t, auction.Synthetic())
}

func TestResolver_SynthesizesOnFetchFailure(t *testing.T) {
	backend := backendmocks.NewClient(t)
	backend.On("GetAuctionByListingID", mock.Anything, uint64(7)).
		Return(nil, errors.New("auction not found")).Once()

	resolver := appauction.NewResolver(auctionConfig(true), backend)
	listing := &model.Listing{ID: 7, ListingType: constant.ListingTypeAuction, Price: 1000, Views: 30}

	auction := resolver.Resolve(context.Background(), listing)
	require.NotNil(t, auction, "resolver must never fail")
	require.True(t, auction.Synthetic())
	require.Equal(t, 1020.0, auction.StartingBid)
	require.Equal(t, 1080.0, auction.CurrentHighestBid)
}

func TestResolver_SyntheticDefaults(t *testing.T) {
	backend := backendmocks.NewClient(t)
	resolver := appauction.NewResolver(auctionConfig(false), backend)

	// views default to 10: round(10/3) = 3, clamped to the minimum of 5
	listing := &model.Listing{ID: 3, ListingType: constant.ListingTypeAuction, PricePerUnit: 200}
	auction := resolver.Resolve(context.Background(), listing)
	require.Equal(t, int64(5), auction.TotalBids)
	require.Equal(t, 204.0, auction.StartingBid)
	require.Equal(t, 216.0, auction.CurrentHighestBid)

	// zero price listing synthesizes a zero baseline: any positive bid is valid
	free := &model.Listing{ID: 4, ListingType: constant.ListingTypeAuction}
	auction = resolver.Resolve(context.Background(), free)
	require.Equal(t, 0.0, auction.StartingBid)
	require.Equal(t, 0.0, auction.CurrentHighestBid)
}
