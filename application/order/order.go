// Package order coordinates order and bid submissions against the marketplace
// backend. Each submission runs Validating -> Submitting -> terminal state,
// makes at most one network call, and degrades to the local fallback store
// when the backend is unreachable. Fallback results are always labeled so a
// demo record can never be presented as a real one.
package order

import (
	"context"
	"fmt"
	"time"

	appauction "github.com/muhammadheryan/scrapmarket/application/auction"
	"github.com/muhammadheryan/scrapmarket/application/pricing"
	"github.com/muhammadheryan/scrapmarket/constant"
	"github.com/muhammadheryan/scrapmarket/model"
	mockorderrepo "github.com/muhammadheryan/scrapmarket/repository/mockorder"
	"github.com/muhammadheryan/scrapmarket/thirdparty/backendapi"
	"github.com/muhammadheryan/scrapmarket/thirdparty/rabbitmq"
	"github.com/muhammadheryan/scrapmarket/utils/errors"
	"github.com/muhammadheryan/scrapmarket/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	PlaceOrder(ctx context.Context, buyer *model.Buyer, req *model.PlaceOrderRequest) (*model.OrderResult, error)
	PlaceBid(ctx context.Context, buyer *model.Buyer, listingID uint64, amount float64) (*model.BidResult, error)
	History(ctx context.Context, buyer *model.Buyer) (*model.OrderHistoryResponse, error)
}

type orderAppImpl struct {
	backend   backendapi.Client
	mockRepo  mockorderrepo.Repository
	resolver  appauction.Resolver
	publisher *rabbitmq.Publisher
}

func NewOrderApp(backend backendapi.Client, mockRepo mockorderrepo.Repository, resolver appauction.Resolver, publisher *rabbitmq.Publisher) OrderApp {
	return &orderAppImpl{
		backend:   backend,
		mockRepo:  mockRepo,
		resolver:  resolver,
		publisher: publisher,
	}
}

func (s *orderAppImpl) PlaceOrder(ctx context.Context, buyer *model.Buyer, req *model.PlaceOrderRequest) (*model.OrderResult, error) {
	listing, err := s.backend.GetListingByID(ctx, req.ListingID)
	if err != nil {
		logger.Error("[PlaceOrder] get listing", zap.Uint64("listing_id", req.ListingID), zap.String("error", err.Error()))
		return nil, err
	}

	// Validating: local checks happen before any order call is made
	if err := pricing.ValidateOrderQuantity(req.Quantity, listing.MinOrderQuantity); err != nil {
		if errors.IsType(err, constant.ErrBelowMinimum) {
			minimum := pricing.MinimumQuantity(listing.MinOrderQuantity)
			return nil, errors.SetCustomErrorMessage(constant.ErrBelowMinimum,
				fmt.Sprintf("please order at least %g %s", minimum, listing.QuantityUnit))
		}
		return nil, err
	}

	unitPrice := listing.UnitPrice()
	total, _ := pricing.EstimatedTotal(req.Quantity, unitPrice)
	totalPrice := pricing.Round2(total)

	// Submitting: exactly one backend call
	created, err := s.backend.CreateOrder(ctx, &model.CreateOrderPayload{
		ListingID:  listing.ID,
		Quantity:   req.Quantity,
		TotalPrice: totalPrice,
	})
	if err == nil {
		s.publishOrderPlaced(fmt.Sprintf("%d", created.ID), listing.ID, buyer.ID, totalPrice, false)
		return &model.OrderResult{
			Order:   created,
			Message: "Order placed successfully! Check your dashboard for updates.",
		}, nil
	}

	// backend business rejection is terminal, no fallback; same for an
	// unauthorized call, where the buyer must re-authenticate rather than
	// receive a demo order
	if errors.IsType(err, constant.ErrValidation) || errors.IsType(err, constant.ErrUnauthorize) {
		logger.Info("[PlaceOrder] backend rejected order",
			zap.Uint64("listing_id", listing.ID), zap.String("reason", err.Error()))
		return nil, err
	}

	logger.Warn("[PlaceOrder] backend unavailable, writing fallback order",
		zap.Uint64("listing_id", listing.ID), zap.String("error", err.Error()))

	mockOrder, mockErr := s.mockRepo.Create(&mockorderrepo.CreateMockOrderItem{
		ListingID:    listing.ID,
		ListingTitle: listing.Title,
		BuyerEmail:   buyer.Email,
		Quantity:     req.Quantity,
		Unit:         listing.QuantityUnit,
		PricePerUnit: unitPrice,
		TotalPrice:   totalPrice,
	})
	if mockErr != nil {
		logger.Error("[PlaceOrder] fallback store failed", zap.String("error", mockErr.Error()))
		// surface the most specific message available
		return nil, errors.SetCustomErrorMessage(constant.ErrInternal, mockErr.Error())
	}

	s.publishOrderPlaced(mockOrder.ID, listing.ID, buyer.ID, totalPrice, true)
	return &model.OrderResult{
		MockOrder: mockOrder,
		Fallback:  true,
		Message:   fmt.Sprintf("Order recorded for demo use (Order #%s). We will notify the seller shortly.", mockOrder.ID),
	}, nil
}

func (s *orderAppImpl) PlaceBid(ctx context.Context, buyer *model.Buyer, listingID uint64, amount float64) (*model.BidResult, error) {
	listing, err := s.backend.GetListingByID(ctx, listingID)
	if err != nil {
		logger.Error("[PlaceBid] get listing", zap.Uint64("listing_id", listingID), zap.String("error", err.Error()))
		return nil, err
	}
	if listing.ListingType != constant.ListingTypeAuction {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	auction := s.resolver.Resolve(ctx, listing)

	// Validating: a too-low bid never reaches the network
	baseline := pricing.BidBaseline(auction)
	if err := pricing.ValidateBid(amount, baseline); err != nil {
		if errors.IsType(err, constant.ErrBidTooLow) {
			return nil, errors.SetCustomErrorMessage(constant.ErrBidTooLow,
				fmt.Sprintf("please enter a bid greater than %.2f", pricing.MinimumBid(baseline)))
		}
		return nil, err
	}

	// a synthetic auction has no backend record to bid against
	if auction.Synthetic() {
		return &model.BidResult{
			Amount:   amount,
			Fallback: true,
			Message:  "Bid recorded for demo purposes.",
		}, nil
	}

	bid, err := s.backend.PlaceBid(ctx, auction.ID, amount)
	if err == nil {
		return &model.BidResult{
			Bid:     bid,
			Amount:  amount,
			Message: "Bid placed successfully!",
		}, nil
	}

	// server-side rejection is terminal, surfaced verbatim; an unauthorized
	// call is terminal too so the buyer re-authenticates instead of getting
	// a demo-labeled success
	if errors.IsType(err, constant.ErrBidRejected) || errors.IsType(err, constant.ErrUnauthorize) {
		logger.Info("[PlaceBid] backend rejected bid",
			zap.Uint64("auction_id", auction.ID), zap.String("reason", err.Error()))
		return nil, err
	}

	// backend unreachable: report a labeled fallback success instead of the
	// old unlabeled optimistic one, mirroring the order path
	logger.Warn("[PlaceBid] backend unavailable, recording demo bid",
		zap.Uint64("auction_id", auction.ID), zap.String("error", err.Error()))
	return &model.BidResult{
		Amount:   amount,
		Fallback: true,
		Message:  "Bid recorded for demo purposes.",
	}, nil
}

// History merges the buyer's backend orders with locally stored demo orders.
// A backend failure degrades to demo-only history instead of an error.
func (s *orderAppImpl) History(ctx context.Context, buyer *model.Buyer) (*model.OrderHistoryResponse, error) {
	items := make([]model.OrderHistoryItem, 0)

	backendOrders, err := s.backend.GetOrdersForBuyer(ctx)
	if err != nil {
		logger.Warn("[History] backend orders unavailable", zap.String("error", err.Error()))
	} else {
		for _, o := range backendOrders {
			items = append(items, model.OrderHistoryItem{
				ID:         fmt.Sprintf("%d", o.ID),
				ListingID:  o.ListingID,
				Quantity:   o.Quantity,
				TotalPrice: o.TotalPrice,
				Status:     o.Status,
				CreatedAt:  o.CreatedAt,
			})
		}
	}

	mockOrders, err := s.mockRepo.GetForBuyer(buyer.Email)
	if err != nil {
		logger.Error("[History] mock order store failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	for _, m := range mockOrders {
		items = append(items, model.OrderHistoryItem{
			ID:           m.ID,
			ListingID:    m.ListingID,
			ListingTitle: m.ListingTitle,
			Quantity:     m.Quantity,
			Unit:         m.Unit,
			TotalPrice:   m.TotalPrice,
			Status:       constant.OrderStatusPending,
			Demo:         true,
			CreatedAt:    m.CreatedAt,
		})
	}

	return &model.OrderHistoryResponse{Items: items}, nil
}

func (s *orderAppImpl) publishOrderPlaced(orderID string, listingID, buyerID uint64, totalPrice float64, demo bool) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.OrderPlacedMessage{
		OrderID:    orderID,
		ListingID:  listingID,
		BuyerID:    buyerID,
		TotalPrice: totalPrice,
		Demo:       demo,
		PlacedAt:   time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderPlaced(msg); err != nil {
		logger.Error("[publishOrderPlaced] publish failed", zap.String("order_id", orderID), zap.String("error", err.Error()))
	}
}
