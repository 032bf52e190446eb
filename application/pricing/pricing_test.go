package pricing_test

import (
	"errors"
	"math"
	"testing"

	"github.com/muhammadheryan/scrapmarket/application/pricing"
	"github.com/muhammadheryan/scrapmarket/constant"
	"github.com/muhammadheryan/scrapmarket/model"
	cerr "github.com/muhammadheryan/scrapmarket/utils/errors"
)

func assertErrType(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorType() != want {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestValidateOrderQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		minQty   float64
		wantErr  constant.ErrorType
	}{
		{name: "error: zero quantity", quantity: 0, minQty: 1, wantErr: constant.ErrInvalidNumber},
		{name: "error: negative quantity", quantity: -3, minQty: 1, wantErr: constant.ErrInvalidNumber},
		{name: "error: NaN quantity", quantity: math.NaN(), minQty: 1, wantErr: constant.ErrInvalidNumber},
		{name: "error: infinite quantity", quantity: math.Inf(1), minQty: 1, wantErr: constant.ErrInvalidNumber},
		{name: "error: below listing minimum", quantity: 4, minQty: 5, wantErr: constant.ErrBelowMinimum},
		{name: "error: below implicit minimum of one", quantity: 0.5, minQty: 0, wantErr: constant.ErrBelowMinimum},
		{name: "success: exactly at minimum", quantity: 5, minQty: 5, wantErr: constant.Successful},
		{name: "success: above minimum", quantity: 7.5, minQty: 5, wantErr: constant.Successful},
		{name: "success: minimum defaults to one", quantity: 1, minQty: 0, wantErr: constant.Successful},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := pricing.ValidateOrderQuantity(tt.quantity, tt.minQty)
			if tt.wantErr == constant.Successful {
				if err != nil {
					t.Fatalf("ValidateOrderQuantity() error = %v, want nil", err)
				}
				return
			}
			assertErrType(t, err, tt.wantErr)
		})
	}
}

func TestMinimumBid(t *testing.T) {
	if got := pricing.MinimumBid(100); got != 101 {
		t.Fatalf("MinimumBid(100) = %v, want 101", got)
	}
	if got := pricing.MinimumBid(0); got != 0 {
		t.Fatalf("MinimumBid(0) = %v, want 0", got)
	}
	if got := pricing.MinimumBid(-50); got != 0 {
		t.Fatalf("MinimumBid(-50) = %v, want 0", got)
	}
}

func TestValidateBid(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		baseline float64
		wantErr  constant.ErrorType
	}{
		{name: "error: equal to minimum is too low", amount: 101, baseline: 100, wantErr: constant.ErrBidTooLow},
		{name: "error: below baseline", amount: 90, baseline: 100, wantErr: constant.ErrBidTooLow},
		{name: "error: NaN amount", amount: math.NaN(), baseline: 100, wantErr: constant.ErrInvalidNumber},
		{name: "error: zero bid with zero baseline", amount: 0, baseline: 0, wantErr: constant.ErrBidTooLow},
		{name: "success: strictly above minimum", amount: 101.01, baseline: 100, wantErr: constant.Successful},
		{name: "success: any positive bid bootstraps zero baseline", amount: 1, baseline: 0, wantErr: constant.Successful},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := pricing.ValidateBid(tt.amount, tt.baseline)
			if tt.wantErr == constant.Successful {
				if err != nil {
					t.Fatalf("ValidateBid() error = %v, want nil", err)
				}
				return
			}
			assertErrType(t, err, tt.wantErr)
		})
	}
}

func TestEstimatedTotal(t *testing.T) {
	total, ok := pricing.EstimatedTotal(3.5, 200)
	if !ok || total != 700 {
		t.Fatalf("EstimatedTotal(3.5, 200) = %v, %v, want 700, true", total, ok)
	}
	if got := pricing.Round2(total); got != 700.00 {
		t.Fatalf("Round2(%v) = %v, want 700.00", total, got)
	}

	if _, ok := pricing.EstimatedTotal(0, 200); ok {
		t.Fatal("EstimatedTotal(0, 200) should not produce a total")
	}
	if _, ok := pricing.EstimatedTotal(math.NaN(), 200); ok {
		t.Fatal("EstimatedTotal(NaN, 200) should not produce a total")
	}
	if _, ok := pricing.EstimatedTotal(-1, 200); ok {
		t.Fatal("EstimatedTotal(-1, 200) should not produce a total")
	}
}

func TestBidBaseline(t *testing.T) {
	if got := pricing.BidBaseline(nil); got != 0 {
		t.Fatalf("BidBaseline(nil) = %v, want 0", got)
	}
	if got := pricing.BidBaseline(&model.Auction{CurrentHighestBid: 120, StartingBid: 100}); got != 120 {
		t.Fatalf("BidBaseline() = %v, want 120", got)
	}
	if got := pricing.BidBaseline(&model.Auction{StartingBid: 100}); got != 100 {
		t.Fatalf("BidBaseline() = %v, want 100", got)
	}
	if got := pricing.BidBaseline(&model.Auction{}); got != 0 {
		t.Fatalf("BidBaseline() = %v, want 0", got)
	}
}
