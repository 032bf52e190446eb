// Package pricing holds the numeric rules shared by the order and bid flows:
// estimated totals, minimum order quantity, and the minimum bid increment.
// Everything here is a pure function; side effects belong to the coordinator.
package pricing

import (
	"math"

	"github.com/muhammadheryan/scrapmarket/constant"
	"github.com/muhammadheryan/scrapmarket/model"
	"github.com/muhammadheryan/scrapmarket/utils/errors"
)

// MinBidIncrement is the factor a new bid must strictly exceed the baseline by.
const MinBidIncrement = 1.01

// Round2 rounds to 2 decimal places for display and wire payloads. Internal
// arithmetic stays unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// EstimatedTotal returns quantity * unitPrice, unrounded. The second return is
// false when quantity is not a finite positive number, in which case no total
// applies.
func EstimatedTotal(quantity, unitPrice float64) (float64, bool) {
	if !finite(quantity) || quantity <= 0 {
		return 0, false
	}
	return quantity * unitPrice, true
}

// MinimumQuantity resolves a listing's effective minimum order quantity. An
// absent or zero minimum defaults to 1.
func MinimumQuantity(minOrderQuantity float64) float64 {
	return math.Max(1, minOrderQuantity)
}

// ValidateOrderQuantity checks a requested quantity against the listing
// minimum. A non-finite or non-positive quantity fails as an invalid number
// before the minimum is consulted.
func ValidateOrderQuantity(quantity, minOrderQuantity float64) error {
	if !finite(quantity) || quantity <= 0 {
		return errors.SetCustomError(constant.ErrInvalidNumber)
	}
	if quantity < MinimumQuantity(minOrderQuantity) {
		return errors.SetCustomError(constant.ErrBelowMinimum)
	}
	return nil
}

// MinimumBid returns the amount a new bid must strictly exceed. A zero or
// negative baseline has no floor: any positive bid bootstraps the auction.
func MinimumBid(baseline float64) float64 {
	if baseline > 0 {
		return baseline * MinBidIncrement
	}
	return 0
}

// ValidateBid checks a bid amount against the baseline. The bid must be
// strictly greater than MinimumBid(baseline).
func ValidateBid(amount, baseline float64) error {
	if !finite(amount) {
		return errors.SetCustomError(constant.ErrInvalidNumber)
	}
	if amount <= MinimumBid(baseline) {
		return errors.SetCustomError(constant.ErrBidTooLow)
	}
	return nil
}

// BidBaseline picks the amount a new bid is measured against: the current
// highest bid when one exists, else the starting bid, else zero.
func BidBaseline(auction *model.Auction) float64 {
	if auction == nil {
		return 0
	}
	if auction.CurrentHighestBid > 0 {
		return auction.CurrentHighestBid
	}
	if auction.StartingBid > 0 {
		return auction.StartingBid
	}
	return 0
}
