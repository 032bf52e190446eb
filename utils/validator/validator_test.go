package validatorx_test

import (
	"math"
	"testing"

	"github.com/muhammadheryan/scrapmarket/model"
	validatorx "github.com/muhammadheryan/scrapmarket/utils/validator"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_FiniteRule(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr bool
	}{
		{name: "success: positive finite amount", amount: 120.50},
		{name: "error: positive infinity passes gt but not finite", amount: math.Inf(1), wantErr: true},
		{name: "error: NaN amount", amount: math.NaN(), wantErr: true},
		{name: "error: zero amount", amount: 0, wantErr: true},
		{name: "error: negative amount", amount: -5, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(&model.PlaceBidRequest{Amount: tt.amount})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateStruct_OrderRequest(t *testing.T) {
	require.NoError(t, validatorx.ValidateStruct(&model.PlaceOrderRequest{ListingID: 12, Quantity: 5}))
	require.Error(t, validatorx.ValidateStruct(&model.PlaceOrderRequest{ListingID: 12, Quantity: math.Inf(1)}))
	require.Error(t, validatorx.ValidateStruct(&model.PlaceOrderRequest{Quantity: 5}), "listing id is required")
}
