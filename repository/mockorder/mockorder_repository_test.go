package mockorder_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/muhammadheryan/scrapmarket/repository/mockorder"
	"github.com/stretchr/testify/require"
)

func TestFileStore_CreateAndGetForBuyer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mock_orders.json")
	repo, err := mockorder.NewRepository(path)
	require.NoError(t, err)

	created, err := repo.Create(&mockorder.CreateMockOrderItem{
		ListingID:    12,
		ListingTitle: "HDPE Regrind",
		BuyerEmail:   "buyer@example.com",
		Quantity:     5,
		Unit:         "tons",
		PricePerUnit: 50,
		TotalPrice:   250,
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(created.ID, "DEMO-"), "mock order id must carry the demo prefix, got %s", created.ID)

	orders, err := repo.GetForBuyer("buyer@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, 250.0, orders[0].TotalPrice)

	// other buyers never see the record
	others, err := repo.GetForBuyer("someone@else.com")
	require.NoError(t, err)
	require.Empty(t, others)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mock_orders.json")

	repo, err := mockorder.NewRepository(path)
	require.NoError(t, err)
	_, err = repo.Create(&mockorder.CreateMockOrderItem{
		ListingID:  3,
		BuyerEmail: "buyer@example.com",
		Quantity:   2,
		TotalPrice: 100,
	})
	require.NoError(t, err)

	reopened, err := mockorder.NewRepository(path)
	require.NoError(t, err)
	orders, err := reopened.GetForBuyer("buyer@example.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestFileStore_RequiresBuyerIdentity(t *testing.T) {
	repo, err := mockorder.NewRepository(filepath.Join(t.TempDir(), "mock_orders.json"))
	require.NoError(t, err)

	_, err = repo.Create(&mockorder.CreateMockOrderItem{ListingID: 1, Quantity: 1})
	require.Error(t, err)

	all, err := repo.All()
	require.NoError(t, err)
	require.Empty(t, all)
}
