package constant

type ListingType string

const (
	ListingTypeFixedPrice ListingType = "fixed_price"
	ListingTypeAuction    ListingType = "auction"
)

type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "active"
	ListingStatusSold     ListingStatus = "sold"
	ListingStatusInactive ListingStatus = "inactive"
)
