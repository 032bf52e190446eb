package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	appauction "github.com/muhammadheryan/scrapmarket/application/auction"
	apporder "github.com/muhammadheryan/scrapmarket/application/order"
	appuser "github.com/muhammadheryan/scrapmarket/application/user"
	"github.com/muhammadheryan/scrapmarket/constant"
	"github.com/muhammadheryan/scrapmarket/model"
	mockorderrepo "github.com/muhammadheryan/scrapmarket/repository/mockorder"
	"github.com/muhammadheryan/scrapmarket/thirdparty/backendapi"
	utilsContext "github.com/muhammadheryan/scrapmarket/utils/context"
	"github.com/muhammadheryan/scrapmarket/utils/errors"
	validatorx "github.com/muhammadheryan/scrapmarket/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp  appuser.UserApp
	OrderApp apporder.OrderApp
	Resolver appauction.Resolver
	Backend  backendapi.Client
	MockRepo mockorderrepo.Repository
}

func NewTransport(userApp appuser.UserApp, orderApp apporder.OrderApp, resolver appauction.Resolver, backend backendapi.Client, mockRepo mockorderrepo.Repository, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		UserApp:  userApp,
		OrderApp: orderApp,
		Resolver: resolver,
		Backend:  backend,
		MockRepo: mockRepo,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/listings", rh.ListListings).Methods(http.MethodGet)
	router.HandleFunc("/listings/{id:[0-9]+}", rh.GetListing).Methods(http.MethodGet)
	router.HandleFunc("/auctions/active", rh.ActiveAuctions).Methods(http.MethodGet)

	// protected routes
	router.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	router.HandleFunc("/orders", rh.PlaceOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders/history", rh.OrderHistory).Methods(http.MethodGet)
	router.HandleFunc("/auctions/{listing_id:[0-9]+}/bids", rh.PlaceBid).Methods(http.MethodPost)

	// internal routes (static API key, for support tooling)
	internal := router.PathPrefix("/internal/").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/v1/mock-orders", rh.ListMockOrders).Methods(http.MethodGet)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(userApp))

	return router
}

// Login handler
// @Summary Login buyer
// @Description Login with email or username, proxied to the marketplace backend
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout buyer
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListListings handler
// @Summary Browse listings
// @Tags Listings
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.ListingListResponse
// @Router /listings [get]
func (s *RestHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	res, err := s.Backend.ListListings(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetListing handler
// @Summary Listing detail with resolved auction state
// @Description For auction listings the response carries either the live
// @Description backend auction or a synthesized stand-in, tagged by source.
// @Tags Listings
// @Produce json
// @Param id path int true "Listing ID"
// @Success 200 {object} model.ListingDetailResponse
// @Failure 400 {object} errors.CustomError
// @Router /listings/{id} [get]
func (s *RestHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	listing, err := s.Backend.GetListingByID(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	detail := &model.ListingDetailResponse{Listing: listing}
	if auction := s.Resolver.Resolve(ctx, listing); auction != nil {
		detail.Auction = auction
		detail.Synthetic = auction.Synthetic()
	}

	writeSuccess(w, detail)
}

// ActiveAuctions handler
// @Summary Live auction lots
// @Tags Auctions
// @Produce json
// @Success 200 {array} model.Auction
// @Router /auctions/active [get]
func (s *RestHandler) ActiveAuctions(w http.ResponseWriter, r *http.Request) {
	auctions, err := s.Resolver.ActiveAuctions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, auctions)
}

// PlaceOrder handler
// @Summary Place an order on a fixed price listing
// @Description On backend failure the order degrades to a locally stored demo
// @Description record; the response flags this via demo=true.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PlaceOrderRequest true "Order Request"
// @Success 200 {object} model.OrderResult
// @Failure 400 {object} errors.CustomError
// @Router /orders [post]
func (s *RestHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	buyer, ok := utilsContext.GetBuyer(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.PlaceOrder(ctx, buyer, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// OrderHistory handler
// @Summary Buyer order history including demo orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.OrderHistoryResponse
// @Router /orders/history [get]
func (s *RestHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	buyer, ok := utilsContext.GetBuyer(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.OrderApp.History(ctx, buyer)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// PlaceBid handler
// @Summary Place a bid against a listing's auction
// @Tags Auctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing_id path int true "Listing ID"
// @Param request body model.PlaceBidRequest true "Bid Request"
// @Success 200 {object} model.BidResult
// @Failure 400 {object} errors.CustomError
// @Router /auctions/{listing_id}/bids [post]
func (s *RestHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	buyer, ok := utilsContext.GetBuyer(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	listingID, err := strconv.ParseUint(mux.Vars(r)["listing_id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.PlaceBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.PlaceBid(ctx, buyer, listingID, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListMockOrders handler for support tooling: all demo orders across buyers.
func (s *RestHandler) ListMockOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.MockRepo.All()
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	writeSuccess(w, orders)
}
