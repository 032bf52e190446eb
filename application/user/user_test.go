package user_test

import (
	"context"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/scrapmarket/application/user"
	"github.com/muhammadheryan/scrapmarket/cmd/config"
	"github.com/muhammadheryan/scrapmarket/constant"
	sessionmocks "github.com/muhammadheryan/scrapmarket/mocks/repository/session"
	backendmocks "github.com/muhammadheryan/scrapmarket/mocks/thirdparty/backendapi"
	"github.com/muhammadheryan/scrapmarket/model"
	sessionrepo "github.com/muhammadheryan/scrapmarket/repository/session"
	cerr "github.com/muhammadheryan/scrapmarket/utils/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func authConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestUserApp_LoginAndValidateToken(t *testing.T) {
	backend := backendmocks.NewClient(t)
	backend.On("Login", mock.Anything, "buyer@example.com", "secret").Return(&model.BackendLoginResult{
		UserID: 7,
		Name:   "Buyer",
		Email:  "buyer@example.com",
		Token:  "backend-token",
	}, nil).Once()

	var storedJTI string
	var storedSession *model.Session
	sessionRepo := sessionmocks.NewRepository(t)
	sessionRepo.On("SetSession", mock.Anything, mock.Anything, mock.Anything, time.Hour).
		Run(func(args mock.Arguments) {
			storedJTI = args.String(1)
			storedSession = args.Get(2).(*model.Session)
		}).Return(nil).Once()

	app := appuser.NewUserApp(authConfig(), backend, sessionRepo)

	res, err := app.Login(context.Background(), &model.LoginRequest{Identifier: "buyer@example.com", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "buyer@example.com", res.Email)
	require.NotEmpty(t, storedJTI)
	require.Equal(t, uint64(7), storedSession.BuyerID)
	require.Equal(t, "backend-token", storedSession.BackendToken)

	sessionRepo.On("GetSession", mock.Anything, storedJTI).Return(storedSession, nil).Once()

	session, err := app.ValidateToken(context.Background(), res.Token)
	require.NoError(t, err)
	require.Equal(t, uint64(7), session.BuyerID)
	require.Equal(t, "backend-token", session.BackendToken)
}

// Redis is never initialized in tests, so the real session repository runs on
// its in-process fallback: a token issued by Login must validate afterwards.
func TestUserApp_LoginValidatesWithoutRedis(t *testing.T) {
	backend := backendmocks.NewClient(t)
	backend.On("Login", mock.Anything, "buyer@example.com", "secret").Return(&model.BackendLoginResult{
		UserID: 7,
		Email:  "buyer@example.com",
		Token:  "backend-token",
	}, nil).Once()

	app := appuser.NewUserApp(authConfig(), backend, sessionrepo.NewRepository())

	res, err := app.Login(context.Background(), &model.LoginRequest{Identifier: "buyer@example.com", Password: "secret"})
	require.NoError(t, err)

	session, err := app.ValidateToken(context.Background(), res.Token)
	require.NoError(t, err, "a token issued by Login must be accepted while redis is absent")
	require.Equal(t, uint64(7), session.BuyerID)
	require.Equal(t, "backend-token", session.BackendToken)

	require.NoError(t, app.Logout(context.Background(), res.Token))
	_, err = app.ValidateToken(context.Background(), res.Token)
	require.Error(t, err, "logout must clear the fallback session too")
}

func TestUserApp_LoginInvalidPassword(t *testing.T) {
	backend := backendmocks.NewClient(t)
	backend.On("Login", mock.Anything, "buyer@example.com", "wrong").
		Return(nil, cerr.SetCustomError(constant.ErrInvalidPassword)).Once()

	app := appuser.NewUserApp(authConfig(), backend, sessionmocks.NewRepository(t))

	_, err := app.Login(context.Background(), &model.LoginRequest{Identifier: "buyer@example.com", Password: "wrong"})
	require.Error(t, err)
	var ce cerr.CustomError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, constant.ErrInvalidPassword, ce.ErrorType())
}

func TestUserApp_ValidateTokenRejectsGarbage(t *testing.T) {
	app := appuser.NewUserApp(authConfig(), backendmocks.NewClient(t), sessionmocks.NewRepository(t))

	_, err := app.ValidateToken(context.Background(), "not-a-jwt")
	require.Error(t, err)
}

func TestUserApp_ValidateTokenRejectsMissingSession(t *testing.T) {
	backend := backendmocks.NewClient(t)
	backend.On("Login", mock.Anything, "buyer@example.com", "secret").Return(&model.BackendLoginResult{
		UserID: 7,
		Email:  "buyer@example.com",
		Token:  "backend-token",
	}, nil).Once()

	sessionRepo := sessionmocks.NewRepository(t)
	sessionRepo.On("SetSession", mock.Anything, mock.Anything, mock.Anything, time.Hour).Return(nil).Once()

	app := appuser.NewUserApp(authConfig(), backend, sessionRepo)
	res, err := app.Login(context.Background(), &model.LoginRequest{Identifier: "buyer@example.com", Password: "secret"})
	require.NoError(t, err)

	// session cleared, e.g. after logout
	sessionRepo.On("GetSession", mock.Anything, mock.Anything).Return(nil, nil).Once()

	_, err = app.ValidateToken(context.Background(), res.Token)
	require.Error(t, err)
}
