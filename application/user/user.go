package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/scrapmarket/cmd/config"
	"github.com/muhammadheryan/scrapmarket/constant"
	"github.com/muhammadheryan/scrapmarket/model"
	sessionrepo "github.com/muhammadheryan/scrapmarket/repository/session"
	"github.com/muhammadheryan/scrapmarket/thirdparty/backendapi"
	"github.com/muhammadheryan/scrapmarket/utils/errors"
	"github.com/muhammadheryan/scrapmarket/utils/logger"
	"go.uber.org/zap"
)

type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (*model.Session, error)
}

type UserAppImpl struct {
	config      *config.Config
	backend     backendapi.Client
	sessionRepo sessionrepo.Repository
}

func NewUserApp(config *config.Config, backend backendapi.Client, sessionRepo sessionrepo.Repository) UserApp {
	return &UserAppImpl{
		config:      config,
		backend:     backend,
		sessionRepo: sessionRepo,
	}
}

// Login proxies credentials to the backend, keeps the backend token in the
// session store and hands the client a gateway JWT referencing that session.
func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	result, err := s.backend.Login(ctx, req.Identifier, req.Password)
	if err != nil {
		if errors.IsType(err, constant.ErrInvalidPassword) {
			return nil, err
		}
		logger.Error("[Login] backend login failed", zap.String("error", err.Error()))
		return nil, err
	}

	token, jti, err := s.generateJWT(result.UserID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	session := &model.Session{
		BuyerID:      result.UserID,
		Email:        result.Email,
		BackendToken: result.Token,
	}
	if err := s.sessionRepo.SetSession(ctx, jti, session, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Name:  result.Name,
		Email: result.Email,
		Token: token,
	}, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.sessionRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// ValidateToken parses the gateway JWT and cross-checks the stored session.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Session, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil, err
	}

	buyerID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid buyer id in token")
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	session, err := s.sessionRepo.GetSession(ctx, claims.ID)
	if err != nil || session == nil {
		return nil, fmt.Errorf("invalid or expired session")
	}

	if session.BuyerID != buyerID {
		return nil, fmt.Errorf("token does not match buyer session")
	}

	return session, nil
}

func (s *UserAppImpl) parseClaims(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// generateJWT creates a gateway token for the buyer
func (s *UserAppImpl) generateJWT(buyerID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", buyerID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
