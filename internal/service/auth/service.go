package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/shiftyhq/shifty-backend-go/internal/domain/auth"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/business"
	"github.com/shiftyhq/shifty-backend-go/internal/domain/user"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/database"
	"github.com/shiftyhq/shifty-backend-go/internal/pkg/jwt"
	"github.com/shiftyhq/shifty-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	business.BusinessRepository
	jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, businessRepository business.BusinessRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:                 db,
		UserRepository:     userRepository,
		BusinessRepository: businessRepository,
		Service:            jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService. The business and its owner account
// are created in one transaction so a half-registered tenant never exists.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResult{}, err
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var owner user.User
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		createdBusiness, err := a.BusinessRepository.Create(txCtx, business.Business{Name: req.BusinessName})
		if err != nil {
			return fmt.Errorf("failed to create business: %w", err)
		}

		owner, err = a.UserRepository.Create(txCtx, user.User{
			BusinessID:   createdBusiness.ID,
			Email:        req.Email,
			PasswordHash: passwordHash,
			Name:         req.Name,
			Role:         user.RoleAdmin,
		})
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return auth.LoginResult{}, err
	}

	return a.issueTokens(owner)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResult, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResult{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResult{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResult{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.AuthResponse, error) {
	if a.Service.IsTokenRevoked(refreshToken) {
		return auth.AuthResponse{}, auth.ErrRefreshTokenRevoked
	}

	userID, err := a.Service.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidToken
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.BusinessID, userData.Role)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AuthResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        userInfo(userData),
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := a.Service.ValidateRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.LoginResult, error) {
	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.BusinessID, userData.Role)
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.LoginResult{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResult{
		Auth: auth.AuthResponse{
			AccessToken: accessToken,
			ExpiresAt:   expiresAt,
			User:        userInfo(userData),
		},
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

func userInfo(u user.User) auth.UserInfo {
	return auth.UserInfo{
		ID:         u.ID,
		BusinessID: u.BusinessID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
	}
}
