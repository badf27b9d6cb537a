package services

import (
	"context"
	"errors"
	"strings"

	"akshaya-backend/internal/auth"
	"akshaya-backend/internal/cache"
	"akshaya-backend/internal/models"
	"akshaya-backend/internal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountSuspended   = errors.New("account suspended")
)

type UserService struct {
	UserRepo   *repositories.UserRepository
	JWTManager *auth.JWTManager
	TOTP       *TOTPService
}

func NewUserService(userRepo *repositories.UserRepository, jwtManager *auth.JWTManager, totp *TOTPService) *UserService {
	return &UserService{
		UserRepo:   userRepo,
		JWTManager: jwtManager,
		TOTP:       totp,
	}
}

func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if !strings.Contains(req.Email, "@") {
		return nil, errors.New("valid email is required")
	}
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, errors.New("email already registered")
	}

	cache.InvalidateUserCaches(ctx)

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies the password. Users with 2FA enabled get a temp token
// and must finish with VerifyLogin2FA; everyone else gets a session.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, *models.LoginStep1Response, error) {
	user, err := s.UserRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, ErrAccountSuspended
	}

	if user.TOTPEnabled {
		tempToken, err := s.JWTManager.GenerateTempToken(user)
		if err != nil {
			return nil, nil, err
		}
		return nil, &models.LoginStep1Response{Requires2FA: true, TempToken: tempToken}, nil
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil, nil
}

// VerifyLogin2FA exchanges a temp token plus a valid TOTP code for a
// full session token.
func (s *UserService) VerifyLogin2FA(ctx context.Context, req *models.TOTPVerifyRequest) (*models.AuthResponse, error) {
	claims, err := s.JWTManager.ValidateTempToken(req.TempToken)
	if err != nil {
		return nil, errors.New("invalid or expired temp token")
	}

	user, err := s.UserRepo.Get(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.TOTP.Verify(user, req.Code); err != nil {
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}
