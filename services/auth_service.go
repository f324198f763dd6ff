package services

import (
	"context"
	"errors"
	"net/http"

	"news-cms/cache"
	"news-cms/models"
	"news-cms/repositories"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (string, error)
	Logout(ctx context.Context, authHeader string) error
	Authenticate(ctx context.Context, token string) (*Claims, error)
}

type authService struct {
	adminRepo repositories.AdminRepository
	tokens    *TokenManager
	revoked   cache.TokenStore
}

func NewAuthService(adminRepo repositories.AdminRepository, tokens *TokenManager, revoked cache.TokenStore) AuthService {
	return &authService{
		adminRepo: adminRepo,
		tokens:    tokens,
		revoked:   revoked,
	}
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	if req.Username == "" || req.Password == "" {
		return "", models.NewBadRequest(models.MsgCredentialsRequired)
	}

	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.NewNotFound(models.MsgAdminNotFound)
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return "", models.NewBadRequest(models.MsgWrongPassword)
	}

	token, err := s.tokens.Generate(admin)
	if err != nil {
		return "", err
	}

	log.Info().Uint("admin_id", admin.ID).Msg("Admin logged in")
	return token, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, authHeader string) error {
	tokenString, ok := ExtractBearer(authHeader)
	if !ok {
		return models.NewUnauthorized(models.MsgTokenMissing)
	}

	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		return &models.AppError{Status: http.StatusUnauthorized, Message: models.MsgTokenInvalid, Err: err}
	}

	if _, err := s.adminRepo.GetByID(ctx, claims.AdminID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFound(models.MsgAdminNotFound)
		}
		return err
	}

	if err := s.revoked.Revoke(ctx, claims.ID, s.tokens.Remaining(claims)); err != nil {
		return err
	}

	log.Info().Uint("admin_id", claims.AdminID).Msg("Admin logged out")
	return nil
}

// Authenticate accepts only valid, unexpired and unrevoked admin tokens.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		return nil, &models.AppError{Status: http.StatusUnauthorized, Message: models.MsgTokenInvalid, Err: err}
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, models.NewUnauthorized(models.MsgTokenRevoked)
	}

	return claims, nil
}
