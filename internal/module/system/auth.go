package system

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-admin-gateway/internal/config"
	"github.com/MKhiriev/go-admin-gateway/internal/logger"
	"github.com/MKhiriev/go-admin-gateway/internal/utils"
	"github.com/MKhiriev/go-admin-gateway/models"
)

// AdminUserID is the id of the only user the mock sign-in knows.
const AdminUserID int64 = 1

// AuthService issues the token pair returned by the sign-in endpoints.
type AuthService interface {
	Login(ctx context.Context) (models.AuthLoginResponse, error)
}

type authService struct {
	cfg config.Auth
	now func() time.Time

	logger *logger.Logger
}

func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		cfg:    cfg,
		now:    time.Now,
		logger: logger,
	}
}

// Login issues a fresh access and refresh token for the admin user. The
// response expires together with the access token.
func (s *authService) Login(ctx context.Context) (models.AuthLoginResponse, error) {
	now := s.now()

	access, err := s.issue(models.AccessToken, s.cfg.AccessTokenDuration.Std(), now)
	if err != nil {
		return models.AuthLoginResponse{}, err
	}
	refresh, err := s.issue(models.RefreshToken, s.cfg.RefreshTokenDuration.Std(), now)
	if err != nil {
		return models.AuthLoginResponse{}, err
	}

	logger.FromContext(ctx).Debug().Int64("user_id", AdminUserID).Time("expires", access.ExpiresAt).Msg("mock tokens issued")

	return models.AuthLoginResponse{
		UserID:       AdminUserID,
		AccessToken:  access.String(),
		RefreshToken: refresh.String(),
		ExpiresTime:  access.ExpiresAt,
	}, nil
}

func (s *authService) issue(kind models.TokenKind, d time.Duration, now time.Time) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Kind:     kind,
		Issuer:   s.cfg.TokenIssuer,
		UserID:   AdminUserID,
		Duration: d,
		SignKey:  s.cfg.TokenSignKey,
		Now:      now,
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("error issuing %s token: %w", kind, err)
	}
	return token, nil
}
