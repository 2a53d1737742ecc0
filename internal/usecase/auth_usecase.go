package usecase

import (
	"context"
	"crypto/subtle"

	"github.com/josephprado/schedjoeler-api/config"
	"github.com/josephprado/schedjoeler-api/internal/delivery/dto"
	"github.com/josephprado/schedjoeler-api/pkg/token"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase interface {
	IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error)
	RevokeToken(ctx context.Context, tokenID string) error
}

type authUsecase struct {
	log      *logrus.Logger
	cache    *redis.Client
	tokenSvc *token.Service
	config   config.AuthConfig
}

func NewAuthUsecase(
	log *logrus.Logger,
	cache *redis.Client,
	tokenSvc *token.Service,
	config config.AuthConfig,
) AuthUsecase {
	return &authUsecase{
		log:      log,
		cache:    cache,
		tokenSvc: tokenSvc,
		config:   config,
	}
}

func (u *authUsecase) IssueToken(ctx context.Context, req *dto.TokenRequest) (*dto.TokenResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(u.config.Username)) != 1 {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.config.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	signed, tokenID, err := u.tokenSvc.Generate(req.Username)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	// Register the token so revocation can be checked on every request.
	if u.cache != nil {
		if err := u.cache.Set(ctx, token.IssuedKey(tokenID), req.Username, u.tokenSvc.Expiry()).Err(); err != nil {
			u.log.Warnf("Failed to register issued token: %+v", err)
			return nil, err
		}
	}

	return &dto.TokenResponse{
		AccessToken: signed,
		ExpiresIn:   int64(u.tokenSvc.Expiry().Seconds()),
	}, nil
}

func (u *authUsecase) RevokeToken(ctx context.Context, tokenID string) error {
	if u.cache == nil {
		return nil
	}
	if err := u.cache.Del(ctx, token.IssuedKey(tokenID)).Err(); err != nil {
		u.log.Warnf("Failed to revoke token: %+v", err)
		return err
	}
	return nil
}
