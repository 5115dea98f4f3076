package user

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/syamsf/dicoding-forum-api/domain"
)

// Service handles account registration and token sessions. Access tokens are
// short-lived JWTs; refresh tokens are opaque and live in the token store.
type Service struct {
	userRepo   domain.UserRepository
	tokens     domain.RefreshTokenStore
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(u domain.UserRepository, tokens domain.RefreshTokenStore, jwtSecret []byte, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		userRepo:   u,
		tokens:     tokens,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *Service) Register(ctx context.Context, payload domain.Payload) (domain.AddedUser, error) {
	user, err := domain.RegisterUserFromPayload(payload)
	if err != nil {
		return domain.AddedUser{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AddedUser{}, err
	}
	user.Password = string(hashed)

	return s.userRepo.Create(ctx, user)
}

func (s *Service) Login(ctx context.Context, payload domain.Payload) (domain.TokenPair, error) {
	login, err := domain.UserLoginFromPayload(payload)
	if err != nil {
		return domain.TokenPair{}, err
	}

	// An unknown username answers the same as a wrong password, so a login
	// attempt cannot probe which accounts exist.
	user, err := s.userRepo.GetByUsername(ctx, login.Username)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.TokenPair{}, domain.ErrAuthentication
	}
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(login.Password)); err != nil {
		return domain.TokenPair{}, domain.ErrAuthentication
	}

	accessToken, err := s.signAccessToken(user.ID)
	if err != nil {
		return domain.TokenPair{}, err
	}

	refreshToken := uuid.NewString()
	if err := s.tokens.Save(ctx, refreshToken, user.ID, s.refreshTTL); err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *Service) Refresh(ctx context.Context, payload domain.Payload) (string, error) {
	token, err := domain.RefreshTokenForRotation(payload)
	if err != nil {
		return "", err
	}

	userID, err := s.tokens.Verify(ctx, token)
	if err != nil {
		return "", err
	}
	return s.signAccessToken(userID)
}

func (s *Service) Logout(ctx context.Context, payload domain.Payload) error {
	token, err := domain.RefreshTokenForLogout(payload)
	if err != nil {
		return err
	}
	return s.tokens.Delete(ctx, token)
}

func (s *Service) signAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(s.accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
