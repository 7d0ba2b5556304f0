package service

import (
	"Storefront/apperr"
	"Storefront/models"
	"Storefront/password"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordBytes = 72

var validate = validator.New()

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        models.UserResponse
	AccessToken string
	ExpiresAt   time.Time
}

type AccountService struct {
	users  UserStore
	hasher password.Hasher
	tokens TokenIssuer
	logger zerolog.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAccountService(users UserStore, hasher password.Hasher, tokens TokenIssuer, logger zerolog.Logger) *AccountService {
	return &AccountService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a member. The email is checked up front for a friendly
// error; the unique index still decides concurrent signups.
func (s *AccountService) Signup(ctx context.Context, input SignupInput) (models.UserResponse, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	address := strings.TrimSpace(input.Address)

	if name == "" || email == "" || address == "" || blank(input.Password) {
		return models.UserResponse{}, apperr.Validation("Name, email, password and address are required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return models.UserResponse{}, apperr.Validation("A valid email is required")
	}
	if len(input.Password) > maxPasswordBytes {
		return models.UserResponse{}, apperr.Validation("Password must be at most 72 bytes")
	}

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return models.UserResponse{}, apperr.ErrEmailTaken
	}
	if !errors.Is(err, apperr.ErrUserNotFound) {
		return models.UserResponse{}, err
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return models.UserResponse{}, apperr.Internal(err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Address:  address,
		Role:     models.RoleMember,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return models.UserResponse{}, err
	}

	loggerFrom(ctx, &s.logger).Info().Uint("user_id", user.ID).Msg("user registered")
	return user.ToResponse(), nil
}

// Login answers an unknown email and a wrong password with the same error
// after the same amount of bcrypt work.
func (s *AccountService) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return LoginResult{}, apperr.Validation("Email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperr.ErrUserNotFound) {
			return LoginResult{}, err
		}
		s.hasher.Verify(s.dummyDigest(), input.Password)
		return LoginResult{}, apperr.ErrInvalidCredentials
	}

	if !s.hasher.Verify(user.Password, input.Password) {
		return LoginResult{}, apperr.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return LoginResult{}, apperr.Internal(err)
	}

	return LoginResult{
		User:        user.ToResponse(),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AccountService) Profile(ctx context.Context, userID uint) (models.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.UserResponse{}, err
	}
	return user.ToResponse(), nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]models.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]models.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, users[i].ToResponse())
	}
	return resp, nil
}

func (s *AccountService) dummyDigest() string {
	s.dummyOnce.Do(func() {
		hashed, err := s.hasher.Hash("storefront-login-placeholder")
		if err != nil {
			s.logger.Error().Err(err).Msg("cannot hash login placeholder")
			return
		}
		s.dummyHash = hashed
	})
	return s.dummyHash
}
