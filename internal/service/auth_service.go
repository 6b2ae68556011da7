package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jer-romano/messagely/internal/domain"
	"github.com/Jer-romano/messagely/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken   = errors.New("username already taken")
	ErrInvalidCreds    = errors.New("invalid username or password")
	ErrInvalidUsername = errors.New("no such username")
)

const tokenTTL = 24 * time.Hour

type AuthService struct {
	userRepo   repository.UserRepository
	jwtSecret  []byte
	bcryptCost int
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, bcryptCost int) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
	}
}

type RegisterInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

// Register creates a user and returns a token for it. The token is only
// minted once the insert has succeeded; a duplicate username yields
// ErrUsernameTaken and any other storage failure propagates.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		JoinAt:       now,
		LastLoginAt:  now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.generateToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthResponse{Token: token}, nil
}

// Authenticate reports whether the username/password pair is valid. An
// unknown username is a false result, not an error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil, nil
}

// Login verifies credentials, advances last_login_at, and mints a token.
// The last-login update is awaited so the timestamp is durable before the
// client ever sees its token.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	ok, err := s.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCreds
	}

	if err := s.TouchLastLogin(ctx, input.Username); err != nil {
		return nil, err
	}

	token, err := s.generateToken(input.Username)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AuthResponse{Token: token}, nil
}

// TouchLastLogin sets last_login_at to now. ErrInvalidUsername when no
// user matched.
func (s *AuthService) TouchLastLogin(ctx context.Context, username string) error {
	touched, err := s.userRepo.TouchLastLogin(ctx, username, time.Now())
	if err != nil {
		return fmt.Errorf("updating last login: %w", err)
	}
	if !touched {
		return ErrInvalidUsername
	}
	return nil
}

func (s *AuthService) generateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"jti": uuid.NewString(),
		"exp": time.Now().Add(tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
