package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"autorent/internal/db"
	"autorent/internal/entities"
	"autorent/internal/repository"
)

// ErrInvalidCredentials is returned for a wrong email or password; the
// two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering with an email that already
// has an account.
var ErrEmailTaken = errors.New("email already registered")

// AuthUserStore is the slice of the user repository the auth service
// needs.
type AuthUserStore interface {
	GetByEmail(email string) (*db.User, error)
	Create(u *db.User) error
}

type AuthService interface {
	Register(req entities.RegisterRequest) (*entities.AuthResponse, error)
	Login(req entities.LoginRequest) (*entities.AuthResponse, error)
}

type authService struct {
	users    AuthUserStore
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users AuthUserStore, secret string) AuthService {
	return &authService{users: users, secret: []byte(secret), tokenTTL: 24 * time.Hour}
}

func (s *authService) Register(req entities.RegisterRequest) (*entities.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password cannot be empty")
	}

	existing, err := s.users.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &db.User{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         entities.RoleClient,
		FirstName:    req.Username,
		FavoriteCars: []int64{},
		Reservations: []int64{},
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return s.respond(user)
}

func (s *authService) Login(req entities.LoginRequest) (*entities.AuthResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.respond(user)
}

func (s *authService) respond(user *db.User) (*entities.AuthResponse, error) {
	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{Token: token, User: userToAPI(user)}, nil
}

func (s *authService) signToken(user *db.User) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("JWT_SECRET not set")
	}
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
