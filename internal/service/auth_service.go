package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/recipeshare/server/internal/config"
	"github.com/recipeshare/server/internal/models"
	"github.com/recipeshare/server/internal/repository"
	"github.com/recipeshare/server/pkg/crypto"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a login failure never reveals which one it was
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrWrongPassword      = errors.New("current password is incorrect")
)

// AuthService handles registration, login and token management
type AuthService struct {
	users     UserStore
	jwtConfig config.JWTConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtConfig config.JWTConfig) *AuthService {
	return &AuthService{
		users:     users,
		jwtConfig: jwtConfig,
	}
}

// RegisterRequest represents the registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=50"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UpdatePasswordRequest represents a password change
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=100"`
}

// TokenResponse represents the JWT token response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// JWTClaims represents the JWT claims
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Register creates a new account and returns it together with a fresh token
func (s *AuthService) Register(req *RegisterRequest) (*models.User, *TokenResponse, error) {
	exists, err := s.users.ExistsByEmail(req.Email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrEmailTaken
	}

	exists, err = s.users.ExistsByUsername(req.Username)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrUsernameTaken
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(user); err != nil {
		return nil, nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, nil, err
	}
	return user, token, nil
}

// Login authenticates a user by email and password
func (s *AuthService) Login(req *LoginRequest) (*models.User, *TokenResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, nil, err
	}
	return user, token, nil
}

// ValidateToken validates a JWT token and returns the claims. An expired
// token yields ErrTokenExpired, any other failure ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// GetUserByID retrieves a user by ID
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	return s.users.GetByID(id)
}

// UpdateProfile updates username and/or email of the authenticated user.
// An email change re-checks uniqueness, ignoring the user's own record.
func (s *AuthService) UpdateProfile(userID string, req *UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	// Emails are stored lowercase; canonicalize before comparing, or the
	// stored value would never match a login lookup again
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && email != user.Email {
		taken, err := s.users.ExistsByEmailExcluding(email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		user.Email = email
	}
	if req.Username != "" && req.Username != user.Username {
		taken, err := s.users.ExistsByUsername(req.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
		user.Username = req.Username
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword verifies the current password before storing a new hash
func (s *AuthService) UpdatePassword(userID string, req *UpdatePasswordRequest) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(req.CurrentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := crypto.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(user)
}

// generateToken generates a JWT token for a user
func (s *AuthService) generateToken(user *models.User) (*TokenResponse, error) {
	expiresIn := time.Duration(s.jwtConfig.ExpireHours) * time.Hour

	claims := &JWTClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "recipeshare",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresIn:   s.jwtConfig.ExpireHours * 3600,
	}, nil
}
