package services

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"potholetrack/config"
	"potholetrack/dto"
	"potholetrack/models"
	"potholetrack/repositories"
)

// Roles carried in the JWT role claim
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// AuthService handles signup and login for citizens and staff.
// Passwords are stored as bcrypt hashes; the original system kept them
// in plaintext, which is the one contract this rewrite deliberately
// does not honor.
type AuthService struct {
	store *repositories.Store
}

// NewAuthService creates a new auth service instance
func NewAuthService(store *repositories.Store) *AuthService {
	return &AuthService{store: store}
}

// SignupUser creates a new citizen account
func (s *AuthService) SignupUser(req dto.SignupRequest) (models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}
	return s.store.Users.Create(user)
}

// LoginUser authenticates a citizen by exact email lookup and password
// comparison, and returns the account with a signed token.
func (s *AuthService) LoginUser(req dto.LoginRequest) (models.User, string, error) {
	user, err := s.store.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.User{}, "", ErrInvalidCredentials
		}
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(user.ID, user.Name, RoleUser)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// SignupAdmin creates a new staff account. A staff email is optional,
// but when present it must belong to the institutional domain.
func (s *AuthService) SignupAdmin(req dto.AdminSignupRequest) (models.Admin, error) {
	if req.Email != "" {
		domain := config.GetEnv("ADMIN_EMAIL_DOMAIN", "@city.gov")
		if !strings.HasSuffix(req.Email, domain) {
			return models.Admin{}, invalid("Admin email must belong to the " + domain + " domain")
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, err
	}

	admin := models.Admin{
		Username:   req.Username,
		Email:      req.Email,
		Department: req.Department,
		Password:   string(hashedPassword),
		CreatedAt:  time.Now(),
	}
	return s.store.Admins.Create(admin)
}

// LoginAdmin authenticates a staff account by username
func (s *AuthService) LoginAdmin(req dto.AdminLoginRequest) (models.Admin, string, error) {
	admin, err := s.store.Admins.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Admin{}, "", ErrInvalidCredentials
		}
		return models.Admin{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return models.Admin{}, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(admin.ID, admin.Username, RoleAdmin)
	if err != nil {
		return models.Admin{}, "", err
	}
	return admin, token, nil
}

// ListUsers returns every citizen account. Password hashes never leave
// the model's JSON encoding, so no explicit stripping is needed here.
func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.store.Users.FindAll()
}

// GenerateToken generates a new JWT token for an account
func GenerateToken(accountID int, name, role string) (string, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	claims := dto.TokenClaims{
		AccountID: accountID,
		Name:      name,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
