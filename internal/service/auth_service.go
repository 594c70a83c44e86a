package service

import (
	"errors"
	"time"

	"newscheck/internal/config"
	"newscheck/internal/dto"
	"newscheck/internal/middleware/auth"
	"newscheck/internal/models"
	"newscheck/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)

// Claims is the identity a verified token asserts.
type Claims struct {
	UserID string
	Role   models.Role
}

// Identity is the caller as the access policy sees it. The zero value is
// anonymous; a failed optional token decode maps here explicitly instead of
// propagating an error.
type Identity struct {
	UserID        string
	Role          models.Role
	Authenticated bool
}

func Anonymous() Identity {
	return Identity{}
}

func (i Identity) IsAdmin() bool {
	return i.Authenticated && i.Role == models.RoleAdmin
}

type AuthService interface {
	Register(req dto.RegisterRequest) (token string, user *models.User, err error)
	Login(email, password string) (token string, user *models.User, err error)
	GetUser(id string) (*models.User, error)
	GenerateToken(userID string, role models.Role) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: cfg.JWTSecret,
	}
}

// Register creates a READER account and logs it in.
func (s *authService) Register(req dto.RegisterRequest) (string, *models.User, error) {
	// Check if email exists
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return "", nil, ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleReader,
	}

	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := s.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Login authenticates a user and returns a bearer token upon success.
func (s *authService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// User not found: dummy compare to mitigate timing attacks (always take same time)
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GenerateToken signs an HS256 token carrying (user_id, role). Tokens carry
// no exp claim and there is no revocation path; role changes take effect on
// the next login.
func (s *authService) GenerateToken(userID string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken fails with ErrInvalidToken on malformed, unsigned, or
// wrongly-signed tokens.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, ok := mapClaims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}
	role, ok := mapClaims["role"].(string)
	if !ok || !models.ValidRole(role) {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: userID, Role: models.Role(role)}, nil
}
