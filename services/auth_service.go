package services

import (
	"errors"
	"strings"
	"time"

	"gateway/entity"
	"gateway/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService signs staff in and issues the session tokens the route
// guards check. Accounts live in the gateway's own sqlite store; the
// upstream has no concept of staff identity.
type AuthService struct {
	DB        *gorm.DB
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, jwtSecret: secret, jwtTTL: ttl}
}

// Login verifies credentials and returns a signed token plus the user.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user entity.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, &user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	var user entity.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
