package services

import (
	"errors"

	"github.com/sandro1422/workout-api/models"
	"github.com/sandro1422/workout-api/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	issuer *utils.TokenIssuer
}

func NewAuthService(db *gorm.DB, issuer *utils.TokenIssuer) *AuthService {
	return &AuthService{db: db, issuer: issuer}
}

// Register creates a new user. Username is checked before email, so a
// request that collides on both reports the username conflict.
func (s *AuthService) Register(username, email, password string) error {
	var existing models.User

	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}
	return s.db.Create(&user).Error
}

// Login verifies the credentials and issues a bearer token for the user.
func (s *AuthService) Login(username, password string) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidUsername
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidPassword
	}

	return s.issuer.Issue(user.ID)
}

func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
