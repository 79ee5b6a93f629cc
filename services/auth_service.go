package services

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "circuithouse-backend/errors"
	"circuithouse-backend/models"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB       *gorm.DB
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, secret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AuthService{DB: db, secret: secret, tokenTTL: tokenTTL}
}

// Login verifies the admin credentials and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", models.Admin{}, apperrors.Validation("username and password are required")
	}

	var admin models.Admin
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.Admin{}, apperrors.Unauthorized("invalid credentials")
		}
		return "", models.Admin{}, apperrors.Internal("database error", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", models.Admin{}, apperrors.Unauthorized("invalid credentials")
	}

	token, err := s.IssueToken(admin)
	if err != nil {
		return "", models.Admin{}, apperrors.Internal("failed to sign token", err)
	}
	return token, admin, nil
}

// IssueToken signs an HS256 JWT carrying the admin identity.
func (s *AuthService) IssueToken(admin models.Admin) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  admin.ID,
		"name": admin.FullName,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
}

func (s *AuthService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.DB.WithContext(ctx).Find(&admins).Error; err != nil {
		return nil, apperrors.Internal("database error", err)
	}
	return admins, nil
}

func (s *AuthService) CreateAdmin(ctx context.Context, fullName, username, password string) (models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.Admin{}, apperrors.Validation("username is required")
	}
	if len(password) < 8 {
		return models.Admin{}, apperrors.Validation("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, apperrors.Internal("failed to hash password", err)
	}

	admin := models.Admin{
		FullName: strings.TrimSpace(fullName),
		Username: username,
		Password: string(hash),
	}
	if err := s.DB.WithContext(ctx).Create(&admin).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return models.Admin{}, apperrors.Conflict("username already exists")
		}
		return models.Admin{}, apperrors.Internal("failed to create admin", err)
	}
	return admin, nil
}

func (s *AuthService) DeleteAdmin(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Admin{}, id)
	if res.Error != nil {
		return apperrors.Internal("failed to delete admin", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("admin not found")
	}
	return nil
}
