package service

import (
	"context"
	"time"

	"edusitepro_backend/internals/configs"
	accountModel "edusitepro_backend/internals/features/accounts/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// IdentityProvider is the contract the sagas create accounts through. The
// GORM implementation below is the platform's own user table; swapping in a
// hosted provider only needs this interface.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, email, password string, confirmed bool, fullName string) (uuid.UUID, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
	InviteByEmail(ctx context.Context, email, fullName, redirectURL string) (uuid.UUID, error)
	GeneratePasswordResetLink(ctx context.Context, email, redirectURL string) (string, error)
}

type GormIdentityProvider struct {
	DB *gorm.DB
}

func NewGormIdentityProvider(db *gorm.DB) *GormIdentityProvider {
	return &GormIdentityProvider{DB: db}
}

func (p *GormIdentityProvider) CreateAccount(ctx context.Context, email, password string, confirmed bool, fullName string) (uuid.UUID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}
	u := accountModel.UserModel{
		UserEmail:        email,
		UserPasswordHash: hash,
		UserIsConfirmed:  confirmed,
	}
	if fullName != "" {
		u.UserFullName = &fullName
	}
	if err := p.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return uuid.Nil, err
	}
	return u.UserID, nil
}

func (p *GormIdentityProvider) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	return p.DB.WithContext(ctx).
		Unscoped().
		Delete(&accountModel.UserModel{}, "user_id = ?", accountID).Error
}

func (p *GormIdentityProvider) InviteByEmail(ctx context.Context, email, fullName, redirectURL string) (uuid.UUID, error) {
	now := time.Now()
	u := accountModel.UserModel{
		UserEmail:       email,
		UserIsConfirmed: false,
		UserInvitedAt:   &now,
	}
	if fullName != "" {
		u.UserFullName = &fullName
	}
	if err := p.DB.WithContext(ctx).Create(&u).Error; err != nil {
		return uuid.Nil, err
	}
	return u.UserID, nil
}

// GeneratePasswordResetLink issues a short-lived signed token and appends it
// to the redirect URL, the same shape a hosted provider would return.
func (p *GormIdentityProvider) GeneratePasswordResetLink(ctx context.Context, email, redirectURL string) (string, error) {
	var u accountModel.UserModel
	if err := p.DB.WithContext(ctx).First(&u, "user_email = ?", email).Error; err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sub":   u.UserID.String(),
		"email": email,
		"typ":   "password_reset",
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", err
	}
	return redirectURL + "?token=" + signed, nil
}
