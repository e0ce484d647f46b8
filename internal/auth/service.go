package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"portfolio/internal/apperr"
	"portfolio/internal/crud"

	"gorm.io/gorm"
)

type Service struct {
	DB  *gorm.DB
	JWT *JWT
}

func (s *Service) Login(ctx context.Context, email, password string) (string, Admin, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var a Admin
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", Admin{}, apperr.New(apperr.CodeInvalidCredentials, "invalid credentials")
	}
	if err != nil {
		return "", Admin{}, apperr.Wrap(apperr.CodeDatabase, "lookup failed", err)
	}
	if !ComparePassword(a.PasswordHash, password) {
		return "", Admin{}, apperr.New(apperr.CodeInvalidCredentials, "invalid credentials")
	}

	token, err := s.JWT.Sign(a.ID, a.Role)
	if err != nil {
		return "", Admin{}, apperr.Wrap(apperr.CodeInternal, "token signing failed", err)
	}
	return token, a, nil
}

// Bootstrap ensures the configured super admin exists. No-op when the email
// is already registered or the config is empty.
func (s *Service) Bootstrap(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil
	}

	var n int64
	if err := s.DB.WithContext(ctx).Model(&Admin{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	a := Admin{Email: email, PasswordHash: hash, Role: RoleSuperAdmin}
	if err := s.DB.WithContext(ctx).Create(&a).Error; err != nil {
		return err
	}
	log.Printf("bootstrapped super admin %s\n", email)
	return nil
}

func (s *Service) ListAdmins(ctx context.Context) ([]Admin, error) {
	var out []Admin
	if err := s.DB.WithContext(ctx).Order("created_at desc").Find(&out).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "list failed", err)
	}
	return out, nil
}

func (s *Service) CreateAdmin(ctx context.Context, email, password, role string) (Admin, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	hash, err := HashPassword(password)
	if err != nil {
		return Admin{}, apperr.Wrap(apperr.CodeInternal, "password hashing failed", err)
	}

	a := Admin{Email: email, PasswordHash: hash, Role: role}
	if err := s.DB.WithContext(ctx).Create(&a).Error; err != nil {
		if crud.IsDuplicate(err) {
			return Admin{}, apperr.New(apperr.CodeAlreadyExists, "email already registered")
		}
		return Admin{}, apperr.Wrap(apperr.CodeDatabase, "create failed", err)
	}
	return a, nil
}

func (s *Service) DeleteAdmin(ctx context.Context, id, requesterID uint64) error {
	if id == requesterID {
		return apperr.New(apperr.CodeForbidden, "cannot delete own account")
	}
	res := s.DB.WithContext(ctx).Delete(&Admin{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(apperr.CodeDatabase, "delete failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.CodeNotFound, "admin not found")
	}
	return nil
}
