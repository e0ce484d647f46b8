package contact

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/apperr"
	"portfolio/internal/crud"
	"portfolio/internal/jobs"

	"gorm.io/gorm"
)

type Contact struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `gorm:"not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	Read    bool   `gorm:"not null;default:false" json:"read"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

type Service struct {
	crud.Store[Contact]

	// NotifyEmail receives a copy of every submission; no notification is
	// sent when empty.
	NotifyEmail string
}

func NewService(db *gorm.DB, notifyEmail string) *Service {
	return &Service{Store: crud.Store[Contact]{DB: db}, NotifyEmail: notifyEmail}
}

// Submit stores the message and enqueues the owner notification in the same
// transaction. Delivery is the worker's problem; submission success never
// depends on it.
func (s *Service) Submit(ctx context.Context, c *Contact) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return apperr.Wrap(apperr.CodeDatabase, "create failed", err)
		}
		if s.NotifyEmail == "" {
			return nil
		}
		body := fmt.Sprintf("<p><b>%s</b> (%s) wrote:</p><p>%s</p>", c.Name, c.Email, c.Message)
		return jobs.EnqueueEmail(tx, s.NotifyEmail, "New contact message: "+c.Subject, body)
	})
	return err
}

func (s *Service) MarkAsRead(ctx context.Context, id uint64) (Contact, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return Contact{}, err
	}
	if err := s.DB.WithContext(ctx).Model(&c).Update("read", true).Error; err != nil {
		return Contact{}, apperr.Wrap(apperr.CodeDatabase, "update failed", err)
	}
	c.Read = true
	return c, nil
}

func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&Contact{}).Where("read = ?", false).Count(&n).Error
	if err != nil {
		return 0, apperr.Wrap(apperr.CodeDatabase, "count failed", err)
	}
	return n, nil
}
