package newsletter

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"portfolio/internal/apperr"
	"portfolio/internal/crud"
	"portfolio/internal/mailer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subscriber struct {
	ID               uint64     `gorm:"primaryKey" json:"id"`
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Active           bool       `gorm:"not null;default:true" json:"active"`
	UnsubscribeToken string     `gorm:"uniqueIndex;not null" json:"-"`
	SubscribedAt     time.Time  `gorm:"not null" json:"subscribedAt"`
	UnsubscribedAt   *time.Time `json:"unsubscribedAt,omitempty"`
}

type Stats struct {
	Total        int64 `json:"total"`
	Active       int64 `json:"active"`
	Unsubscribed int64 `json:"unsubscribed"`
}

// SendResult counts a bulk send. Failed recipients are skipped, not retried.
type SendResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

type Service struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
}

// Subscribe registers an email. A previously unsubscribed address is
// re-activated; an already active one is an ALREADY_EXISTS error.
func (s *Service) Subscribe(ctx context.Context, email string) (Subscriber, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var existing Subscriber
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Active {
			return Subscriber{}, apperr.New(apperr.CodeAlreadyExists, "already subscribed")
		}
		updates := map[string]any{"active": true, "unsubscribed_at": nil, "subscribed_at": time.Now()}
		if err := s.DB.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return Subscriber{}, apperr.Wrap(apperr.CodeDatabase, "resubscribe failed", err)
		}
		existing.Active = true
		existing.UnsubscribedAt = nil
		return existing, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := Subscriber{
			Email:            email,
			Active:           true,
			UnsubscribeToken: uuid.NewString(),
			SubscribedAt:     time.Now(),
		}
		if err := s.DB.WithContext(ctx).Create(&sub).Error; err != nil {
			if crud.IsDuplicate(err) {
				return Subscriber{}, apperr.New(apperr.CodeAlreadyExists, "already subscribed")
			}
			return Subscriber{}, apperr.Wrap(apperr.CodeDatabase, "subscribe failed", err)
		}
		return sub, nil

	default:
		return Subscriber{}, apperr.Wrap(apperr.CodeDatabase, "lookup failed", err)
	}
}

// Unsubscribe deactivates by unsubscribe token or, failing that, by email.
func (s *Service) Unsubscribe(ctx context.Context, tokenOrEmail string) error {
	tokenOrEmail = strings.TrimSpace(tokenOrEmail)

	var sub Subscriber
	err := s.DB.WithContext(ctx).
		Where("unsubscribe_token = ? OR email = ?", tokenOrEmail, strings.ToLower(tokenOrEmail)).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.CodeNotFound, "subscriber not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.CodeDatabase, "lookup failed", err)
	}

	now := time.Now()
	updates := map[string]any{"active": false, "unsubscribed_at": &now}
	if err := s.DB.WithContext(ctx).Model(&sub).Updates(updates).Error; err != nil {
		return apperr.Wrap(apperr.CodeDatabase, "unsubscribe failed", err)
	}
	return nil
}

func (s *Service) Subscribers(ctx context.Context) ([]Subscriber, error) {
	var out []Subscriber
	if err := s.DB.WithContext(ctx).Order("subscribed_at desc").Find(&out).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "list failed", err)
	}
	return out, nil
}

func (s *Service) GetStats(ctx context.Context) (Stats, error) {
	var st Stats
	db := s.DB.WithContext(ctx).Model(&Subscriber{})
	if err := db.Count(&st.Total).Error; err != nil {
		return Stats{}, apperr.Wrap(apperr.CodeDatabase, "count failed", err)
	}
	if err := s.DB.WithContext(ctx).Model(&Subscriber{}).Where("active = ?", true).Count(&st.Active).Error; err != nil {
		return Stats{}, apperr.Wrap(apperr.CodeDatabase, "count failed", err)
	}
	st.Unsubscribed = st.Total - st.Active
	return st, nil
}

// SendArticle delivers one article to every active subscriber, best effort.
// A failed recipient is counted and skipped; the loop always runs to the end.
func (s *Service) SendArticle(ctx context.Context, subject, body string) (SendResult, error) {
	var subs []Subscriber
	err := s.DB.WithContext(ctx).Where("active = ?", true).Find(&subs).Error
	if err != nil {
		return SendResult{}, apperr.Wrap(apperr.CodeDatabase, "subscriber lookup failed", err)
	}

	var res SendResult
	for _, sub := range subs {
		if err := s.Mailer.Send(sub.Email, subject, body); err != nil {
			log.Printf("newsletter send failed to %s: %v\n", sub.Email, err)
			res.Failed++
			continue
		}
		res.Sent++
	}
	return res, nil
}
