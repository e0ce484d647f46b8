package testimonial

import (
	"context"
	"time"

	"portfolio/internal/apperr"
	"portfolio/internal/crud"

	"gorm.io/gorm"
)

type Testimonial struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Role         string `json:"role"`
	Company      string `json:"company"`
	Content      string `gorm:"type:text;not null" json:"content"`
	AvatarURL    string `json:"avatarUrl"`
	Visible      bool   `gorm:"not null;default:true" json:"visible"`
	DisplayOrder int    `gorm:"not null;default:0" json:"order"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

type Service struct {
	crud.Store[Testimonial]
}

func NewService(db *gorm.DB) *Service {
	return &Service{crud.Store[Testimonial]{DB: db, Order: "display_order asc, created_at desc"}}
}

// Visible returns only publicly listed testimonials.
func (s *Service) Visible(ctx context.Context) ([]Testimonial, error) {
	var out []Testimonial
	err := s.DB.WithContext(ctx).
		Where("visible = ?", true).
		Order("display_order asc, created_at desc").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "list failed", err)
	}
	return out, nil
}

// ToggleVisibility flips the visible flag and returns the updated record.
func (s *Service) ToggleVisibility(ctx context.Context, id uint64) (Testimonial, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return Testimonial{}, err
	}

	if err := s.DB.WithContext(ctx).Model(&t).Update("visible", !t.Visible).Error; err != nil {
		return Testimonial{}, apperr.Wrap(apperr.CodeDatabase, "update failed", err)
	}
	t.Visible = !t.Visible
	return t, nil
}
