package project

import (
	"time"

	"portfolio/internal/crud"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Project struct {
	ID           uint64         `gorm:"primaryKey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Technologies pq.StringArray `gorm:"type:text[]" json:"technologies"`
	GithubURL    string         `json:"githubUrl"`
	LiveURL      string         `json:"liveUrl"`
	ImageURL     string         `json:"imageUrl"`
	Featured     bool           `gorm:"not null;default:false" json:"featured"`
	DisplayOrder int            `gorm:"not null;default:0" json:"order"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

type Service struct {
	crud.Store[Project]
}

func NewService(db *gorm.DB) *Service {
	return &Service{crud.Store[Project]{DB: db, Order: "display_order asc, created_at desc"}}
}
