package experience

import (
	"time"

	"portfolio/internal/crud"

	"gorm.io/gorm"
)

type Experience struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Company      string `gorm:"not null" json:"company"`
	Position     string `gorm:"not null" json:"position"`
	Location     string `json:"location"`
	StartDate    string `gorm:"type:varchar(10);not null" json:"startDate"` // YYYY-MM-DD
	EndDate      string `gorm:"type:varchar(10)" json:"endDate,omitempty"`  // empty while current
	Current      bool   `gorm:"not null;default:false" json:"current"`
	Description  string `gorm:"type:text" json:"description"`
	DisplayOrder int    `gorm:"not null;default:0" json:"order"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

type Service struct {
	crud.Store[Experience]
}

func NewService(db *gorm.DB) *Service {
	return &Service{crud.Store[Experience]{DB: db, Order: "display_order asc, start_date desc"}}
}
