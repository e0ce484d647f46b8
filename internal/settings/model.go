package settings

import (
	"encoding/json"
	"time"
)

// Setting is one row of the generic key→JSON store. Structured settings live
// under the well-known keys below; anything else is treated opaquely.
type Setting struct {
	ID        uint64          `gorm:"primaryKey" json:"id"`
	Key       string          `gorm:"uniqueIndex;not null" json:"key"`
	Value     json.RawMessage `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time       `gorm:"not null" json:"updatedAt"`
}

const (
	KeyProfile     = "profile"
	KeySocialLinks = "socialLinks"
	KeySEO         = "seo"
)
