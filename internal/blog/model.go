package blog

import (
	"regexp"
	"strings"
	"time"

	"github.com/lib/pq"
)

type BlogPost struct {
	ID         uint64         `gorm:"primaryKey" json:"id"`
	Title      string         `gorm:"not null" json:"title"`
	Slug       string         `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt    string         `gorm:"type:text" json:"excerpt"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	CoverImage string         `json:"coverImage"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags"`
	Published  bool           `gorm:"not null;default:true" json:"published"`
	Views      uint64         `gorm:"not null;default:0" json:"views"`
	Shares     uint64         `gorm:"not null;default:0" json:"shares"`

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

type Comment struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	PostID      uint64    `gorm:"index;not null" json:"postId"`
	AuthorName  string    `gorm:"not null" json:"authorName"`
	AuthorEmail string    `json:"authorEmail"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
}

// Stats aggregates the public counters across all posts.
type Stats struct {
	Posts    int64 `json:"posts"`
	Views    int64 `json:"views"`
	Shares   int64 `json:"shares"`
	Comments int64 `json:"comments"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
