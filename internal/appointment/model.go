package appointment

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	UrgencyNonUrgent = "non-urgent"
	UrgencyUrgent    = "urgent"
)

// Appointment is one booked slot. Date carries no time-of-day and Time is one
// of the fixed catalog entries, so both are stored as their wire strings;
// lexical order on (date, time) is chronological order.
type Appointment struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `gorm:"not null" json:"subject"`
	Urgency string `gorm:"not null;default:'non-urgent'" json:"urgency"`
	Date    string `gorm:"type:varchar(10);index;not null" json:"date"` // YYYY-MM-DD
	Time    string `gorm:"type:varchar(5);not null" json:"time"`        // HH:MM
	Status  string `gorm:"not null;default:'pending'" json:"status"`
	Notes   string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func ValidUrgency(u string) bool {
	return u == UrgencyNonUrgent || u == UrgencyUrgent
}
