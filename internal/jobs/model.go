package jobs

import "time"

const TypeEmailDispatch = "EMAIL_DISPATCH"

type Job struct {
	ID uint64 `gorm:"primaryKey"`

	Type    string `gorm:"type:text;not null"` // EMAIL_DISPATCH
	Payload []byte `gorm:"type:jsonb;not null"`

	RunAt  time.Time `gorm:"index;not null"`
	Status string    `gorm:"index;not null;default:'PENDING'"` // PENDING/RUNNING/DONE/FAILED

	Attempts    int `gorm:"not null;default:0"`
	MaxAttempts int `gorm:"not null;default:8"`

	LockedBy *string    `gorm:"type:text"`
	LockedAt *time.Time `gorm:"type:timestamptz"`

	LastError *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// EmailPayload is the EMAIL_DISPATCH job body.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
