package auth

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Admin struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:'admin'" json:"role"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}

func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
