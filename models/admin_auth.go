package models

import "time"

// AdminAuthID is the fixed primary key of the single admin credential row.
const AdminAuthID = "admin_secret"

// AdminAuth holds the bcrypt hash the admin password is verified against.
type AdminAuth struct {
	ID           string    `json:"id" db:"id" gorm:"type:text;primaryKey;not null"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"column:password_hash;type:text;not null"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" gorm:"column:updated_at"`
}

func (AdminAuth) TableName() string {
	return "admin_auth"
}
