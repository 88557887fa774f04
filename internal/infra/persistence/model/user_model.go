package model

import (
	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhoneNumber string    `gorm:"type:varchar(10);uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	GreenScore  float64   `gorm:"type:double precision;not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
