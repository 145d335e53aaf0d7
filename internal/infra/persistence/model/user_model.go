// Package model contains the GORM-specific structs that map to database tables.
package model

import (
	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
// The table is owned by the identity service; this service only reads it.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Email       string    `gorm:"type:varchar(255);not null"`
	DisplayName string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PostModel is the GORM-specific struct for the 'posts' table, read-only here.
type PostModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title    string    `gorm:"type:varchar(255);not null"`
	Slug     string    `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
