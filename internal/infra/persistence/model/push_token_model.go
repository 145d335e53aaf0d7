package model

import (
	"time"

	"github.com/google/uuid"
)

// PushTokenModel is the GORM-specific struct for the 'push_tokens' table.
// Rows are deactivated, never deleted.
type PushTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_push_tokens_owner_token,priority:1"`
	Token      string    `gorm:"type:varchar(512);not null;uniqueIndex;uniqueIndex:uq_push_tokens_owner_token,priority:2"`
	DeviceType string    `gorm:"type:varchar(16);not null;default:'web'"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushTokenModel) TableName() string {
	return "push_tokens"
}
