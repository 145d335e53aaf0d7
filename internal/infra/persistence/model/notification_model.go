package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// target_kind and target_id are either both NULL or both set.
type NotificationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_recipient_read,priority:1;index:idx_notifications_recipient_created,priority:1"`
	ActorID     uuid.UUID  `gorm:"type:uuid;not null"`
	ActionType  string     `gorm:"type:varchar(32);not null"`
	TargetKind  *string    `gorm:"type:varchar(32);check:chk_notifications_target,(target_kind IS NULL) = (target_id IS NULL)"`
	TargetID    *uuid.UUID `gorm:"type:uuid"`
	IsRead      bool       `gorm:"not null;default:false;index:idx_notifications_recipient_read,priority:2"`
	EmailSent   bool       `gorm:"not null;default:false"`
	PushSent    bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time  `gorm:"not null;index:idx_notifications_recipient_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
