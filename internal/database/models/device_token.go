package models

import "github.com/google/uuid"

// DeviceToken is a push-notification registration for one of a user's devices
type DeviceToken struct {
	BaseModel
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_device_tokens_user_token"`
	Token      string     `json:"token" gorm:"size:500;not null;uniqueIndex:idx_device_tokens_user_token"`
	DeviceType DeviceType `json:"device_type,omitempty" gorm:"size:20"`
}

// TableName specifies the table name for DeviceToken
func (DeviceToken) TableName() string {
	return "device_tokens"
}
