package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DeviceClass is the platform a push token belongs to.
type DeviceClass string

const (
	DeviceIOS     DeviceClass = "ios"
	DeviceAndroid DeviceClass = "android"
	DeviceWeb     DeviceClass = "web"
)

// ErrInvalidDeviceClass is returned for an unsupported platform.
var ErrInvalidDeviceClass = errors.New("invalid device class")

// ParseDeviceClass validates a raw device type; an empty string means web.
func ParseDeviceClass(s string) (DeviceClass, error) {
	switch DeviceClass(s) {
	case "":
		return DeviceWeb, nil
	case DeviceIOS, DeviceAndroid, DeviceWeb:
		return DeviceClass(s), nil
	default:
		return "", errors.Wrapf(ErrInvalidDeviceClass, "%q", s)
	}
}

// PushToken is a device endpoint registered for push notifications.
// The token string is globally unique; re-registering it moves it to the new owner.
type PushToken struct {
	ID        uuid.UUID   `json:"id"`          // The Global Unique Identifier (GUID) for the token row.
	OwnerID   uuid.UUID   `json:"owner_id"`    // The user who owns the device.
	Token     string      `json:"token"`       // Firebase Cloud Messaging registration token.
	Device    DeviceClass `json:"device_type"` // Device platform (ios, android, web).
	IsActive  bool        `json:"is_active"`   // Inactive tokens are kept but never sent to.
	CreatedAt time.Time   `json:"created_at"`  // Timestamp of the first registration.
	UpdatedAt time.Time   `json:"updated_at"`  // Timestamp of the last modification.
}
