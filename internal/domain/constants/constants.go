// Package constants holds values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderNone   = "none"
)

// Data keys attached to every push message.
const (
	PushDataNotificationID = "notification_id"
	PushDataActionType     = "action_type"
	PushDataType           = "type"
	PushDataTypeValue      = "notification"
)
