package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	DispatchModeInline = "inline"
	DispatchModeAsync  = "async"

	defaultChannelTimeout  = 10 * time.Second
	defaultDispatchTimeout = 8 * time.Second
	defaultPageSize        = 20
	defaultMaxPageSize     = 100
	defaultFrontendURL     = "http://localhost:3000"

	defaultReadPerMinute     = 60
	defaultReadBurst         = 20
	defaultMarkReadPerMinute = 30
	defaultMarkReadBurst     = 10
	defaultRateLimitExpiry   = 3 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey holds the secrets used to verify tokens issued by the auth service.
	// Service tokens are rejected while Service is empty.
	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Service string `json:"service" yaml:"service"`
	} `json:"secretKey" yaml:"secretKey"`

	// Notification configuration for the dispatcher and its channels
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// SMTP configuration for email notifications
	SMTP *SMTPConfig `json:"smtp" yaml:"smtp"`

	// PubSub configuration for async delivery events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// NotificationConfig defines how notifications are built and delivered
type NotificationConfig struct {
	// Base URL of the web frontend, used for deep links in emails
	FrontendURL string `json:"frontendUrl" yaml:"frontendUrl"`

	// DispatchMode is "inline" (deliver within the request) or "async" (publish a delivery event)
	DispatchMode string `json:"dispatchMode" yaml:"dispatchMode"`

	// TemplateBucket is an optional gocloud blob URL (file://, gs://) holding email template overrides
	TemplateBucket string `json:"templateBucket" yaml:"templateBucket"`

	// Per-channel send timeouts
	EmailTimeout time.Duration `json:"emailTimeout" yaml:"emailTimeout"`
	PushTimeout  time.Duration `json:"pushTimeout" yaml:"pushTimeout"`

	// DispatchTimeout bounds one whole fan-out, all channels together.
	// It is kept below http.timeouts.writeTimeout so inline delivery cannot outlive the response.
	DispatchTimeout time.Duration `json:"dispatchTimeout" yaml:"dispatchTimeout"`

	// Default and maximum page size for notification listings
	DefaultPageSize int `json:"defaultPageSize" yaml:"defaultPageSize"`
	MaxPageSize     int `json:"maxPageSize" yaml:"maxPageSize"`

	// Per-user throttles on the notification endpoints
	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
}

// RateLimitConfig holds the throttle for each class of notification endpoint
type RateLimitConfig struct {
	// Read covers listing notifications, the unread count and push token listing
	Read RateLimit `json:"read" yaml:"read"`

	// MarkRead covers marking a notification read
	MarkRead RateLimit `json:"markRead" yaml:"markRead"`
}

// RateLimit is a token bucket refilled at PerMinute requests per minute
type RateLimit struct {
	PerMinute int           `json:"perMinute" yaml:"perMinute"`
	Burst     int           `json:"burst" yaml:"burst"`
	ExpiresIn time.Duration `json:"expiresIn" yaml:"expiresIn"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// SMTPConfig defines the outgoing mail server
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`

	// TLSPolicy is one of "mandatory", "opportunistic" or "none"
	TLSPolicy string `json:"tlsPolicy" yaml:"tlsPolicy"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected in push OIDC tokens (for google provider)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.Notification = withNotificationDefaults(cfg.Notification)
	cfg.Notification.DispatchTimeout = boundDispatchTimeout(cfg.Notification.DispatchTimeout, cfg.HTTP.Timeouts.WriteTimeout)

	return cfg, nil
}

// withNotificationDefaults fills unset notification fields.
func withNotificationDefaults(n *NotificationConfig) *NotificationConfig {
	if n == nil {
		n = &NotificationConfig{}
	}

	if strings.TrimSpace(n.FrontendURL) == "" {
		n.FrontendURL = defaultFrontendURL
	}
	n.FrontendURL = strings.TrimRight(n.FrontendURL, "/")

	switch strings.ToLower(strings.TrimSpace(n.DispatchMode)) {
	case DispatchModeAsync:
		n.DispatchMode = DispatchModeAsync
	default:
		n.DispatchMode = DispatchModeInline
	}

	if n.EmailTimeout <= 0 {
		n.EmailTimeout = defaultChannelTimeout
	}
	if n.PushTimeout <= 0 {
		n.PushTimeout = defaultChannelTimeout
	}
	if n.DispatchTimeout <= 0 {
		n.DispatchTimeout = defaultDispatchTimeout
	}
	if n.DefaultPageSize <= 0 {
		n.DefaultPageSize = defaultPageSize
	}
	if n.MaxPageSize < n.DefaultPageSize {
		n.MaxPageSize = max(defaultMaxPageSize, n.DefaultPageSize)
	}

	n.RateLimit.Read = withRateLimitDefaults(n.RateLimit.Read, defaultReadPerMinute, defaultReadBurst)
	n.RateLimit.MarkRead = withRateLimitDefaults(n.RateLimit.MarkRead, defaultMarkReadPerMinute, defaultMarkReadBurst)

	return n
}

func withRateLimitDefaults(l RateLimit, perMinute, burst int) RateLimit {
	if l.PerMinute <= 0 {
		l.PerMinute = perMinute
	}
	if l.Burst <= 0 {
		l.Burst = burst
	}
	if l.ExpiresIn <= 0 {
		l.ExpiresIn = defaultRateLimitExpiry
	}

	return l
}

// boundDispatchTimeout keeps the fan-out deadline under the HTTP write timeout,
// leaving the handler time to write its response.
func boundDispatchTimeout(dispatch, writeTimeout time.Duration) time.Duration {
	if writeTimeout <= 0 || dispatch < writeTimeout*3/4 {
		return dispatch
	}

	return writeTimeout / 2
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
