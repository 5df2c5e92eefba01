package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting of the billing service, loaded from environment
// variables. A local .env file is applied to the environment by main.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	GinMode    string `mapstructure:"GIN_MODE"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	PaymentClaimsTable string `mapstructure:"PAYMENT_CLAIMS_TABLE"`
	FeeStatusTable     string `mapstructure:"FEE_STATUS_TABLE"`
	ApplicationsTable  string `mapstructure:"APPLICATIONS_TABLE"`
	NotificationsTable string `mapstructure:"NOTIFICATIONS_TABLE"`
	ScholarshipsTable  string `mapstructure:"SCHOLARSHIPS_TABLE"`
	UniversitiesTable  string `mapstructure:"UNIVERSITIES_TABLE"`

	ValidatorWebhookURL       string `mapstructure:"VALIDATOR_WEBHOOK_URL"`
	EmailWebhookURL           string `mapstructure:"EMAIL_WEBHOOK_URL"`
	PublicBaseURL             string `mapstructure:"PUBLIC_BASE_URL"`
	SideChannelTimeoutSeconds int    `mapstructure:"SIDE_CHANNEL_TIMEOUT_SECONDS"`
	SideChannelMock           bool   `mapstructure:"SIDE_CHANNEL_MOCK"`

	AuthJWTSecret           string `mapstructure:"AUTH_JWT_SECRET"`
	AuthJWTIssuer           string `mapstructure:"AUTH_JWT_ISSUER"`
	AuthJWTAudience         string `mapstructure:"AUTH_JWT_AUDIENCE"`
	AuthAllowHeaderFallback bool   `mapstructure:"AUTH_ALLOW_HEADER_FALLBACK"`
	ValidatorCallbackSecret string `mapstructure:"VALIDATOR_CALLBACK_SECRET"`

	RabbitMQURL    string `mapstructure:"RABBITMQ_URL"`
	EventsExchange string `mapstructure:"EVENTS_EXCHANGE"`
}

var keys = []string{
	"SERVER_PORT", "GIN_MODE",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	"PAYMENT_CLAIMS_TABLE", "FEE_STATUS_TABLE", "APPLICATIONS_TABLE", "NOTIFICATIONS_TABLE",
	"SCHOLARSHIPS_TABLE", "UNIVERSITIES_TABLE",
	"VALIDATOR_WEBHOOK_URL", "EMAIL_WEBHOOK_URL", "PUBLIC_BASE_URL",
	"SIDE_CHANNEL_TIMEOUT_SECONDS", "SIDE_CHANNEL_MOCK",
	"AUTH_JWT_SECRET", "AUTH_JWT_ISSUER", "AUTH_JWT_AUDIENCE", "AUTH_ALLOW_HEADER_FALLBACK",
	"VALIDATOR_CALLBACK_SECRET",
	"RABBITMQ_URL", "EVENTS_EXCHANGE",
}

// LoadConfig reads the configuration from the environment, falling back to
// defaults for unset keys.
func LoadConfig() (config Config, err error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("PAYMENT_CLAIMS_TABLE", "payment_claims")
	v.SetDefault("FEE_STATUS_TABLE", "fee_status_profiles")
	v.SetDefault("APPLICATIONS_TABLE", "applications")
	v.SetDefault("NOTIFICATIONS_TABLE", "notifications")
	v.SetDefault("SCHOLARSHIPS_TABLE", "scholarships")
	v.SetDefault("UNIVERSITIES_TABLE", "universities")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:8080")
	v.SetDefault("SIDE_CHANNEL_TIMEOUT_SECONDS", 10)
	v.SetDefault("EVENTS_EXCHANGE", "payment_events")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	config.PublicBaseURL = strings.TrimRight(config.PublicBaseURL, "/")
	if config.SideChannelTimeoutSeconds <= 0 {
		config.SideChannelTimeoutSeconds = 10
	}
	return config, nil
}

func (c Config) SideChannelTimeout() time.Duration {
	return time.Duration(c.SideChannelTimeoutSeconds) * time.Second
}

// VerdictCallbackURL is the claim-scoped callback handed to the validator.
func (c Config) VerdictCallbackURL() string {
	return c.PublicBaseURL + "/v1/verdicts/claims"
}
