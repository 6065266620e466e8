package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LINE Messaging API
	Line LineConfig

	// AI answer gateway
	OpenAI  OpenAIConfig
	Gateway GatewayConfig

	// Reference data
	RefData RefDataConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type LineConfig struct {
	ChannelSecret      string
	ChannelAccessToken string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// TierConfig is one degradation tier of the answer gateway.
type TierConfig struct {
	Timeout   time.Duration
	MaxTokens int
}

type GatewayConfig struct {
	Detailed    TierConfig
	Concise     TierConfig
	MaxRetries  int
	BackoffBase time.Duration
}

type RefDataConfig struct {
	ArticlesPath string
	FAQPath      string
}

type WebhookConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LINE channel credentials, with flat env fallbacks
	cfg.Line.ChannelSecret = viper.GetString("line.channel_secret")
	cfg.Line.ChannelAccessToken = viper.GetString("line.channel_access_token")
	if secret := viper.GetString("line_channel_secret"); secret != "" {
		cfg.Line.ChannelSecret = secret
	}
	if token := viper.GetString("line_channel_access_token"); token != "" {
		cfg.Line.ChannelAccessToken = token
	}
	if cfg.Line.ChannelSecret == "" {
		return nil, fmt.Errorf("line channel secret is required - set line.channel_secret or LINE_CHANNEL_SECRET")
	}
	if cfg.Line.ChannelAccessToken == "" {
		return nil, fmt.Errorf("line channel access token is required - set line.channel_access_token or LINE_CHANNEL_ACCESS_TOKEN")
	}

	// OpenAI
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	// Gateway tiers
	cfg.Gateway.Detailed.Timeout = viper.GetDuration("gateway.detailed.timeout")
	cfg.Gateway.Detailed.MaxTokens = viper.GetInt("gateway.detailed.max_tokens")
	cfg.Gateway.Concise.Timeout = viper.GetDuration("gateway.concise.timeout")
	cfg.Gateway.Concise.MaxTokens = viper.GetInt("gateway.concise.max_tokens")
	cfg.Gateway.MaxRetries = viper.GetInt("gateway.max_retries")
	cfg.Gateway.BackoffBase = viper.GetDuration("gateway.backoff_base")

	// Reference data
	cfg.RefData.ArticlesPath = viper.GetString("refdata.articles_path")
	cfg.RefData.FAQPath = viper.GetString("refdata.faq_path")

	// Webhooks
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("openai.model", "gpt-4o-mini")

	viper.SetDefault("gateway.detailed.timeout", "25s")
	viper.SetDefault("gateway.detailed.max_tokens", 1200)
	viper.SetDefault("gateway.concise.timeout", "10s")
	viper.SetDefault("gateway.concise.max_tokens", 400)
	viper.SetDefault("gateway.max_retries", 2)
	viper.SetDefault("gateway.backoff_base", "500ms")

	viper.SetDefault("refdata.articles_path", "data/articles.json")
	viper.SetDefault("refdata.faq_path", "data/faq.json")

	viper.SetDefault("webhook.rate_limit_per_min", 60)
}
