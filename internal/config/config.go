package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default downstream targets of the receipt adapter
const (
	DefaultRegion           = "ap-southeast-5"
	DefaultParserFunction   = "owewow-textract-parser"
	DefaultChatFunction     = "owewow-conversational-receipt-ai"
	DefaultUploadBucket     = "owewow-uploads-x9k4m2"
	DefaultObjectKey        = "receipt.jpg"
	DefaultGroupID          = "demo"
	DefaultProxyGroupID     = "quick-split"
	DefaultConversationStep = "initial"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	AWS         AWSConfig
	Invoker     InvokerConfig
	Parser      ParserConfig
	Proxy       ProxyConfig
	RateLimit   RateLimitConfig
}

// AWSConfig holds AWS client configuration
type AWSConfig struct {
	Region          string
	EndpointURL     string // optional, e.g. LocalStack
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// InvokerConfig selects the downstream invoker implementation
type InvokerConfig struct {
	Type string // "aws" or "mock"
}

// ParserConfig holds the receipt processor settings
type ParserConfig struct {
	FunctionName     string
	BucketName       string
	DefaultObjectKey string
	DefaultGroupID   string
}

// ProxyConfig holds the receipt proxy routing settings
type ProxyConfig struct {
	ChatFunctionName string
	DefaultGroupID   string
	DefaultStep      string
}

// RateLimitConfig holds local server rate limiting
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		AWS: AWSConfig{
			Region:          v.GetString("DOWNSTREAM_REGION"),
			EndpointURL:     v.GetString("AWS_ENDPOINT_URL"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    v.GetString("AWS_SESSION_TOKEN"),
		},
		Invoker: InvokerConfig{
			Type: v.GetString("INVOKER_TYPE"),
		},
		Parser: ParserConfig{
			FunctionName:     v.GetString("PARSER_FUNCTION_NAME"),
			BucketName:       v.GetString("UPLOAD_BUCKET_NAME"),
			DefaultObjectKey: v.GetString("DEFAULT_OBJECT_KEY"),
			DefaultGroupID:   v.GetString("DEFAULT_GROUP_ID"),
		},
		Proxy: ProxyConfig{
			ChatFunctionName: v.GetString("CHAT_FUNCTION_NAME"),
			DefaultGroupID:   v.GetString("PROXY_DEFAULT_GROUP_ID"),
			DefaultStep:      v.GetString("PROXY_DEFAULT_STEP"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DOWNSTREAM_REGION", DefaultRegion)
	v.SetDefault("INVOKER_TYPE", "aws")
	v.SetDefault("PARSER_FUNCTION_NAME", DefaultParserFunction)
	v.SetDefault("UPLOAD_BUCKET_NAME", DefaultUploadBucket)
	v.SetDefault("DEFAULT_OBJECT_KEY", DefaultObjectKey)
	v.SetDefault("DEFAULT_GROUP_ID", DefaultGroupID)
	v.SetDefault("CHAT_FUNCTION_NAME", DefaultChatFunction)
	v.SetDefault("PROXY_DEFAULT_GROUP_ID", DefaultProxyGroupID)
	v.SetDefault("PROXY_DEFAULT_STEP", DefaultConversationStep)
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsBool gets an environment variable as boolean with a fallback value
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
