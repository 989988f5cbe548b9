package config

import (
	"os"
	"testing"
)

var configEnvVars = []string{
	"PORT",
	"ENVIRONMENT",
	"LOG_LEVEL",
	"DOWNSTREAM_REGION",
	"AWS_ENDPOINT_URL",
	"INVOKER_TYPE",
	"PARSER_FUNCTION_NAME",
	"UPLOAD_BUCKET_NAME",
	"DEFAULT_OBJECT_KEY",
	"DEFAULT_GROUP_ID",
	"CHAT_FUNCTION_NAME",
	"PROXY_DEFAULT_GROUP_ID",
	"PROXY_DEFAULT_STEP",
	"RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	// viper treats empty variables as unset
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "default configuration",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				if cfg.AWS.Region != "ap-southeast-5" {
					t.Errorf("Expected region ap-southeast-5, got %s", cfg.AWS.Region)
				}
				if cfg.Parser.FunctionName != "owewow-textract-parser" {
					t.Errorf("Expected parser function owewow-textract-parser, got %s", cfg.Parser.FunctionName)
				}
				if cfg.Parser.BucketName != "owewow-uploads-x9k4m2" {
					t.Errorf("Expected bucket owewow-uploads-x9k4m2, got %s", cfg.Parser.BucketName)
				}
				if cfg.Parser.DefaultObjectKey != "receipt.jpg" {
					t.Errorf("Expected default object key receipt.jpg, got %s", cfg.Parser.DefaultObjectKey)
				}
				if cfg.Parser.DefaultGroupID != "demo" {
					t.Errorf("Expected default group demo, got %s", cfg.Parser.DefaultGroupID)
				}
				if cfg.Proxy.ChatFunctionName != "owewow-conversational-receipt-ai" {
					t.Errorf("Expected chat function owewow-conversational-receipt-ai, got %s", cfg.Proxy.ChatFunctionName)
				}
				if cfg.Proxy.DefaultGroupID != "quick-split" {
					t.Errorf("Expected proxy group quick-split, got %s", cfg.Proxy.DefaultGroupID)
				}
				if cfg.Proxy.DefaultStep != "initial" {
					t.Errorf("Expected proxy step initial, got %s", cfg.Proxy.DefaultStep)
				}
				if cfg.Invoker.Type != "aws" {
					t.Errorf("Expected invoker type aws, got %s", cfg.Invoker.Type)
				}
				if cfg.Port != "8081" {
					t.Errorf("Expected port 8081, got %s", cfg.Port)
				}
				if cfg.RateLimit.Burst != 200 {
					t.Errorf("Expected burst 200, got %d", cfg.RateLimit.Burst)
				}
			},
		},
		{
			name: "environment overrides",
			envVars: map[string]string{
				"DOWNSTREAM_REGION":    "us-east-1",
				"PARSER_FUNCTION_NAME": "local-parser",
				"AWS_ENDPOINT_URL":     "http://localhost:4566",
				"INVOKER_TYPE":         "mock",
				"RATE_LIMIT_RPS":       "2.5",
				"LOG_LEVEL":            "debug",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.AWS.Region != "us-east-1" {
					t.Errorf("Expected region us-east-1, got %s", cfg.AWS.Region)
				}
				if cfg.Parser.FunctionName != "local-parser" {
					t.Errorf("Expected parser function local-parser, got %s", cfg.Parser.FunctionName)
				}
				if cfg.AWS.EndpointURL != "http://localhost:4566" {
					t.Errorf("Expected endpoint override, got %s", cfg.AWS.EndpointURL)
				}
				if cfg.Invoker.Type != "mock" {
					t.Errorf("Expected invoker type mock, got %s", cfg.Invoker.Type)
				}
				if cfg.RateLimit.RequestsPerSecond != 2.5 {
					t.Errorf("Expected 2.5 rps, got %f", cfg.RateLimit.RequestsPerSecond)
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("OWEWOW_TEST_VALUE", "set")

	if got := GetEnv("OWEWOW_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %s, want set", got)
	}
	if got := GetEnv("OWEWOW_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %s, want fallback", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("OWEWOW_TEST_BOOL", "true")
	t.Setenv("OWEWOW_TEST_BAD_BOOL", "maybe")

	if !GetEnvAsBool("OWEWOW_TEST_BOOL", false) {
		t.Error("Expected true from OWEWOW_TEST_BOOL")
	}
	if GetEnvAsBool("OWEWOW_TEST_BAD_BOOL", false) {
		t.Error("Expected fallback for unparsable bool")
	}
}

func TestDeploymentMode(t *testing.T) {
	runtime := GetServerlessConfig()

	want := "server"
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		want = "serverless"
	}
	if got := GetDeploymentMode(); got != want {
		t.Errorf("GetDeploymentMode() = %s, want %s", got, want)
	}
	if runtime.IsLambda != (want == "serverless") {
		t.Errorf("IsLambda = %v, inconsistent with mode %s", runtime.IsLambda, want)
	}
	if runtime.Stage == "" {
		t.Error("Expected a stage, defaulting to dev")
	}
	if runtime.FunctionName != os.Getenv("AWS_LAMBDA_FUNCTION_NAME") {
		t.Errorf("FunctionName = %s, want the Lambda function name", runtime.FunctionName)
	}
}
