package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Settings struct {
	Server    ServerSettings    `mapstructure:"server"`
	Web       WebSettings       `mapstructure:"web"`
	Generator GeneratorSettings `mapstructure:"generator"`
	Client    ClientSettings    `mapstructure:"client"`
	CORS      CORSSettings      `mapstructure:"cors"`
	Log       LogSettings       `mapstructure:"log"`
}

type ServerSettings struct {
	Port int `mapstructure:"port"`
}

type WebSettings struct {
	Port        int           `mapstructure:"port"`
	SessionIdle time.Duration `mapstructure:"session_idle"`
}

// GeneratorSettings points at the external question generator. An empty WebhookURL
// is accepted here and reported on every generation request instead.
type GeneratorSettings struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

type ClientSettings struct {
	APIBaseURL string `mapstructure:"api_base_url"`
	Timezone   string `mapstructure:"timezone"`
}

type CORSSettings struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Load reads settings from an optional YAML file, then environment variables.
func Load(configFile string) (*Settings, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("examai")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/examai")
	}

	v.SetDefault("server.port", 8080)
	v.SetDefault("web.port", 3000)
	v.SetDefault("web.session_idle", time.Hour)
	v.SetDefault("generator.webhook_url", "")
	v.SetDefault("client.api_base_url", "http://localhost:8080")
	v.SetDefault("client.timezone", "America/Sao_Paulo")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "")

	bindings := map[string]string{
		"server.port":           "PORT",
		"web.port":              "WEB_PORT",
		"generator.webhook_url": "GENERATOR_WEBHOOK_URL",
		"client.api_base_url":   "EXAMAI_API_URL",
		"client.timezone":       "EXAMAI_TIMEZONE",
		"log.level":             "LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &s, nil
}
