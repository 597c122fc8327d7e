package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds authentication configuration for the application
type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret" json:"jwt_secret"`
	TokenLifetime time.Duration `yaml:"token_lifetime" json:"token_lifetime"`
	Issuer        string        `yaml:"issuer" json:"issuer"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("token_lifetime", "24h")
	v.SetDefault("issuer", "choir-portal")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
		// Config file not found, rely on defaults and environment variables.
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Secrets come from the environment, never from the config file.
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenLifetime <= 0 {
		return fmt.Errorf("token lifetime must be positive")
	}
	return nil
}
