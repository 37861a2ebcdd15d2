// config.go
package config

import (
	"os"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// ReadConfig reads the configuration from the YAML file. Database
// credentials and the JWT secret can be overridden from the environment
// so the file itself never has to carry production secrets.
func ReadConfig(filePath string) (*entity.Config, error) {
	var config entity.Config

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("unable to read config file", zap.Error(err))
		return nil, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		logger.Error("unable to unmarshal YAML", zap.Error(err))
		return nil, err
	}

	applyEnvOverrides(&config)
	applyDefaults(&config)

	return &config, nil
}

// GetEnv returns the value of an environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func applyEnvOverrides(c *entity.Config) {
	c.PostgresConfig.Host = GetEnv("DB_HOST", c.PostgresConfig.Host)
	c.PostgresConfig.User = GetEnv("DB_USER", c.PostgresConfig.User)
	c.PostgresConfig.Password = GetEnv("DB_PASSWORD", c.PostgresConfig.Password)
	c.PostgresConfig.DBName = GetEnv("DB_NAME", c.PostgresConfig.DBName)
	c.PostgresConfig.Port = GetEnv("DB_PORT", c.PostgresConfig.Port)
	c.PostgresConfig.SSLMode = GetEnv("DB_SSLMODE", c.PostgresConfig.SSLMode)
	c.JWTSecretKey = GetEnv("JWT_SECRET", c.JWTSecretKey)
}

func applyDefaults(c *entity.Config) {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.MediaRoot == "" {
		c.MediaRoot = "media"
	}
	if c.Limits.MinAmount == 0 {
		c.Limits.MinAmount = 1
	}
	if c.Limits.MaxAmount == 0 {
		c.Limits.MaxAmount = 32000
	}
	if c.Limits.MinCookingTime == 0 {
		c.Limits.MinCookingTime = 1
	}
	if c.Limits.MaxCookingTime == 0 {
		c.Limits.MaxCookingTime = 32000
	}
	if c.Limits.PageSize == 0 {
		c.Limits.PageSize = 6
	}
}
