package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
	Auth  AuthConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	Username     string
	PasswordHash string
	TokenSecret  string
	TokenExpiry  time.Duration
}

// LoadConfig reads configuration from a .env file and the environment.
// Environment variables take precedence over file values.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("AUTH_TOKEN_EXPIRY", "1h")

	tokenExpiry, err := time.ParseDuration(viper.GetString("AUTH_TOKEN_EXPIRY"))
	if err != nil {
		tokenExpiry = time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			Username:     viper.GetString("AUTH_USERNAME"),
			PasswordHash: viper.GetString("AUTH_PASSWORD_HASH"),
			TokenSecret:  viper.GetString("AUTH_TOKEN_SECRET"),
			TokenExpiry:  tokenExpiry,
		},
	}

	return config, nil
}
