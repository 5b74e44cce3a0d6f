package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	Environment string
	Mongo       struct {
		URI      string
		Database string
	}
	Auth struct {
		JWTSecret string
	}
	Minio struct {
		Endpoint  string
		AccessKey string
		SecretKey string
		Bucket    string
		UseSSL    bool
	}
}

// Load reads configuration from environment variables and an optional config file.
func Load() (Config, error) {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("RECIPEVAULT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("environment", "development")
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "recipevault")
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.accesskey", "minioadmin")
	v.SetDefault("minio.secretkey", "minioadmin")
	v.SetDefault("minio.bucket", "recipe-images")
	v.SetDefault("minio.usessl", false)

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with production error reporting.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
