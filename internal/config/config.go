package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	YouTube struct {
		APIKey string
	}
}

// Load reads config from environment (VIDEVAL_ prefix) and optional videval.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VIDEVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("videval")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":8080")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.YouTube.APIKey = v.GetString("youtube.api_key")

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("VIDEVAL_DB_DRIVER is required (sqlite3, mysql, postgres)")
	}
	if cfg.DB.DSN == "" {
		return nil, fmt.Errorf("VIDEVAL_DB_DSN is required")
	}
	if cfg.YouTube.APIKey == "" {
		return nil, fmt.Errorf("VIDEVAL_YOUTUBE_API_KEY is required")
	}

	return cfg, nil
}
