package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings, all overridable via VEYA_* env vars.
type Config struct {
	Addr       string
	DBPath     string
	RedisURL   string // empty disables the cache
	AdminToken string
}

func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("veya")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "veya.db")
	v.SetDefault("redis_url", "")
	v.SetDefault("admin_token", "")

	return Config{
		Addr:       v.GetString("addr"),
		DBPath:     v.GetString("db_path"),
		RedisURL:   v.GetString("redis_url"),
		AdminToken: v.GetString("admin_token"),
	}
}
