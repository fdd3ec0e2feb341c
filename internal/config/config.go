package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings for the API, loaded from
// configs/config.yaml with environment-variable overrides.
type Config struct {
	DBSource      string        `mapstructure:"DB_SOURCE"`
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	RedisAddress  string        `mapstructure:"REDIS_ADDRESS"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
}

// LoadConfig reads configuration from the given directory. Environment
// variables take precedence over values from the file.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
