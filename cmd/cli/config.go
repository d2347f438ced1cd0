package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	StorageBackendMemory = "memory"
	StorageBackendMongo  = "mongo"
)

// Config holds all service configuration
type Config struct {
	HTTPAddress string

	StorageBackend string
	MongoURI       string
	MongoDatabase  string

	PiAPIURL string
	PiAPIKey string

	PiTokenPublicKey      string
	AllowUnverifiedTokens bool
}

// LoadConfig loads configuration from files and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"HTTPAddress":           "HTTP_ADDRESS",
		"StorageBackend":        "STORAGE_BACKEND",
		"MongoURI":              "MONGO_URI",
		"MongoDatabase":         "MONGO_DATABASE",
		"PiAPIURL":              "PI_API_URL",
		"PiAPIKey":              "PI_API_KEY",
		"PiTokenPublicKey":      "PI_TOKEN_PUBLIC_KEY",
		"AllowUnverifiedTokens": "ALLOW_UNVERIFIED_TOKENS",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("pibuilder_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.pibuilder")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8080")
	v.SetDefault("StorageBackend", StorageBackendMemory)
	v.SetDefault("MongoDatabase", "pibuilder")
	v.SetDefault("PiAPIURL", "https://api.minepi.com/v2")
}

func validateConfig(config *Config) error {
	switch config.StorageBackend {
	case StorageBackendMemory:
	case StorageBackendMongo:
		if config.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when STORAGE_BACKEND is %s", StorageBackendMongo)
		}
	default:
		return fmt.Errorf("unknown storage backend %q, expected %s or %s",
			config.StorageBackend, StorageBackendMemory, StorageBackendMongo)
	}

	return nil
}
