package config

import (
	"fmt"
	"reflect"
	"strings"

	"booking-sync/core/calcom"
	"booking-sync/core/database"
	"booking-sync/core/logger"
	"booking-sync/core/server"
	"booking-sync/core/storage"
	"booking-sync/feature/cancellation"
	"booking-sync/feature/export"
	"booking-sync/feature/slots"
	"booking-sync/feature/sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Calcom holds the provider credentials and request window.
	Calcom calcom.Config `mapstructure:"calcom"`
	// Schedule defines the generated calendar.
	Schedule slots.Config `mapstructure:"schedule"`
	// Export holds the output formats and sinks.
	Export export.Config `mapstructure:"export"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Sync holds configuration for scheduled runs.
	Sync sync.Config `mapstructure:"sync"`
	// Cancel holds configuration for the cancellation workflow.
	Cancel cancellation.Config `mapstructure:"cancel"`
}

// envAliases lists the extra environment names accepted for a key, checked in order.
var envAliases = map[string][]string{
	"calcom.api_key":       {"CALCOM_API_KEY", "CAL_API_KEY"},
	"calcom.event_type_id": {"CALCOM_EVENT_TYPE_ID", "EVENT_TYPE_ID"},
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
