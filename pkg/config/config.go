// Package config reads the application configuration through Viper, env
// vars first with an optional .env file.
package config

import "github.com/spf13/viper"

// Config groups the application configuration.
type Config struct {
	App     AppConfig
	Storage StorageConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// StorageConfig locates the persisted snapshot blob. The whole table set is
// written to a single JSON file after every mutation and loaded once at
// startup.
type StorageConfig struct {
	Dir  string // directory holding the blob
	Blob string // blob file name
}

// Load reads the configuration from env vars and, if present, a .env file
// in the working directory. Env vars win. Expected names: APP_ENV,
// APP_NAME, LOG_LEVEL, STORAGE_DIR, STORAGE_BLOB.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // a missing file is fine

	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "nawiri-bms"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Dir:  getString(v, "STORAGE_DIR", "."),
			Blob: getString(v, "STORAGE_BLOB", "nawiri-bms-storage.json"),
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}
