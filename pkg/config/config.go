package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

var configDir string
var configFilePath string

// getConfigDir returns platform-specific config directory
func getConfigDir() (string, error) {
	if runtime.GOOS == "windows" {
		// Windows: %LOCALAPPDATA%\content-engine
		appData := os.Getenv("LOCALAPPDATA")
		if appData == "" {
			appData = os.Getenv("APPDATA")
		}
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = home
		}
		return filepath.Join(appData, "content-engine"), nil
	}

	// Unix-like (macOS, Linux): ~/.config/content-engine
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "content-engine"), nil
}

// Init initializes the configuration
func Init(configPath string) error {
	var err error
	if configPath != "" {
		configDir = filepath.Dir(configPath)
		configFilePath = configPath
	} else {
		configDir, err = getConfigDir()
		if err != nil {
			return err
		}
		configFilePath = filepath.Join(configDir, "config.toml")
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	setDefaults()

	viper.SetConfigFile(configFilePath)
	_ = viper.ReadInConfig()

	return nil
}

func setDefaults() {
	viper.SetDefault("output.format", "text")

	viper.SetDefault("data.dir", filepath.Join(configDir, "data"))
	viper.SetDefault("defaults.platform", "linkedin")
	viper.SetDefault("defaults.period", "week")

	viper.SetDefault("research.timeout", 15)
	viper.SetDefault("research.max_chars", 12000)

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", filepath.Join(configDir, "content-engine.log"))
}

// expandPath expands ~ to home directory
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetString returns a string configuration value
func GetString(key string) string {
	value := viper.GetString(key)
	// Expand tilde in path-like configuration keys
	if key == "data.dir" || key == "log.file" {
		return expandPath(value)
	}
	return value
}

// GetInt returns an int configuration value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool configuration value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Set sets a configuration value for the current process only
func Set(key string, value interface{}) {
	viper.Set(key, value)
}

// DataDir returns the directory holding history files, creating it if needed
func DataDir() (string, error) {
	dir := GetString("data.dir")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	return configDir
}
