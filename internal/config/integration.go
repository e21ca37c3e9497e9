package config

import "sync"

var (
	globalConfig     *Config      //nolint:gochecknoglobals // Singleton pattern for configuration
	globalConfigMu   sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig
	globalConfigInit bool         //nolint:gochecknoglobals // Tracks if global config has been initialized
)

// InitGlobalConfig initializes the global configuration with defaults if it
// has not been set yet.
func InitGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if globalConfigInit {
		return
	}

	globalConfig = New()
	globalConfigInit = true
}

// SetGlobalConfig replaces the global configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	globalConfig = cfg
	globalConfigInit = cfg != nil
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}

// GetGlobalConfig returns the global configuration, initializing it if needed.
func GetGlobalConfig() *Config {
	InitGlobalConfig()

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// GetTableConfig returns a copy of the table section of the global configuration.
func GetTableConfig() TableConfig {
	return GetGlobalConfig().Table
}

// GetLoggingConfig returns a copy of the logging section of the global configuration.
// Overrides such as --debug are applied by the caller after retrieving it.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
