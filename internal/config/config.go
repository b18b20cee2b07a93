package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the tool configuration, read from config.toml next to the
// executable.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Upload UploadConfig `toml:"upload"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// UploadConfig limits uploaded workbooks.
type UploadConfig struct {
	MaxFileSizeMB int `toml:"max_file_size_mb"`
}

// LoadConfigInfo records which settings the config file set explicitly,
// so command-line flags only override unspecified ones.
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig returns the configuration used when no config.toml exists.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20350,
			DevMode: false,
		},
		Upload: UploadConfig{
			MaxFileSizeMB: 32,
		},
	}
}

// MaxUploadBytes converts the configured limit to bytes; zero means no limit.
func (c *AppConfig) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxFileSizeMB) << 20
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads config.toml and returns load metadata.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config, &info)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnvOverrides(config, &info)

	return config, info, nil
}

// applyEnvOverrides applies environment overrides used for local runs.
func applyEnvOverrides(config *AppConfig, info *LoadConfigInfo) {
	if v := os.Getenv("FATURAMENTO_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			config.Server.Port = port
			info.PortSpecified = true
		}
	}
}

// LoadConfig loads config.toml from the executable directory.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}
