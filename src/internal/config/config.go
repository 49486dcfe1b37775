package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig    `mapstructure:"server" json:"server"`
	Chemistry  ChemistryConfig `mapstructure:"chemistry" json:"chemistry"`
	Viewer     ViewerConfig    `mapstructure:"viewer" json:"viewer"`
	Presets    PresetsConfig   `mapstructure:"presets" json:"presets"`
	StorageDir string          `mapstructure:"storage_dir" json:"storage_dir"`
}

type ServerConfig struct {
	Addr          string `mapstructure:"addr" json:"addr"`
	Key           string `mapstructure:"key" json:"key,omitempty"`
	EffectiveHost string `mapstructure:"-" json:"effectiveHost"`
	Port          int    `mapstructure:"-" json:"port"`
}

// ChemistryConfig tunes the toolkit calls. Seed pins the conformer RNG so
// identical submissions reproduce; -1 lets the toolkit pick.
type ChemistryConfig struct {
	Seed          int `mapstructure:"seed" json:"seed"`
	MaxIterations int `mapstructure:"max_iterations" json:"max_iterations"`
}

type ViewerConfig struct {
	Style      string `mapstructure:"style" json:"style"`
	Background string `mapstructure:"background" json:"background"`
	Height     int    `mapstructure:"height" json:"height"`
}

type PresetsConfig struct {
	File string `mapstructure:"file" json:"file"`
}

func Load(override string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	appDir := filepath.Join(home, ".molsim")
	if _, err := os.Stat(appDir); os.IsNotExist(err) {
		_ = os.MkdirAll(appDir, 0755)
	}

	// Environment overrides
	if envDir := os.Getenv("MOLSIM_STORAGE_DIR"); envDir != "" {
		appDir = envDir
		_ = os.MkdirAll(appDir, 0755)
	}

	v := viper.New()
	v.SetDefault("server.addr", ":8501")
	v.SetDefault("chemistry.seed", 42)
	v.SetDefault("chemistry.max_iterations", 200)
	v.SetDefault("viewer.style", "stick")
	v.SetDefault("viewer.background", "white")
	v.SetDefault("viewer.height", 500)

	if override != "" {
		v.AddConfigPath(".")
		v.SetConfigFile(override)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(appDir)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Compute effective host/port from addr
	host, portStr, err := net.SplitHostPort(cfg.Server.Addr)
	if err != nil {
		return nil, fmt.Errorf("invalid server.addr %q: %w", cfg.Server.Addr, err)
	}
	cfg.Server.EffectiveHost = host
	if cfg.Server.EffectiveHost == "" {
		cfg.Server.EffectiveHost = "0.0.0.0"
	}
	p, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q in server.addr %q: %w", portStr, cfg.Server.Addr, err)
	}
	cfg.Server.Port = p

	if cfg.Chemistry.MaxIterations <= 0 {
		return nil, fmt.Errorf("chemistry.max_iterations must be positive, got %d", cfg.Chemistry.MaxIterations)
	}

	if cfg.StorageDir == "" {
		cfg.StorageDir = appDir
	}
	if strings.HasPrefix(cfg.StorageDir, "~/") {
		cfg.StorageDir = filepath.Join(home, cfg.StorageDir[2:])
	}

	// Server key from the environment wins over the file
	if envKey := os.Getenv("MOLSIM_SERVER_KEY"); envKey != "" {
		cfg.Server.Key = envKey
	}

	return &cfg, nil
}
