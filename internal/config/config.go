//Package config loads the server settings from file, environment and
//defaults.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

//Defaults. The loopback host can be overridden on systems where
//localhost resolution misbehaves (e.g. bind to 0.0.0.0 in a container).
const (
	DefaultHost        = "127.0.0.1"
	DefaultPort        = 8050
	DefaultDataDir     = "data"
	DefaultUploadLimit = 10 << 20
)

type Config struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	Debug         bool   `mapstructure:"debug"`
	DataDir       string `mapstructure:"data_dir"`
	ElementColors string `mapstructure:"element_colors"`
	UploadLimit   int64  `mapstructure:"upload_limit"`
}

//Addr returns the host:port the server binds to.
func (C *Config) Addr() string {
	return fmt.Sprintf("%s:%d", C.Host, C.Port)
}

//Load reads the configuration. When file is empty, curview.yml in the
//working directory is used if present. CURVIEW_* environment variables
//override file values.
func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("debug", false)
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("element_colors", "")
	v.SetDefault("upload_limit", DefaultUploadLimit)
	v.SetEnvPrefix("curview")
	v.AutomaticEnv()
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	} else {
		v.SetConfigName("curview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("config: %w", err)
			}
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

//LoadElementColors reads a YAML element color table with the layout of
//the Jmol color file:
//
//	jmol:
//	  C: "#909090"
//	  O: "#FF0D0D"
//
//An empty path returns nil, letting the caller fall back to the
//built-in table.
func LoadElementColors(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: element colors: %w", err)
	}
	var tables map[string]map[string]string
	if err := yaml.Unmarshal(b, &tables); err != nil {
		return nil, fmt.Errorf("config: element colors %s: %w", path, err)
	}
	jmol, ok := tables["jmol"]
	if !ok {
		return nil, fmt.Errorf("config: element colors %s: no jmol table", path)
	}
	return jmol, nil
}
