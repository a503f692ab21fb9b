package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// settings is the merged result of flags, environment and config file.
type settings struct {
	Type         string
	Output       string
	Width        int
	ANSI         bool
	Exec         bool
	Figlet       string
	FigletFont   string
	Shell        string
	KeepTrailing bool
	LogFile      string
	LogLevel     string
}

// loadSettings layers changed flags over TPP_* environment variables over
// the config file over flag defaults. An explicit config file must exist.
func loadSettings(flags *pflag.FlagSet, configFile string) (settings, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(normalizePath(configFile))
	} else {
		v.SetConfigName("tpp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tpp"))
		}
	}
	v.SetEnvPrefix("TPP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return settings{}, fmt.Errorf("bind flags: %w", err)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configFile != "" {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}
	return settings{
		Type:         strings.ToLower(strings.TrimSpace(v.GetString("type"))),
		Output:       v.GetString("output"),
		Width:        v.GetInt("width"),
		ANSI:         v.GetBool("ansi"),
		Exec:         v.GetBool("exec"),
		Figlet:       v.GetString("figlet"),
		FigletFont:   v.GetString("figlet-font"),
		Shell:        v.GetString("shell"),
		KeepTrailing: v.GetBool("keep-trailing-slide"),
		LogFile:      v.GetString("log"),
		LogLevel:     v.GetString("log-level"),
	}, nil
}
