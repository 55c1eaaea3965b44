// Package config loads runtime settings from flags, ORBITS_* environment
// variables and an optional orbits.{yaml,toml,json} file, in that precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/solar-orbits/constants"
	"github.com/lixenwraith/solar-orbits/terminal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys
const (
	KeyFPS          = "fps"
	KeyColor        = "color"
	KeyDebug        = "debug"
	KeySound        = "sound"
	KeyMetricsAddr  = "metrics-addr"
	KeyInitialSpeed = "initial-speed"
	KeyConfigFile   = "config"
)

const (
	envPrefix  = "ORBITS"
	configName = "orbits"
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds resolved runtime settings
type Config struct {
	FPS          int
	ColorMode    terminal.ColorMode
	Debug        bool
	Sound        bool
	MetricsAddr  string
	InitialSpeed float64
}

// FrameInterval returns the frame-rate cap as a tick interval
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// RegisterFlags declares every key on fs with its default
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Int(KeyFPS, constants.DefaultFPS, "frame rate cap")
	fs.String(KeyColor, "auto", "color mode: auto, truecolor, 256")
	fs.Bool(KeyDebug, false, "write debug log to logs/")
	fs.Bool(KeySound, true, "play feedback tones")
	fs.String(KeyMetricsAddr, "", "serve Prometheus metrics on this address (e.g. :9090)")
	fs.Float64(KeyInitialSpeed, constants.SpeedDefault, "initial speed control value")
	fs.String(KeyConfigFile, "", "config file (default ./orbits.yaml or $HOME/.config/orbits/orbits.yaml)")
}

// New returns a viper instance bound to fs and the environment
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

// Load reads the optional config file and resolves all keys
func Load(v *viper.Viper) (Config, error) {
	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/orbits")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	mode, err := terminal.ParseColorMode(v.GetString(KeyColor))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	cfg := Config{
		FPS:          v.GetInt(KeyFPS),
		ColorMode:    mode,
		Debug:        v.GetBool(KeyDebug),
		Sound:        v.GetBool(KeySound),
		MetricsAddr:  v.GetString(KeyMetricsAddr),
		InitialSpeed: v.GetFloat64(KeyInitialSpeed),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > constants.MaxFPS {
		return fmt.Errorf("%w: fps %d outside [1, %d]", ErrInvalid, c.FPS, constants.MaxFPS)
	}
	if !(c.InitialSpeed >= constants.SpeedMin && c.InitialSpeed <= constants.SpeedMax) {
		return fmt.Errorf("%w: initial-speed %v outside [%v, %v]",
			ErrInvalid, c.InitialSpeed, constants.SpeedMin, constants.SpeedMax)
	}
	return nil
}
