package config

import (
	"fmt"
	"image/color"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gogpu/gg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"filter-explorer/internal/geom"
)

type Config struct {
	Debug bool `mapstructure:"DEBUG"`

	// Rendering
	FilterName  string `mapstructure:"FILTER_NAME" validate:"required"`
	ImagePath   string `mapstructure:"IMAGE_PATH"`
	ResourceDir string `mapstructure:"RESOURCE_DIR"`
	ContentMode string `mapstructure:"CONTENT_MODE" validate:"oneof=fit fill none"`
	Background  string `mapstructure:"BACKGROUND_COLOR" validate:"hexcolor"`
	RefreshHz   int    `mapstructure:"REFRESH_HZ" validate:"min=1,max=240"`

	// Headless rendering
	Headless bool     `mapstructure:"HEADLESS"`
	Output   string   `mapstructure:"OUTPUT" validate:"required_if=Headless true"`
	Width    int      `mapstructure:"WIDTH" validate:"min=1,max=16384"`
	Height   int      `mapstructure:"HEIGHT" validate:"min=1,max=16384"`
	Values   []string `mapstructure:"VALUES"`
}

// flag names mapped to config keys
var flagKeys = map[string]string{
	"debug":        "DEBUG",
	"filter":       "FILTER_NAME",
	"image":        "IMAGE_PATH",
	"resources":    "RESOURCE_DIR",
	"content-mode": "CONTENT_MODE",
	"background":   "BACKGROUND_COLOR",
	"refresh-hz":   "REFRESH_HZ",
	"headless":     "HEADLESS",
	"out":          "OUTPUT",
	"width":        "WIDTH",
	"height":       "HEIGHT",
	"set":          "VALUES",
}

// RegisterFlags declares the command line flags understood by LoadConfig.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Bool("debug", false, "Enable debug mode with verbose logging")
	fs.String("filter", "", "Filter to open (e.g. CIGaussianBlur)")
	fs.String("image", "", "Path of the input image")
	fs.String("resources", "", "Directory searched for images referenced by name")
	fs.String("content-mode", "", "Content mode: fit, fill or none")
	fs.String("background", "", "Background colour as #rrggbb")
	fs.Int("refresh-hz", 0, "Display refresh rate")
	fs.Bool("headless", false, "Render one frame to --out and exit")
	fs.String("out", "", "Output path for headless rendering")
	fs.Int("width", 0, "Headless render width")
	fs.Int("height", 0, "Headless render height")
	fs.StringArray("set", nil, "Filter input as key=value, repeatable")
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(v *viper.Viper, c Config) error {
	typ := reflect.TypeOf(c)
	for i := 0; i < typ.NumField(); i++ {
		if tag := typ.Field(i).Tag.Get("mapstructure"); tag != "" {
			if err := v.BindEnv(tag); err != nil {
				return fmt.Errorf("bind env %s: %w", tag, err)
			}
		}
	}
	return nil
}

// LoadConfig resolves configuration from flags, environment and defaults,
// in that order of precedence. fs may be nil.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := bindEnv(v, Config{}); err != nil {
		return nil, err
	}
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("FILTER_NAME", "CIGaussianBlur")
	v.SetDefault("CONTENT_MODE", "fit")
	v.SetDefault("BACKGROUND_COLOR", "#000000")
	v.SetDefault("REFRESH_HZ", 60)
	v.SetDefault("WIDTH", 1024)
	v.SetDefault("HEIGHT", 768)

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ContentMode = strings.ToLower(cfg.ContentMode)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Fields returns the configuration as log fields
func (c *Config) Fields() logrus.Fields {
	return logrus.Fields{
		"filter":       c.FilterName,
		"image":        c.ImagePath,
		"resources":    c.ResourceDir,
		"content_mode": c.ContentMode,
		"background":   c.Background,
		"refresh_hz":   c.RefreshHz,
		"headless":     c.Headless,
	}
}

// Mode parses ContentMode
func (c *Config) Mode() geom.ContentMode {
	mode, err := geom.ParseContentMode(c.ContentMode)
	if err != nil {
		return geom.ScaleAspectFit
	}
	return mode
}

// BackgroundColor parses Background (#rgb, #rgba, #rrggbb or #rrggbbaa).
// The result is non-premultiplied.
func (c *Config) BackgroundColor() color.Color {
	rgba := gg.Hex(c.Background)
	return color.NRGBA{
		R: channel(rgba.R),
		G: channel(rgba.G),
		B: channel(rgba.B),
		A: channel(rgba.A),
	}
}

// channel rounds a [0, 1] component so hex bytes survive the conversion.
func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

// ParseValues splits Values into filter inputs.
func (c *Config) ParseValues() (map[string]float64, error) {
	result := make(map[string]float64, len(c.Values))
	for _, kv := range c.Values {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid value %q: want key=value", kv)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", kv, err)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("invalid value %q: not a finite number", kv)
		}
		result[strings.TrimSpace(key)] = value
	}
	return result, nil
}
