// Package config resolves runtime settings from flags, GEOPATH_* environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"geopath/internal/canvas"
	"geopath/internal/render"
)

var ErrInvalidConfig = errors.New("config: invalid")

const DefaultInput = "berlin_boundary.geojson"

type Config struct {
	Input    string
	Width    float64
	Height   float64
	Format   render.Format
	Output   string
	ClipID   string
	Fill     string
	Strict   bool
	Preview  bool
	LogLevel string
}

// Size is the canvas the path is projected onto.
func (c *Config) Size() canvas.Size {
	return canvas.Size{Width: c.Width, Height: c.Height}
}

// Load parses args (without the program name). Precedence is flag, then
// environment, then config file, then default. The first positional
// argument is the input path.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("geopath", pflag.ContinueOnError)
	fs.Float64("width", 700, "canvas width in output units")
	fs.Float64("height", 500, "canvas height in output units")
	fs.StringP("format", "f", string(render.FormatPath), "output format: path, svg or png")
	fs.StringP("output", "o", "", "write output to this file instead of stdout")
	fs.String("clip-id", "boundary-clip", "clipPath id used by the svg format")
	fs.String("fill", "#7C3AED", "fill colour used by the png format")
	fs.Bool("strict", false, "fail on shapes that are not Polygon or MultiPolygon")
	fs.Bool("preview", false, "open the terminal previewer")
	fs.String("log-level", "info", "diagnostic log level")
	fs.StringP("config", "c", "", "YAML config file")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: geopath [flags] [file]\n\n%s", fs.FlagUsages())
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("%w: expected at most one input file, got %d", ErrInvalidConfig, fs.NArg())
	}

	v := viper.New()
	v.SetEnvPrefix("geopath")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("input", DefaultInput)
	for key, flag := range map[string]string{
		"width":     "width",
		"height":    "height",
		"format":    "format",
		"output":    "output",
		"clip_id":   "clip-id",
		"fill":      "fill",
		"strict":    "strict",
		"preview":   "preview",
		"log.level": "log-level",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, err
		}
	}
	if file, _ := fs.GetString("config"); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	if fs.NArg() == 1 {
		v.Set("input", fs.Arg(0))
	}

	cfg := &Config{
		Input:    v.GetString("input"),
		Width:    v.GetFloat64("width"),
		Height:   v.GetFloat64("height"),
		Format:   render.Format(strings.ToLower(v.GetString("format"))),
		Output:   v.GetString("output"),
		ClipID:   v.GetString("clip_id"),
		Fill:     v.GetString("fill"),
		Strict:   v.GetBool("strict"),
		Preview:  v.GetBool("preview"),
		LogLevel: v.GetString("log.level"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var err error
	if c.Input == "" {
		err = multierr.Append(err, errors.New("input path is empty"))
	}
	if e := c.Size().Validate(); e != nil {
		err = multierr.Append(err, e)
	}
	if e := c.Format.Validate(); e != nil {
		err = multierr.Append(err, e)
	}
	if c.Format == render.FormatPNG && c.Output == "" && !c.Preview {
		err = multierr.Append(err, errors.New("png output needs --output"))
	}
	if c.Format == render.FormatSVG && strings.TrimSpace(c.ClipID) == "" {
		err = multierr.Append(err, errors.New("clip id is empty"))
	}
	if _, e := render.ParseColor(c.Fill); e != nil {
		err = multierr.Append(err, e)
	}
	if _, e := zap.ParseAtomicLevel(c.LogLevel); e != nil {
		err = multierr.Append(err, e)
	}
	if err != nil {
		return multierr.Append(ErrInvalidConfig, err)
	}
	return nil
}
