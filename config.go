package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/fragart/player"
	"github.com/stewi1014/fragart/programs"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Config struct {
	Window          WindowConfig  `yaml:"window"`
	Interval        time.Duration `yaml:"interval"`
	Background      mgl32.Vec4    `yaml:"background,flow"`
	FlowFieldPoints int           `yaml:"flowfield_points"`
	// ShaderDir is a directory of .glsl files used instead of the embedded copies.
	ShaderDir   string `yaml:"shader_dir"`
	ErrorDialog bool   `yaml:"error_dialog"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Fragart",
		},
		Interval:        time.Duration(player.DefaultInterval * float64(time.Second)),
		Background:      mgl32.Vec4{0.078, 0.078, 0.117, 1},
		FlowFieldPoints: programs.DefaultPoints,
	}
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("opening config failed: %w", err)
	}
	defer file.Close()

	if err := c.decode(file, path); err != nil {
		return c, err
	}
	return c, nil
}

func (c *Config) decode(r io.Reader, name string) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing config %v failed: %w", name, err)
	}
	return c.Validate()
}

// Shaders is the filesystem art shader paths are read from.
func (c Config) Shaders() fs.FS {
	if c.ShaderDir != "" {
		return os.DirFS(c.ShaderDir)
	}
	return programs.Shaders()
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %vx%v must be positive", c.Window.Width, c.Window.Height)
	case c.Interval <= 0:
		return fmt.Errorf("interval %v must be positive", c.Interval)
	case c.FlowFieldPoints <= 0:
		return fmt.Errorf("flowfield_points %v must be positive", c.FlowFieldPoints)
	}

	if c.ShaderDir != "" {
		info, err := os.Stat(c.ShaderDir)
		if err != nil {
			return fmt.Errorf("shader_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("shader_dir %v is not a directory", c.ShaderDir)
		}
	}

	for _, v := range c.Background {
		if v < 0 || v > 1 {
			return fmt.Errorf("background %v must be within [0, 1]", c.Background)
		}
	}
	return nil
}
