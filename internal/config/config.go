package config

import (
	"fmt"
	"os"
	"time"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/player"
	"gopkg.in/yaml.v3"
)

const (
	DefaultContainer = "sorting-graph"
	DefaultSortType  = algo.BubbleSort
	DefaultTheme     = "cyberpunk"
	DefaultSpeed     = 1.0
)

type Config struct {
	Container string       `yaml:"container"`
	SortType  string       `yaml:"sort_type"`
	Children  int          `yaml:"children"`
	MaxValue  int          `yaml:"max_value"`
	Seed      int64        `yaml:"seed"`
	Theme     string       `yaml:"theme"`
	Speed     float64      `yaml:"speed"`
	Pacing    PacingConfig `yaml:"pacing"`
}

// PacingConfig holds step delays in milliseconds.
type PacingConfig struct {
	FrameMs    int `yaml:"frame_ms"`
	SwapMs     int `yaml:"swap_ms"`
	CompareMs  int `yaml:"compare_ms"`
	ScanMs     int `yaml:"scan_ms"`
	FlourishMs int `yaml:"flourish_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		Container: DefaultContainer,
		SortType:  DefaultSortType,
		Children:  bars.DefaultChildren,
		MaxValue:  bars.DefaultMaxValue,
		Theme:     DefaultTheme,
		Speed:     DefaultSpeed,
		Pacing:    pacingConfig(player.DefaultPacing()),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Container == "" {
		return fmt.Errorf("container id must not be empty")
	}
	if _, err := algo.Lookup(c.SortType); err != nil {
		return err
	}
	if c.Children < 0 || c.Children > bars.MaxChildren {
		return fmt.Errorf("children must be in [0, %d], got %d", bars.MaxChildren, c.Children)
	}
	if c.MaxValue <= 1 {
		return fmt.Errorf("max_value must be > 1, got %d", c.MaxValue)
	}
	if c.Speed < 0 {
		return fmt.Errorf("speed must not be negative, got %f", c.Speed)
	}
	p := c.Pacing
	for _, ms := range []int{p.FrameMs, p.SwapMs, p.CompareMs, p.ScanMs, p.FlourishMs} {
		if ms < 0 {
			return fmt.Errorf("pacing delays must not be negative")
		}
	}
	return nil
}

// GetPacing converts the millisecond delays, divided by Speed. A zero speed
// means no delays.
func (c *Config) GetPacing() player.Pacing {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	p := player.Pacing{
		Frame:    ms(c.Pacing.FrameMs),
		Swap:     ms(c.Pacing.SwapMs),
		Compare:  ms(c.Pacing.CompareMs),
		Scan:     ms(c.Pacing.ScanMs),
		Flourish: ms(c.Pacing.FlourishMs),
	}
	if c.Speed == 0 {
		return player.Instant()
	}
	return p.Scale(1 / c.Speed)
}

func pacingConfig(p player.Pacing) PacingConfig {
	return PacingConfig{
		FrameMs:    int(p.Frame / time.Millisecond),
		SwapMs:     int(p.Swap / time.Millisecond),
		CompareMs:  int(p.Compare / time.Millisecond),
		ScanMs:     int(p.Scan / time.Millisecond),
		FlourishMs: int(p.Flourish / time.Millisecond),
	}
}
