// Package board loads board description files: which pins a board
// reserves, how its loopback jumper is wired and the pin assignments to
// apply at start-up.
package board

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed nu-lb-nuc122.yaml
var defaultBoard []byte

// Defaults
const (
	DefaultBudget   = 1 << 20
	DefaultPrescale = 11
	DefaultCompare  = 1000
)

var (
	ErrEmptyBoard = errors.New("board name missing")
)

// Config is a board description.
type Config struct {
	Board    string            `yaml:"board"`
	Reserved []string          `yaml:"reserved"`
	Loopback Loopback          `yaml:"loopback"`
	Timer    Timer             `yaml:"timer"`
	Budget   uint32            `yaml:"budget"`
	Pins     map[string]string `yaml:"pins"`
	Debounce *Debounce         `yaml:"debounce"`
}

// Loopback names the jumpered pin pair used by the GPIO suite.
type Loopback struct {
	Out string `yaml:"out"`
	In  string `yaml:"in"`
}

// Timer is the period of the timer suite.
type Timer struct {
	Prescale *uint8 `yaml:"prescale"`
	Compare  uint32 `yaml:"compare"`
}

// Debounce configures the port debounce clock and the debounced pins.
type Debounce struct {
	Source string   `yaml:"source"` // "hclk" or "10k"
	Select uint8    `yaml:"select"` // clock divider, 2^select
	Pins   []string `yaml:"pins"`
}

// Parse decodes a YAML board description and fills in defaults. It does
// not validate; see Validate.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	applyDefaults(&config)
	return &config, nil
}

// Load reads a board description file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Default returns the built-in NU-LB-NUC122 description.
func Default() *Config {
	config, err := Parse(defaultBoard)
	if err != nil {
		panic(err)
	}
	return config
}

// applyDefaults fills in missing values.
func applyDefaults(config *Config) {
	if config.Budget == 0 {
		config.Budget = DefaultBudget
	}
	if config.Timer.Prescale == nil {
		p := uint8(DefaultPrescale)
		config.Timer.Prescale = &p
	}
	if config.Timer.Compare == 0 {
		config.Timer.Compare = DefaultCompare
	}
	if config.Pins == nil {
		config.Pins = map[string]string{}
	}
	if config.Debounce != nil && config.Debounce.Source == "" {
		config.Debounce.Source = "hclk"
	}
}
