package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lomik/zapwriter"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/shvyrev/jtk/pkg/almost"
)

const (
	PresetFloat  = "float"
	PresetDouble = "double"
)

var (
	ErrUnknownPreset  = errors.New("unknown tolerance preset")
	ErrConflictDigits = errors.New("epsilon and significant-digits are mutually exclusive")
)

// Tolerance describes an almost.Almost. Zero fields are taken from the preset.
type Tolerance struct {
	Preset            string  `toml:"preset" json:"preset"`
	Epsilon           float64 `toml:"epsilon" json:"epsilon"`
	SignificantDigits int     `toml:"significant-digits" json:"significant-digits"`
	MinValue          float64 `toml:"min-value" json:"min-value"`
}

// Config is the whole config file: one [tolerance] table and any number of [[logging]] entries.
type Config struct {
	Tolerance Tolerance          `toml:"tolerance" json:"tolerance"`
	Logging   []zapwriter.Config `toml:"logging" json:"logging"`
}

// New returns the default config
func New() *Config {
	return &Config{
		Tolerance: Tolerance{
			Preset: PresetFloat,
		},
		Logging: []zapwriter.Config{newLoggingConfig()},
	}
}

func newLoggingConfig() zapwriter.Config {
	return zapwriter.Config{
		Logger:           "",
		File:             "stderr",
		Level:            "info",
		Encoding:         "mixed",
		EncodingTime:     "iso8601",
		EncodingDuration: "seconds",
	}
}

func (t *Tolerance) preset() (almost.Almost, error) {
	switch t.Preset {
	case "", PresetFloat:
		return almost.Float(), nil
	case PresetDouble:
		return almost.Double(), nil
	}

	return almost.Almost{}, errors.Wrapf(ErrUnknownPreset, "%q", t.Preset)
}

// Almost builds the comparator described by t.
func (t *Tolerance) Almost() (almost.Almost, error) {
	if t.Epsilon != 0 && t.SignificantDigits != 0 {
		return almost.Almost{}, ErrConflictDigits
	}

	base, err := t.preset()
	if err != nil {
		return almost.Almost{}, err
	}

	epsilon := base.Epsilon()
	if t.Epsilon != 0 {
		epsilon = t.Epsilon
	}
	if t.SignificantDigits != 0 {
		a, err := almost.NewSignificantDigits(t.SignificantDigits)
		if err != nil {
			return almost.Almost{}, err
		}
		epsilon = a.Epsilon()
	}

	minValue := base.MinValue()
	if t.MinValue != 0 {
		minValue = t.MinValue
	}

	return almost.NewEpsilonMinValue(epsilon, minValue)
}

// Validate returns all problems of the config combined
func (c *Config) Validate() error {
	var err error

	if _, e := c.Tolerance.Almost(); e != nil {
		err = multierr.Append(err, errors.Wrap(e, "[tolerance]"))
	}

	if len(c.Logging) == 0 {
		err = multierr.Append(err, errors.New("[logging] at least one logger required"))
	}
	for i := range c.Logging {
		if c.Logging[i].File == "" {
			err = multierr.Append(err, errors.Errorf("[[logging]] #%d: empty file", i))
		}
	}

	return err
}

// Marshal encodes cfg in TOML
func Marshal(cfg interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)

	encoder := toml.NewEncoder(buf)
	encoder.Indent = ""

	if err := encoder.Encode(cfg); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Print writes cfg in TOML to stdout
func Print(cfg interface{}) error {
	b, err := Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Print(string(b))
	return nil
}

// Unmarshal decodes TOML over the defaults and validates the result
func Unmarshal(body []byte) (*Config, error) {
	cfg := New()
	cfg.Logging = nil

	if _, err := toml.Decode(string(body), cfg); err != nil {
		return nil, err
	}
	if cfg.Logging == nil {
		cfg.Logging = []zapwriter.Config{newLoggingConfig()}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ReadConfig reads and validates the config file. An empty filename returns the defaults.
func ReadConfig(filename string) (*Config, error) {
	if filename == "" {
		return New(), nil
	}

	body, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Unmarshal(body)
}
