package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mezonai/blockmine/engine"
	"github.com/mezonai/blockmine/window"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWindowSize = 100

	FormatText = "text"
	FormatJSON = "json"

	mineSection = "mine"
)

var (
	ErrInvalidConfig     = errors.New("invalid mine config")
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)

// DefaultMineConfig returns the settings used when no config file is given.
func DefaultMineConfig() *MineConfig {
	return &MineConfig{
		WindowSize:         DefaultWindowSize,
		Engine:             string(engine.KindSumIndex),
		StopOnFirstInvalid: true,
		Format:             FormatText,
	}
}

// LoadMineConfig reads a config file, picking the decoder from its extension:
// .ini files use the [mine] section, .yml/.yaml files the top-level mine key.
// Unset keys keep their default values.
func LoadMineConfig(path string) (*MineConfig, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		return LoadMineConfigINI(path)
	case ".yml", ".yaml":
		return LoadMineConfigYAML(path)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "file %s", path)
	}
}

// LoadMineConfigINI reads the [mine] section of an .ini file.
func LoadMineConfigINI(path string) (*MineConfig, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load ini config %s", path)
	}
	mineCfg := DefaultMineConfig()
	if err := cfg.Section(mineSection).MapTo(mineCfg); err != nil {
		return nil, errors.Wrapf(err, "map [%s] section of %s", mineSection, path)
	}
	if err := mineCfg.Validate(); err != nil {
		return nil, err
	}
	return mineCfg, nil
}

// LoadMineConfigYAML reads the mine key of a YAML file.
func LoadMineConfigYAML(path string) (*MineConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open yaml config %s", path)
	}
	defer file.Close()

	cfgFile := ConfigFile{Mine: *DefaultMineConfig()}
	if err := yaml.NewDecoder(file).Decode(&cfgFile); err != nil {
		return nil, errors.Wrapf(err, "decode yaml config %s", path)
	}
	if err := cfgFile.Mine.Validate(); err != nil {
		return nil, err
	}
	return &cfgFile.Mine, nil
}

// Validate checks the settings before a mine is built from them.
func (c *MineConfig) Validate() error {
	if c.WindowSize < window.MinSize {
		return errors.Wrapf(ErrInvalidConfig, "window_size %d is below %d", c.WindowSize, window.MinSize)
	}
	if _, err := engine.ParseKind(c.Engine); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return errors.Wrapf(ErrInvalidConfig, "format %q is not %s or %s", c.Format, FormatText, FormatJSON)
	}
	return nil
}

// EngineKind returns the configured engine. Call Validate first.
func (c *MineConfig) EngineKind() engine.Kind {
	return engine.Kind(c.Engine)
}
