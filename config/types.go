package config

// MineConfig holds the settings of a validation run.
type MineConfig struct {
	WindowSize         int    `ini:"window_size" yaml:"window_size"`
	Engine             string `ini:"engine" yaml:"engine"`
	StopOnFirstInvalid bool   `ini:"stop_on_first_invalid" yaml:"stop_on_first_invalid"`
	Format             string `ini:"format" yaml:"format"`
	MetricsFile        string `ini:"metrics_file" yaml:"metrics_file"`
}

// ConfigFile is the top-level structure of a YAML config file.
type ConfigFile struct {
	Mine MineConfig `yaml:"mine"`
}
