// Package config loads and validates lvsearch configuration.
//
// Configuration comes from, in increasing precedence: built-in defaults, a
// YAML file, and LVSEARCH_* environment variables (LVSEARCH_SEARCH_ALGORITHM,
// LVSEARCH_OUTPUT_FORMAT, ...). Command-line flags are applied on top by the CLI.
package config

// Config is the root configuration.
type Config struct {
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// SearchConfig selects the algorithm and problem options.
type SearchConfig struct {
	// Algorithm is a registered algorithm name or alias, in any case.
	Algorithm string `mapstructure:"algorithm" yaml:"algorithm" validate:"required,algorithm"`
	// Heuristic is used by astar. auto picks octile for diagonal mazes and
	// manhattan otherwise.
	Heuristic string `mapstructure:"heuristic" yaml:"heuristic" validate:"required,heuristic"`
	// Diagonal enables 8-connected movement.
	Diagonal bool `mapstructure:"diagonal" yaml:"diagonal"`
	// MaxExpansions caps node expansions; 0 means no limit.
	MaxExpansions int `mapstructure:"max_expansions" yaml:"max_expansions" validate:"min=0"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format       string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json yaml"`
	Color        bool   `mapstructure:"color" yaml:"color"`
	ShowPath     bool   `mapstructure:"show_path" yaml:"show_path"`
	ShowExplored bool   `mapstructure:"show_explored" yaml:"show_explored"`
	Verify       bool   `mapstructure:"verify" yaml:"verify"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json"`
}

// DefaultConfig returns the configuration used when no file is present.
// The default algorithm is dfs.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Algorithm:     "dfs",
			Heuristic:     "auto",
			Diagonal:      false,
			MaxExpansions: 0,
		},
		Output: OutputConfig{
			Format:       "text",
			Color:        true,
			ShowPath:     false,
			ShowExplored: false,
			Verify:       false,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
