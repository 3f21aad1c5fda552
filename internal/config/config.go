// Package config handles .parkheat.yaml and .parkheat.toml configuration
// files, PARKHEAT_* environment overrides and their merge with CLI flags.
package config

// Config represents the contents of a .parkheat.yaml (or .parkheat.toml)
// file. Zero values mean "not set".
type Config struct {
	CSV         string   `yaml:"csv,omitempty" toml:"csv,omitempty"`
	OutDir      string   `yaml:"outdir,omitempty" toml:"outdir,omitempty"`
	Delimiter   string   `yaml:"delimiter,omitempty" toml:"delimiter,omitempty"`
	Missing     string   `yaml:"missing,omitempty" toml:"missing,omitempty"`
	TopN        int      `yaml:"top_n,omitempty" toml:"top_n,omitempty"`
	RatingStep  float64  `yaml:"rating_step,omitempty" toml:"rating_step,omitempty"`
	RatingMax   float64  `yaml:"rating_max,omitempty" toml:"rating_max,omitempty"`
	ImageFormat string   `yaml:"image_format,omitempty" toml:"image_format,omitempty"`
	Addr        string   `yaml:"addr,omitempty" toml:"addr,omitempty"`
	Formats     []string `yaml:"formats,omitempty" toml:"formats,omitempty"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".parkheat.yaml"

// TOMLFileName is the TOML alternative to FileName. FileName wins when both
// exist.
const TOMLFileName = ".parkheat.toml"

// Default values.
const (
	DefaultCSV         = "data/national_parks_hiking_conditions.csv"
	DefaultOutDir      = "output_maps"
	DefaultDelimiter   = ","
	DefaultMissing     = "skip"
	DefaultTopN        = 15
	DefaultRatingStep  = 0.5
	DefaultRatingMax   = 10.0
	DefaultImageFormat = "png"
	DefaultAddr        = ":8080"
)

// DefaultFormats are the tabular formats written by export.
var DefaultFormats = []string{"csv", "json", "markdown", "xlsx"}

// Defaults returns a Config with every field set to its default.
func Defaults() *Config {
	return &Config{
		CSV:         DefaultCSV,
		OutDir:      DefaultOutDir,
		Delimiter:   DefaultDelimiter,
		Missing:     DefaultMissing,
		TopN:        DefaultTopN,
		RatingStep:  DefaultRatingStep,
		RatingMax:   DefaultRatingMax,
		ImageFormat: DefaultImageFormat,
		Addr:        DefaultAddr,
		Formats:     append([]string(nil), DefaultFormats...),
	}
}

// DelimiterRune returns the field delimiter as a rune, or ',' when unset.
func (c *Config) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}
