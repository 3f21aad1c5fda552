package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/davetashner/parkheat/internal/dashboard"
	"github.com/davetashner/parkheat/internal/output"
	"github.com/davetashner/parkheat/internal/parks"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Delimiter != "" {
		if r, size := utf8.DecodeRuneInString(cfg.Delimiter); size != len(cfg.Delimiter) || r == '"' || r == '\n' || r == '\r' {
			errs = append(errs, fmt.Sprintf("delimiter: must be a single character other than a quote or newline, got %q", cfg.Delimiter))
		}
	}

	if _, err := parks.ParseMissingPolicy(cfg.Missing); err != nil {
		errs = append(errs, fmt.Sprintf("missing: %v", err))
	}

	if cfg.TopN < 0 {
		errs = append(errs, fmt.Sprintf("top_n: must be non-negative, got %d", cfg.TopN))
	}

	if cfg.RatingStep < 0 {
		errs = append(errs, fmt.Sprintf("rating_step: must be positive, got %g", cfg.RatingStep))
	}
	if cfg.RatingMax < 0 {
		errs = append(errs, fmt.Sprintf("rating_max: must be positive, got %g", cfg.RatingMax))
	}
	if cfg.RatingStep > 0 && cfg.RatingMax > 0 && cfg.RatingStep > cfg.RatingMax {
		errs = append(errs, fmt.Sprintf("rating_step: %g exceeds rating_max %g", cfg.RatingStep, cfg.RatingMax))
	} else if step, limit := orDefault(cfg.RatingStep, DefaultRatingStep), orDefault(cfg.RatingMax, DefaultRatingMax); step > 0 && limit > 0 {
		if n := dashboard.ThresholdCount(step, limit); n > dashboard.MaxThresholds {
			errs = append(errs, fmt.Sprintf("rating_step: %g gives %d slider steps up to %g (at most %d allowed)",
				step, n, limit, dashboard.MaxThresholds))
		}
	}

	switch strings.ToLower(cfg.ImageFormat) {
	case "", "png", "svg":
		// valid
	default:
		errs = append(errs, fmt.Sprintf("image_format: invalid value %q (must be png or svg)", cfg.ImageFormat))
	}

	for _, name := range cfg.Formats {
		if _, err := output.GetFormatter(name); err != nil {
			errs = append(errs, fmt.Sprintf("formats: %v", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
