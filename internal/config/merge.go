package config

// Merge overlays over onto base and returns the result. Set (non-zero)
// fields of over win; zero-value fields fall through to base. Neither
// argument is modified.
func Merge(base, over *Config) *Config {
	result := *base
	result.Formats = append([]string(nil), base.Formats...)

	if over.CSV != "" {
		result.CSV = over.CSV
	}
	if over.OutDir != "" {
		result.OutDir = over.OutDir
	}
	if over.Delimiter != "" {
		result.Delimiter = over.Delimiter
	}
	if over.Missing != "" {
		result.Missing = over.Missing
	}
	if over.TopN != 0 {
		result.TopN = over.TopN
	}
	if over.RatingStep != 0 {
		result.RatingStep = over.RatingStep
	}
	if over.RatingMax != 0 {
		result.RatingMax = over.RatingMax
	}
	if over.ImageFormat != "" {
		result.ImageFormat = over.ImageFormat
	}
	if over.Addr != "" {
		result.Addr = over.Addr
	}
	if len(over.Formats) > 0 {
		result.Formats = append([]string(nil), over.Formats...)
	}
	return &result
}

// Resolve layers the sources from lowest to highest precedence: defaults,
// the global file, the local file, the environment, then CLI flags.
func Resolve(global, local, env, flags *Config) *Config {
	cfg := Defaults()
	for _, layer := range []*Config{global, local, env, flags} {
		if layer != nil {
			cfg = Merge(cfg, layer)
		}
	}
	return cfg
}
