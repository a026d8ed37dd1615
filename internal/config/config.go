// Package config defines engine configuration structures and loading hooks.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address for serve mode, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DataPath points at the CSV snapshot to load.
	DataPath string `koanf:"data_path"`

	// DBDir holds the SQLite snapshot database; empty keeps everything
	// in memory.
	DBDir string `koanf:"db_dir"`

	// Decades is the chronological decade sequence. Order here is the only
	// time ordering the engine ever uses.
	Decades []string `koanf:"decades"`

	// TopListSize caps the climber and faller lists.
	TopListSize int `koanf:"top_list_size"`

	// EvergreenMinDecades is the longevity threshold for evergreen names.
	EvergreenMinDecades int `koanf:"evergreen_min_decades"`

	// SuffixPatterns is the ordered suffix match list; first match wins and
	// the remainder falls into the "other" bucket.
	SuffixPatterns []string `koanf:"suffix_patterns"`

	// SpecialChars are the diacritics whose per-cohort share is reported.
	SpecialChars []string `koanf:"special_chars"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":9080",
		DataPath: "names.csv",
		DBDir:    "",
		Decades: []string{
			"1880s", "1890s", "1900s", "1910s", "1920s",
			"1930s", "1940s", "1950s", "1960s", "1970s",
			"1980s", "1990s", "2000s", "2010s", "2020s",
		},
		TopListSize:         20,
		EvergreenMinDecades: 10,
		SuffixPatterns:      []string{"ie", "ah", "a", "e", "y", "n", "o"},
		SpecialChars:        []string{"é", "á"},
	}
}
