package domain

// Config represents the patternkit configuration loaded from patternkit.yaml.
type Config struct {
	Output      OutputConfig
	Transcripts TranscriptsConfig
	Paths       PathsConfig
	Schedule    ScheduleConfig
}

type OutputConfig struct {
	Format string
}

type TranscriptsConfig struct {
	Enabled bool
}

type PathsConfig struct {
	FixturesDir string
	RunsDir     string
}

// ScheduleConfig feeds the schedule demos.
type ScheduleConfig struct {
	Ports []string
}

// DefaultConfig provides sane defaults if patternkit.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Output:      OutputConfig{Format: "pretty"},
		Transcripts: TranscriptsConfig{Enabled: false},
		Paths: PathsConfig{
			FixturesDir: "fixtures",
			RunsDir:     "runs",
		},
		Schedule: ScheduleConfig{
			Ports: []string{"HKG", "SIN", "SHG", "NGB", "QIN", "HAN", "BKK", "TPE", "YOK"},
		},
	}
}
