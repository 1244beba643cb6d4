package yamlfixture

// Timestamps are decoded as strings so every fixture gets the same parsing
// rules whatever YAML would have inferred.

type yamlSchedules struct {
	Schedules []yamlScheduleRow `yaml:"schedules"`
}

type yamlScheduleRow struct {
	VesselCode string `yaml:"vessel_code"`
	ETA        string `yaml:"eta"`
	ETB        string `yaml:"etb"`
	ETD        string `yaml:"etd"`
	Port       string `yaml:"port"`
}

type yamlForm struct {
	Form struct {
		Name  string `yaml:"name"`
		Age   string `yaml:"age"`
		Email string `yaml:"email"`
	} `yaml:"form"`
}

type yamlUpdates struct {
	Updates []yamlUpdate `yaml:"updates"`
}

type yamlUpdate struct {
	Kind string `yaml:"kind"`
	Old  string `yaml:"old"`
	New  string `yaml:"new"`

	OldETA string `yaml:"old_eta"`
	NewETA string `yaml:"new_eta"`
	OldETB string `yaml:"old_etb"`
	NewETB string `yaml:"new_etb"`
	OldETD string `yaml:"old_etd"`
	NewETD string `yaml:"new_etd"`
}
