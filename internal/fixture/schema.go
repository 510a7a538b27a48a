package fixture

// Suite is the top-level YAML structure for a fixture suite.
type Suite struct {
	Version string `yaml:"version"`
	Dir     string `yaml:"dir"` // fixture directory, relative to the suite file
	Cases   []Case `yaml:"cases"`
}

// Case names one JSON event fixture and the outcome expected from it.
type Case struct {
	Name       string   `yaml:"name"`
	File       string   `yaml:"file"`
	WantStatus string   `yaml:"want_status"`           // "ok" | "error"; empty = don't check
	WantErrors []string `yaml:"want_errors,omitempty"` // exact expected error list; empty = don't check
}
