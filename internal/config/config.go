package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file written by init and read by clean.
const FileName = "ledgerclean.yaml"

// Config represents the top-level ledgerclean.yaml configuration.
type Config struct {
	Project    ProjectConfig    `yaml:"project"`
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Categories CategoriesConfig `yaml:"categories"`
	Anomalies  AnomaliesConfig  `yaml:"anomalies"`
}

// ProjectConfig identifies the dataset being cleaned.
type ProjectConfig struct {
	Name string `yaml:"name"`
}

// InputConfig locates the raw export.
type InputConfig struct {
	RawDir string `yaml:"raw_dir"`
	File   string `yaml:"file,omitempty"` // explicit file, overrides raw_dir scan
}

// OutputConfig locates the cleaned outputs.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// CategoriesConfig holds the controlled vocabulary.
// Canonical order is significant: fuzzy ties resolve to the earliest entry.
type CategoriesConfig struct {
	Canonical      []string          `yaml:"canonical"`
	Synonyms       map[string]string `yaml:"synonyms,omitempty"`
	FuzzyThreshold float64           `yaml:"fuzzy_threshold"`
	Fallback       string            `yaml:"fallback"`
}

// AnomaliesConfig controls the advisory anomaly heuristics.
type AnomaliesConfig struct {
	Multiplier          float64 `yaml:"multiplier"`            // flag when |amount| exceeds multiplier x rolling mean
	Window              int     `yaml:"window"`                // rolling mean window (valid amounts)
	DuplicateWindowDays int     `yaml:"duplicate_window_days"` // repeat description+amount window
}

// Load reads a ledgerclean.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the stock vocabulary for a new project.
func Default(projectName string) *Config {
	return &Config{
		Project: ProjectConfig{
			Name: projectName,
		},
		Input: InputConfig{
			RawDir: "data/raw",
		},
		Output: OutputConfig{
			Dir: "data/cleaned",
		},
		Categories: CategoriesConfig{
			Canonical: []string{
				"Groceries",
				"Utilities",
				"Entertainment",
				"Salary",
				"Rent",
				"Transportation",
				"Dining Out",
				"Miscellaneous",
			},
			Synonyms: map[string]string{
				"food":             "Groceries",
				"grocery":          "Groceries",
				"grocer":           "Groceries",
				"supermarket":      "Groceries",
				"groc3ry":          "Groceries",
				"groc3ry shopping": "Groceries",
				"utility":          "Utilities",
				"electric":         "Utilities",
				"el3ctric":         "Utilities",
				"water":            "Utilities",
				"gas bill":         "Utilities",
				"movie":            "Entertainment",
				"movietickets":     "Entertainment",
				"movieticket":      "Entertainment",
				"movi3":            "Entertainment",
				"concert":          "Entertainment",
				"streaming":        "Entertainment",
				"salary":           "Salary",
				"salaray":          "Salary",
				"s@l@ry":           "Salary",
				"payroll":          "Salary",
				"paycheck":         "Salary",
				"deposit":          "Salary",
				"rent":             "Rent",
				"r3nt":             "Rent",
				"landlord":         "Rent",
				"lease":            "Rent",
				"gas":              "Transportation",
				"g@s":              "Transportation",
				"gas station":      "Transportation",
				"dinner":           "Dining Out",
				"restaurant":       "Dining Out",
				"dinn3r":           "Dining Out",
				"misc":             "Miscellaneous",
			},
			FuzzyThreshold: 0.6,
			Fallback:       "Uncategorized",
		},
		Anomalies: AnomaliesConfig{
			Multiplier:          3,
			Window:              5,
			DuplicateWindowDays: 3,
		},
	}
}
