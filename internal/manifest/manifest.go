package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lumina3mf/palette"
)

// Job describes one fix-names run: the slot names to assign in object
// order and the transform toggles.
type Job struct {
	Slots    []string
	Assembly bool
	Colors   bool
	Mode     palette.Mode
}

// yamlJob is the on-disk shape. Pointers distinguish "absent" from
// "explicitly false" so defaults only fill genuinely missing fields.
type yamlJob struct {
	Slots    []string `yaml:"slots"`
	Assembly *bool    `yaml:"assembly"`
	Colors   *bool    `yaml:"colors"`
	Mode     string   `yaml:"mode"`
}

// LoadFile loads and parses a YAML job file from the given path.
func LoadFile(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job manifest %s: %w", path, err)
	}

	job, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("job manifest %s: %w", path, err)
	}

	return job, nil
}

// Parse parses YAML data into a Job, applying defaults: assembly and
// colors default to enabled, mode to auto-detection.
func Parse(data []byte) (*Job, error) {
	var yj yamlJob

	err := yaml.Unmarshal(data, &yj)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job YAML: %w", err)
	}

	if len(yj.Slots) == 0 {
		return nil, errors.New("job manifest has no slots")
	}

	mode, err := palette.Parse(yj.Mode)
	if err != nil {
		return nil, err
	}

	job := &Job{
		Slots:    yj.Slots,
		Assembly: true,
		Colors:   true,
		Mode:     mode,
	}

	if yj.Assembly != nil {
		job.Assembly = *yj.Assembly
	}

	if yj.Colors != nil {
		job.Colors = *yj.Colors
	}

	return job, nil
}
