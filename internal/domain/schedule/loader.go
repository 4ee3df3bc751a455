package schedule

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

type fileFormat struct {
	DefaultBarber string   `yaml:"default_barber"`
	Barbers       []Barber `yaml:"barbers"`
}

// Load reads a YAML schedule file. An empty path yields the built-in roster.
func Load(path string) (*Schedule, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read schedule file")
	}

	return Parse(data)
}

func Parse(data []byte) (*Schedule, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parse schedule")
	}

	defaultID := f.DefaultBarber
	if defaultID == "" && len(f.Barbers) > 0 {
		defaultID = f.Barbers[0].ID
	}

	return New(f.Barbers, defaultID)
}
