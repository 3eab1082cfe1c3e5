package school

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the initial content of a Directory.
type Seed struct {
	Classes    []Class            `yaml:"classes"`
	Teachers   []Teacher          `yaml:"teachers"`
	Subjects   []Subject          `yaml:"subjects"`
	Students   []Student          `yaml:"students"`
	Fees       []FeeItem          `yaml:"fees"`
	Payments   []Payment          `yaml:"payments"`
	Attendance []AttendanceRecord `yaml:"attendance"`
	Events     []Event            `yaml:"events"`
	Timetable  []TimetableSlot    `yaml:"timetable"`
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(data []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	return s, nil
}

// DefaultSeed returns the bundled demo records.
func DefaultSeed() (Seed, error) {
	return ParseSeed(defaultSeed)
}

// LoadSeed reads the seed at path, or the bundled records when path is
// empty.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}
