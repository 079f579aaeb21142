package rates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the on-disk encoding of a rate table.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported rate table extension %q", filepath.Ext(path))
}

type fileBracket struct {
	Lower float64 `toml:"lower" yaml:"lower"`
	Upper float64 `toml:"upper" yaml:"upper"`
	Rate  float64 `toml:"rate" yaml:"rate"`
}

type fileTable struct {
	Year              int                `toml:"year" yaml:"year"`
	ContributionRates map[string]float64 `toml:"contribution_rates" yaml:"contribution_rates"`
	EmployerRates     map[string]float64 `toml:"employer_rates" yaml:"employer_rates"`
	Brackets          []fileBracket      `toml:"brackets" yaml:"brackets"`
}

// LoadFile reads and validates a rate table stored as TOML or YAML.
func LoadFile(path string) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate table: %w", err)
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a rate table and validates it.
func Parse(data []byte, format Format) (*Table, error) {
	var ft fileTable
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &ft); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &ft); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}

	t, err := ft.toTable()
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (ft fileTable) toTable() (*Table, error) {
	t := &Table{
		Year:              ft.Year,
		ContributionRates: make(map[Status]float64, len(ft.ContributionRates)),
		EmployerRates:     make(map[Status]float64, len(ft.EmployerRates)),
		Brackets:          make([]Bracket, 0, len(ft.Brackets)),
	}
	for name, r := range ft.ContributionRates {
		s, err := ParseStatus(name)
		if err != nil {
			return nil, fmt.Errorf("contribution_rates: %w", err)
		}
		t.ContributionRates[s] = r
	}
	for name, r := range ft.EmployerRates {
		s, err := ParseStatus(name)
		if err != nil {
			return nil, fmt.Errorf("employer_rates: %w", err)
		}
		t.EmployerRates[s] = r
	}
	for _, b := range ft.Brackets {
		t.Brackets = append(t.Brackets, Bracket{Lower: b.Lower, Upper: b.Upper, Rate: b.Rate})
	}
	return t, nil
}
