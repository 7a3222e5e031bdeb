package supplier

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supplier is a single vendor record from the roster file.
type Supplier struct {
	Company        string   `yaml:"company" json:"company"`
	Contact        string   `yaml:"contact" json:"contact,omitempty"`
	Email          string   `yaml:"email" json:"email,omitempty"`
	Phone          string   `yaml:"phone" json:"phone,omitempty"`
	Address        string   `yaml:"address" json:"address,omitempty"`
	Country        string   `yaml:"country" json:"country,omitempty"`
	Specialization string   `yaml:"specialization" json:"specialization,omitempty"`
	Established    int      `yaml:"established" json:"established,omitempty"`
	Materials      []string `yaml:"materials" json:"materials,omitempty"`
}

// MaterialsText joins the supplier's material list into one lowercase string.
func (s Supplier) MaterialsText() string {
	return strings.ToLower(strings.Join(s.Materials, ", "))
}

type rosterFile struct {
	Suppliers []Supplier `yaml:"suppliers"`
}

// LoadRoster reads a supplier roster from a YAML file.
func LoadRoster(path string) ([]Supplier, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("roster not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var f rosterFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	for i, s := range f.Suppliers {
		if strings.TrimSpace(s.Company) == "" {
			return nil, fmt.Errorf("roster entry %d has no company name", i+1)
		}
	}
	return f.Suppliers, nil
}
