package rules

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rules holds the declarative pattern tables used by the extractors.
type Rules struct {
	Skills     []string   `yaml:"skills"`
	Experience Experience `yaml:"experience"`
}

// Experience configures section location and job-block segmentation.
type Experience struct {
	SectionHeaders     []string `yaml:"section_headers"`
	SectionTerminators []string `yaml:"section_terminators"`
	BoundaryTriggers   []string `yaml:"boundary_triggers"`
	KnownCompanies     []string `yaml:"known_companies"`
	DateSuffixes       []string `yaml:"date_suffixes"`
}

// Default returns the built-in tables.
func Default() Rules {
	return Rules{
		Skills: []string{
			"Python", "Java", "C++", "SQL", "Machine Learning", "Data Analysis",
			"React", "Node.js", "AWS", "TypeScript", "MongoDB",
		},
		Experience: Experience{
			SectionHeaders:     []string{"Experience", "Work History", "Professional Background"},
			SectionTerminators: []string{"Education", "Skills", "Projects"},
			BoundaryTriggers:   []string{"Intern", "Engineer", "Analyst", "Developer"},
			KnownCompanies:     []string{"Tata", "Teachnook", "Google", "Amazon"},
			DateSuffixes: []string{
				"Present", "Now",
				"Jan", "Feb", "Mar", "Apr", "May", "Jun",
				"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
			},
		},
	}
}

// Load reads a YAML rules file. Tables omitted from the file keep their defaults.
func Load(path string) (Rules, error) {
	r := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	return r, r.Validate()
}

// WithCompanies returns a copy with extra known-company names appended.
func (r Rules) WithCompanies(names ...string) Rules {
	out := r
	out.Experience.KnownCompanies = append(clean(r.Experience.KnownCompanies), clean(names)...)
	return out
}

// Triggers returns known companies followed by boundary triggers.
func (e Experience) Triggers() []string {
	out := make([]string, 0, len(e.KnownCompanies)+len(e.BoundaryTriggers))
	out = append(out, clean(e.KnownCompanies)...)
	out = append(out, clean(e.BoundaryTriggers)...)
	return out
}

// Validate checks that every table has at least one usable entry.
func (r Rules) Validate() error {
	if len(clean(r.Skills)) == 0 {
		return errors.New("skills table is empty")
	}
	if len(clean(r.Experience.SectionHeaders)) == 0 {
		return errors.New("experience.section_headers is empty")
	}
	if len(clean(r.Experience.SectionTerminators)) == 0 {
		return errors.New("experience.section_terminators is empty")
	}
	if len(r.Experience.Triggers()) == 0 {
		return errors.New("experience needs boundary_triggers or known_companies")
	}
	if len(clean(r.Experience.DateSuffixes)) == 0 {
		return errors.New("experience.date_suffixes is empty")
	}
	return nil
}

func clean(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
