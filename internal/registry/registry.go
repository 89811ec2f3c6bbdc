package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cetasim/internal/model"
)

// Registry resolves entity names to their scenario configuration. Lookup is
// exact-match; an unknown name resolves to the default profile instead of
// failing, so callers never see an error from Resolve.
type Registry struct {
	profiles map[string]model.EntityProfile
	order    []string
}

// defaultProfile is returned for any name the registry does not know.
var defaultProfile = model.EntityProfile{
	Name:           "default",
	Classification: model.ClassMemberState,
	BaseGDP:        500000,
	BaseExports:    2500,
	BaseImports:    2200,
	Keys:           []string{"diversifies"},
}

// New returns a registry seeded with the built-in entity set.
func New() *Registry {
	r := &Registry{profiles: make(map[string]model.EntityProfile)}
	for _, p := range builtinProfiles {
		r.add(p)
	}
	return r
}

func (r *Registry) add(p model.EntityProfile) {
	if _, exists := r.profiles[p.Name]; !exists {
		r.order = append(r.order, p.Name)
	}
	r.profiles[p.Name] = p
}

// Resolve returns the profile for name, or the default profile on a miss.
func (r *Registry) Resolve(name string) model.EntityProfile {
	if p, ok := r.profiles[name]; ok {
		return p
	}
	return defaultProfile
}

// Names returns the known entity names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// DefaultProfile returns the profile used for unknown entities.
func DefaultProfile() model.EntityProfile {
	return defaultProfile
}

type overridesFile struct {
	Profiles []overrideProfile `yaml:"profiles"`
}

type overrideProfile struct {
	Name           string   `yaml:"name"`
	Classification string   `yaml:"classification"`
	BaseGDP        float64  `yaml:"base_gdp"`
	BaseExports    float64  `yaml:"base_exports"`
	BaseImports    float64  `yaml:"base_imports"`
	Keys           []string `yaml:"keys"`
}

// LoadOverrides merges entity profiles from a YAML file into the registry.
// Profiles with a known name replace the built-in entry; new names are
// appended to the menu order.
func (r *Registry) LoadOverrides(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("registry: read overrides: %w", err)
	}

	var file overridesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("registry: parse overrides: %w", err)
	}

	for i, p := range file.Profiles {
		if p.Name == "" {
			return fmt.Errorf("registry: overrides entry %d has no name", i)
		}
		classification, err := parseClassification(p.Classification)
		if err != nil {
			return fmt.Errorf("registry: overrides entry %s: %w", p.Name, err)
		}
		r.add(model.EntityProfile{
			Name:           p.Name,
			Classification: classification,
			BaseGDP:        p.BaseGDP,
			BaseExports:    p.BaseExports,
			BaseImports:    p.BaseImports,
			Keys:           p.Keys,
		})
	}
	return nil
}

func parseClassification(value string) (model.Classification, error) {
	switch model.Classification(value) {
	case model.ClassMemberState, model.ClassPartner, model.ClassUnion, model.ClassSector:
		return model.Classification(value), nil
	default:
		return "", fmt.Errorf("unknown classification %q", value)
	}
}
