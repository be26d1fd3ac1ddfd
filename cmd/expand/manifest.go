package expand

import (
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ghodss/yaml"

	"github.com/depsolve/depsolve/pkg/depsolve"
	"github.com/depsolve/depsolve/pkg/depsolve/interner"
)

// Manifest lists the dependency declarations of a single package. It is the
// input of the expand command.
type Manifest struct {
	Package      string        `json:"package"`
	Dependencies []Declaration `json:"dependencies"`
}

// Declaration is one dependency edge: a "<package> <constraint>" requirement,
// optional alternatives that widen it into a union, and an optional when
// block gating its activation.
type Declaration struct {
	Requires     string   `json:"requires"`
	Alternatives []string `json:"alternatives,omitempty"`
	When         *When    `json:"when,omitempty"`
}

// When lists the conditions under which a declaration is active: extras that
// must be enabled, and version sets that must be satisfied by an
// already-selected candidate. All listed conditions must hold.
type When struct {
	Extras      []string `json:"extras,omitempty"`
	VersionSets []string `json:"versionSets,omitempty"`
}

// NewManifest creates a Manifest with the values parsed from the YAML
// formatted stream afforded by manifestReader.
func NewManifest(manifestReader io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(manifestReader)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest data: %w", err)
	}

	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("error parsing manifest: %w", err)
	}

	if len(manifest.Dependencies) == 0 {
		return nil, fmt.Errorf("invalid manifest: no dependencies found")
	}
	for n, dep := range manifest.Dependencies {
		if strings.TrimSpace(dep.Requires) == "" {
			return nil, fmt.Errorf("invalid manifest: dependency %d has an empty requires", n)
		}
	}
	return manifest, nil
}

// Build interns every declaration against in and returns the resulting
// conditional requirements in declaration order.
func (m *Manifest) Build(in *interner.MemoryInterner) ([]depsolve.ConditionalRequirement, error) {
	requirements := make([]depsolve.ConditionalRequirement, 0, len(m.Dependencies))
	for _, dep := range m.Dependencies {
		requirement, err := buildRequirement(in, dep)
		if err != nil {
			return nil, err
		}
		conditions, err := buildConditions(in, dep.When)
		if err != nil {
			return nil, err
		}
		requirements = append(requirements, depsolve.NewConditionalRequirement(conditions, requirement))
	}
	return requirements, nil
}

func buildRequirement(in *interner.MemoryInterner, dep Declaration) (depsolve.Requirement, error) {
	first, err := internVersionSet(in, dep.Requires)
	if err != nil {
		return depsolve.Requirement{}, err
	}
	if len(dep.Alternatives) == 0 {
		return depsolve.Single(first), nil
	}
	rest := make([]depsolve.VersionSetID, 0, len(dep.Alternatives))
	for _, alternative := range dep.Alternatives {
		versionSet, err := internVersionSet(in, alternative)
		if err != nil {
			return depsolve.Requirement{}, err
		}
		rest = append(rest, versionSet)
	}
	return depsolve.Union(in.InternVersionSetUnion(first, rest...)), nil
}

func buildConditions(in *interner.MemoryInterner, when *When) ([]depsolve.Condition, error) {
	if when == nil {
		return nil, nil
	}
	var conditions []depsolve.Condition
	for _, extra := range when.Extras {
		conditions = append(conditions, depsolve.ExtraCondition(in.InternString(extra)))
	}
	for _, spec := range when.VersionSets {
		versionSet, err := internVersionSet(in, spec)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, depsolve.VersionSetCondition(versionSet))
	}
	return conditions, nil
}

// internVersionSet parses "<package> <constraint>" and interns it. A missing
// constraint means any version.
func internVersionSet(in *interner.MemoryInterner, spec string) (depsolve.VersionSetID, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return 0, fmt.Errorf("invalid version set (%s): missing package name", spec)
	}
	constraintText := "*"
	if len(fields) > 1 {
		constraintText = strings.Join(fields[1:], " ")
	}
	constraint, err := semver.NewConstraint(constraintText)
	if err != nil {
		return 0, fmt.Errorf("invalid version set (%s): %w", spec, err)
	}
	return in.InternVersionSet(in.InternString(fields[0]), constraint), nil
}
