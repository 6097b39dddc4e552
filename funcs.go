package main

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	goerrors "github.com/agilira/go-errors"
)

var variantPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

// Configuration to POM scope. Configurations missing here are not
// published.
var configurationScopes = map[string]string{
	"api":            "compile",
	"compile":        "compile",
	"implementation": "runtime",
	"runtimeOnly":    "runtime",
}

// Get a variable else -> environment variable -> ""
func GetVar(name string, vars map[string]Var) string {
	name = strings.Trim(name, "$")
	if ret, exists := vars[name]; exists {
		return string(ret)
	}
	return os.Getenv(name)
}

// Options resolves the publish flags. Sources and javadoc default to on,
// dokka follows the kotlin plugin unless set explicitly.
func (c Config) Options() PublishOptions {
	opts := PublishOptions{Sources: true, Javadoc: true}
	if c.Project.Kotlin != nil {
		opts.Dokka = *c.Project.Kotlin
	}
	if c.Artifact.Sources != nil {
		opts.Sources = *c.Artifact.Sources
	}
	if c.Artifact.Javadoc != nil {
		opts.Javadoc = *c.Artifact.Javadoc
	}
	if c.Artifact.Dokka != nil {
		opts.Dokka = *c.Artifact.Dokka
	}
	return opts
}

// Coordinates are passed through from the project and extension as is.
func (c Config) Coordinates() Coordinates {
	return Coordinates{
		GroupID:    c.Project.Group,
		ArtifactID: c.Artifact.ArtifactID,
		Version:    c.Project.Version,
	}
}

// PomDependencies converts the configured dependencies to POM entries,
// sorted by configuration name so output is stable.
func (c Config) PomDependencies() ([]Dependency, error) {
	confs := make([]string, 0, len(c.Dependencies))
	for conf := range c.Dependencies {
		confs = append(confs, conf)
	}
	sort.Strings(confs)

	var deps []Dependency
	for _, conf := range confs {
		scope, ok := configurationScopes[conf]
		if !ok {
			continue
		}
		for _, notation := range c.Dependencies[conf] {
			d, err := ParseDependency(notation)
			if err != nil {
				return nil, err
			}
			d.Scope = scope
			deps = append(deps, d)
		}
	}
	return deps, nil
}

// ParseDependency parses "group:artifact[:version]".
func ParseDependency(notation string) (Dependency, error) {
	parts := strings.Split(strings.TrimSpace(notation), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Dependency{}, goerrors.New(ErrCodeInvalidCoordinate,
			fmt.Sprintf("dependency %q is not group:artifact[:version]", notation))
	}
	for _, p := range parts {
		if p == "" {
			return Dependency{}, goerrors.New(ErrCodeInvalidCoordinate,
				fmt.Sprintf("dependency %q has an empty segment", notation))
		}
	}
	d := Dependency{GroupID: parts[0], ArtifactID: parts[1]}
	if len(parts) == 3 {
		d.Version = parts[2]
	}
	return d, nil
}

// Validate checks everything Apply relies on.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Project.Name) == "" {
		return goerrors.New(ErrCodeInvalidConfig, "project.name is required")
	}
	if strings.TrimSpace(c.Artifact.ArtifactID) == "" {
		return goerrors.New(ErrCodeInvalidConfig, "artifact.artifact_id is required")
	}
	if len(c.Variants) == 0 {
		return goerrors.New(ErrCodeInvalidConfig, "at least one variant is required")
	}

	// task names capitalize the variant, so "debug" and "Debug" collide
	seen := make(map[string]string, len(c.Variants))
	for _, v := range c.Variants {
		if !variantPattern.MatchString(v) {
			return goerrors.New(ErrCodeInvalidConfig, fmt.Sprintf("invalid variant name %q", v))
		}
		if prev, dup := seen[Capitalize(v)]; dup {
			if prev == v {
				return goerrors.New(ErrCodeInvalidConfig, fmt.Sprintf("duplicate variant %q", v))
			}
			return goerrors.New(ErrCodeInvalidConfig, fmt.Sprintf("variant %q collides with %q", v, prev))
		}
		seen[Capitalize(v)] = v
	}

	_, err := c.PomDependencies()
	return err
}

// VersionWarnings reports metadata that a Maven repository would accept
// but that is likely a mistake. It never changes the config.
func (c Config) VersionWarnings() []string {
	var warnings []string
	if c.Project.Group == "" {
		warnings = append(warnings, "project.group is empty")
	}
	if c.Project.Version == "" {
		warnings = append(warnings, "project.version is empty")
	} else if _, err := semver.NewVersion(c.Project.Version); err != nil {
		warnings = append(warnings, fmt.Sprintf("project.version %q is not a semantic version", c.Project.Version))
	}
	return warnings
}
