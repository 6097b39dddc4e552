package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	goerrors "github.com/agilira/go-errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "artifacts.yaml"

var varPattern = regexp.MustCompile(`\$\w+|\$\{[^}]+\}`)

// ParseVars expands $var and ${var} from vars, falling back to the
// environment. Undefined variables are left in place and logged.
func ParseVars(text string, vars map[string]Var, logger *slog.Logger) string {
	return varPattern.ReplaceAllStringFunc(text, func(m string) string {
		varname := strings.TrimPrefix(m, "$")
		varname = strings.Trim(varname, "{}")

		val := GetVar(varname, vars)
		if val == "" {
			logger.Warn("undefined variable", "var", m)
			return m
		}
		return val
	})
}

// LoadConfig reads path and its includes, expands variables, applies
// defaults and validates the result.
func LoadConfig(path string, logger *slog.Logger) (Config, error) {
	cfg, err := decodeFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, goerrors.Wrap(err, ErrCodeConfigNotFound,
				"config file "+path+" not found")
		}
		return Config{}, err
	}

	base := filepath.Dir(path)
	for _, inc := range cfg.Includes {
		incPath := inc
		if !filepath.IsAbs(incPath) {
			incPath = filepath.Join(base, incPath)
		}
		incCfg, err := decodeFile(incPath)
		if err != nil {
			logger.Warn("cannot load include", "file", inc, "error", err)
			continue
		}
		cfg.merge(incCfg)
	}

	cfg.expand(logger)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string) (Config, error) {
	var cfg Config
	// #nosec G304 - config paths are chosen by the user running the tool
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, goerrors.Wrap(err, ErrCodeInvalidConfig, "cannot decode "+path)
	}
	return cfg, nil
}

// merge applies an included file on top of c. Set scalars win, maps are
// merged key by key and variants are appended.
func (c *Config) merge(inc Config) {
	if c.Vars == nil && len(inc.Vars) > 0 {
		c.Vars = make(map[string]Var, len(inc.Vars))
	}
	for k, v := range inc.Vars {
		c.Vars[k] = v
	}

	overrideString(&c.Project.Name, inc.Project.Name)
	overrideString(&c.Project.Group, inc.Project.Group)
	overrideString(&c.Project.Version, inc.Project.Version)
	overrideString(&c.Project.BuildDir, inc.Project.BuildDir)
	if inc.Project.Kotlin != nil {
		c.Project.Kotlin = inc.Project.Kotlin
	}

	overrideString(&c.Artifact.ArtifactID, inc.Artifact.ArtifactID)
	if inc.Artifact.Sources != nil {
		c.Artifact.Sources = inc.Artifact.Sources
	}
	if inc.Artifact.Javadoc != nil {
		c.Artifact.Javadoc = inc.Artifact.Javadoc
	}
	if inc.Artifact.Dokka != nil {
		c.Artifact.Dokka = inc.Artifact.Dokka
	}

	c.Variants = append(c.Variants, inc.Variants...)

	if c.Dependencies == nil && len(inc.Dependencies) > 0 {
		c.Dependencies = make(map[string][]string, len(inc.Dependencies))
	}
	for conf, deps := range inc.Dependencies {
		c.Dependencies[conf] = append(c.Dependencies[conf], deps...)
	}
}

func overrideString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func (c *Config) expand(logger *slog.Logger) {
	c.Project.Name = ParseVars(c.Project.Name, c.Vars, logger)
	c.Project.Group = ParseVars(c.Project.Group, c.Vars, logger)
	c.Project.Version = ParseVars(c.Project.Version, c.Vars, logger)
	c.Project.BuildDir = ParseVars(c.Project.BuildDir, c.Vars, logger)
	c.Artifact.ArtifactID = ParseVars(c.Artifact.ArtifactID, c.Vars, logger)
	for conf, deps := range c.Dependencies {
		for i, d := range deps {
			c.Dependencies[conf][i] = ParseVars(d, c.Vars, logger)
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Project.BuildDir == "" {
		c.Project.BuildDir = "build"
	}
	if c.Artifact.ArtifactID == "" {
		c.Artifact.ArtifactID = c.Project.Name
	}
}
