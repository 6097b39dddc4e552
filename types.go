package main

type Var string

// Project mirrors the host project properties the publications read.
type Project struct {
	Name     string `yaml:"name"`
	Group    string `yaml:"group"`
	Version  string `yaml:"version"`
	BuildDir string `yaml:"build_dir"`
	Kotlin   *bool  `yaml:"kotlin"`
}

// Extension is the user-facing "androidArtifact" block.
type Extension struct {
	ArtifactID string `yaml:"artifact_id"`
	Sources    *bool  `yaml:"sources"`
	Javadoc    *bool  `yaml:"javadoc"`
	Dokka      *bool  `yaml:"dokka"`
}

type Config struct {
	Includes     []string            `yaml:"include"`
	Vars         map[string]Var      `yaml:"vars"`
	Project      Project             `yaml:"project"`
	Artifact     Extension           `yaml:"artifact"`
	Variants     []string            `yaml:"variants"`
	Dependencies map[string][]string `yaml:"dependencies"`
}

// PublishOptions is resolved once per config and decides which optional
// artifacts every publication carries.
type PublishOptions struct {
	Sources bool `json:"sources" yaml:"sources"`
	Javadoc bool `json:"javadoc" yaml:"javadoc"`
	Dokka   bool `json:"dokka" yaml:"dokka"`
}

// Kinds returns the enabled optional artifact kinds in publication order.
func (o PublishOptions) Kinds() []ArtifactKind {
	var kinds []ArtifactKind
	if o.Sources {
		kinds = append(kinds, KindSources)
	}
	if o.Javadoc {
		kinds = append(kinds, KindJavadoc)
		// dokka is an addition to javadoc, never a replacement
		if o.Dokka {
			kinds = append(kinds, KindDokka)
		}
	}
	return kinds
}

// Coordinates is the group/artifact/version triple of a publication.
type Coordinates struct {
	GroupID    string `json:"group_id" yaml:"group_id"`
	ArtifactID string `json:"artifact_id" yaml:"artifact_id"`
	Version    string `json:"version" yaml:"version"`
}

// Task is a node in the host task graph.
type Task struct {
	Name        string   `json:"name" yaml:"name"`
	Group       string   `json:"group,omitempty" yaml:"group,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Deps        []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Output      string   `json:"output,omitempty" yaml:"output,omitempty"`
}

// Artifact is one file attached to a publication.
type Artifact struct {
	File       string `json:"file" yaml:"file"`
	Classifier string `json:"classifier,omitempty" yaml:"classifier,omitempty"`
	Extension  string `json:"extension" yaml:"extension"`
	BuiltBy    string `json:"built_by" yaml:"built_by"`
}

// Dependency is a POM dependency entry.
type Dependency struct {
	GroupID    string `json:"group_id" yaml:"group_id"`
	ArtifactID string `json:"artifact_id" yaml:"artifact_id"`
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	Scope      string `json:"scope" yaml:"scope"`
}

// Publication is a named Maven publication as handed to the sink.
type Publication struct {
	Name         string       `json:"name" yaml:"name"`
	Variant      string       `json:"variant" yaml:"variant"`
	Coordinates  Coordinates  `json:"coordinates" yaml:"coordinates"`
	Packaging    string       `json:"packaging" yaml:"packaging"`
	Artifacts    []Artifact   `json:"artifacts" yaml:"artifacts"`
	Dependencies []Dependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}
