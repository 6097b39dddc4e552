package main

import (
	"fmt"

	goerrors "github.com/agilira/go-errors"
)

const packagingAAR = "aar"

// PublicationSink is the host publication container.
type PublicationSink interface {
	Create(pub Publication) error
	Publications() []Publication
}

// PublicationContainer is an in-memory PublicationSink.
type PublicationContainer struct {
	byName map[string]int
	pubs   []Publication
}

func NewPublicationContainer() *PublicationContainer {
	return &PublicationContainer{byName: make(map[string]int)}
}

func (c *PublicationContainer) Create(pub Publication) error {
	if _, exists := c.byName[pub.Name]; exists {
		return goerrors.New(ErrCodeDuplicatePublication,
			fmt.Sprintf("publication %q already exists", pub.Name))
	}
	c.byName[pub.Name] = len(c.pubs)
	c.pubs = append(c.pubs, pub)
	return nil
}

func (c *PublicationContainer) Publications() []Publication {
	out := make([]Publication, len(c.pubs))
	copy(out, c.pubs)
	return out
}

// Get returns the publication called name.
func (c *PublicationContainer) Get(name string) (Publication, error) {
	i, ok := c.byName[name]
	if !ok {
		return Publication{}, goerrors.New(ErrCodePublicationNotFound,
			fmt.Sprintf("publication %q not found", name))
	}
	return c.pubs[i], nil
}

// aarArtifact is the archive built by the variant's assemble task.
func aarArtifact(p Project, variant string) Artifact {
	return Artifact{
		File:      ArchivePath(p.BuildDir, variant, p.Name),
		Extension: packagingAAR,
		BuiltBy:   AssembleTaskName(variant),
	}
}

// jarArtifact is a classified jar built by its generate task.
func jarArtifact(p Project, kind ArtifactKind, variant string) Artifact {
	classifier := ClassifierFor(kind, variant)
	return Artifact{
		File:       JarPath(p.BuildDir, p.Name, variant, classifier),
		Classifier: classifier,
		Extension:  "jar",
		BuiltBy:    JarTaskName(kind, variant),
	}
}

// newPublication builds the publication of one variant.
func newPublication(cfg Config, opts PublishOptions, deps []Dependency, variant string) Publication {
	pub := Publication{
		Name:         PublicationName(variant),
		Variant:      variant,
		Coordinates:  cfg.Coordinates(),
		Packaging:    packagingAAR,
		Artifacts:    []Artifact{aarArtifact(cfg.Project, variant)},
		Dependencies: deps,
	}
	for _, kind := range opts.Kinds() {
		pub.Artifacts = append(pub.Artifacts, jarArtifact(cfg.Project, kind, variant))
	}
	return pub
}
