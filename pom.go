package main

import (
	"encoding/xml"
)

const (
	pomNamespace      = "http://maven.apache.org/POM/4.0.0"
	pomSchemaInstance = "http://www.w3.org/2001/XMLSchema-instance"
	pomSchemaLocation = "http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd"
)

type pomProject struct {
	XMLName        xml.Name         `xml:"project"`
	Xmlns          string           `xml:"xmlns,attr"`
	XmlnsXsi       string           `xml:"xmlns:xsi,attr"`
	SchemaLocation string           `xml:"xsi:schemaLocation,attr"`
	ModelVersion   string           `xml:"modelVersion"`
	GroupID        string           `xml:"groupId"`
	ArtifactID     string           `xml:"artifactId"`
	Version        string           `xml:"version"`
	Packaging      string           `xml:"packaging"`
	Dependencies   *pomDependencies `xml:"dependencies,omitempty"`
}

type pomDependencies struct {
	Dependency []pomDependency `xml:"dependency"`
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version,omitempty"`
	Scope      string `xml:"scope"`
}

// RenderPOM renders the Maven POM of a publication.
func RenderPOM(pub Publication) ([]byte, error) {
	p := pomProject{
		Xmlns:          pomNamespace,
		XmlnsXsi:       pomSchemaInstance,
		SchemaLocation: pomSchemaLocation,
		ModelVersion:   "4.0.0",
		GroupID:        pub.Coordinates.GroupID,
		ArtifactID:     pub.Coordinates.ArtifactID,
		Version:        pub.Coordinates.Version,
		Packaging:      pub.Packaging,
	}
	if len(pub.Dependencies) > 0 {
		p.Dependencies = &pomDependencies{}
		for _, d := range pub.Dependencies {
			p.Dependencies.Dependency = append(p.Dependencies.Dependency, pomDependency(d))
		}
	}

	out, err := xml.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}
