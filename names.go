package main

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	aarExtension      = ".aar"
	aarPublicationTag = "Aar"
	assemblePrefix    = "assemble"
	artifactsPrefix   = "androidArtifact"
)

// ArtifactKind names an optional artifact attached next to the archive.
type ArtifactKind string

const (
	KindSources ArtifactKind = "sources"
	KindJavadoc ArtifactKind = "javadoc"
	KindDokka   ArtifactKind = "dokka"
)

// SplitWords splits a variant name before every upper-case ASCII letter
// that is not the first character.
//
//	SplitWords("paidRelease") // ["paid", "Release"]
//	SplitWords("")            // [""]
func SplitWords(variantName string) []string {
	words := make([]string, 0, 2)
	start := 0
	for i := 1; i < len(variantName); i++ {
		if c := variantName[i]; c >= 'A' && c <= 'Z' {
			words = append(words, variantName[start:i])
			start = i
		}
	}
	return append(words, variantName[start:])
}

// JoinWords is the inverse of SplitWords: every word after the first is
// capitalized and the result concatenated.
func JoinWords(words []string) string {
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// Capitalize upper-cases the first character and leaves the rest unchanged.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}

// ArchiveFileName returns the file name the assemble task writes for the
// variant, e.g. "mylib-paid-release.aar".
func ArchiveFileName(variantName, baseName string) string {
	var b strings.Builder
	b.WriteString(baseName)
	for _, w := range SplitWords(variantName) {
		b.WriteByte('-')
		b.WriteString(strings.ToLower(w))
	}
	b.WriteString(aarExtension)
	return b.String()
}

// ArchivePath is where the host puts the archive of a variant.
func ArchivePath(buildDir, variantName, baseName string) string {
	return filepath.ToSlash(filepath.Join(buildDir, "outputs", "aar", ArchiveFileName(variantName, baseName)))
}

// AssembleTaskName returns the host task that builds the variant archive.
func AssembleTaskName(variantName string) string {
	return assemblePrefix + Capitalize(variantName)
}

// PublicationName returns the Maven publication name of a variant.
func PublicationName(variantName string) string {
	return variantName + aarPublicationTag
}

// PublishTaskName is the task the publishing subsystem creates for a
// publication in the local Maven repository.
func PublishTaskName(variantName string) string {
	return "publish" + Capitalize(PublicationName(variantName)) + "PublicationToMavenLocal"
}

// ArtifactsTaskName is the per-variant umbrella task.
func ArtifactsTaskName(variantName string) string {
	return artifactsPrefix + Capitalize(variantName)
}

// JarTaskName names the task producing the jar of the given kind.
func JarTaskName(kind ArtifactKind, variantName string) string {
	return "generate" + Capitalize(string(kind)) + "JarFor" + Capitalize(variantName)
}

// ClassifierFor returns the Maven classifier of an artifact kind. The
// classifier is the bare kind for every variant; the variant only
// distinguishes publications, never classifiers.
func ClassifierFor(kind ArtifactKind, variantName string) string {
	return strings.ToLower(string(kind))
}

// JarFileName names a classified jar, e.g. "mylib-paidRelease-sources.jar".
func JarFileName(baseName, variantName, classifier string) string {
	return baseName + "-" + variantName + "-" + classifier + ".jar"
}

// JarPath is where a classified jar task writes its output.
func JarPath(buildDir, baseName, variantName, classifier string) string {
	return filepath.ToSlash(filepath.Join(buildDir, "libs", JarFileName(baseName, variantName, classifier)))
}

// Descriptor holds every name derived from one variant.
type Descriptor struct {
	Variant         string            `json:"variant" yaml:"variant"`
	PublicationName string            `json:"publication" yaml:"publication"`
	ArchiveFileName string            `json:"archive" yaml:"archive"`
	BuildTaskName   string            `json:"build_task" yaml:"build_task"`
	Classifiers     map[string]string `json:"classifiers,omitempty" yaml:"classifiers,omitempty"`
}

// Describe derives the descriptor of a variant. Classifiers are listed only
// for the kinds the options enable.
func Describe(variantName, baseName string, opts PublishOptions) Descriptor {
	d := Descriptor{
		Variant:         variantName,
		PublicationName: PublicationName(variantName),
		ArchiveFileName: ArchiveFileName(variantName, baseName),
		BuildTaskName:   AssembleTaskName(variantName),
	}
	for _, kind := range opts.Kinds() {
		if d.Classifiers == nil {
			d.Classifiers = make(map[string]string, 3)
		}
		d.Classifiers[string(kind)] = ClassifierFor(kind, variantName)
	}
	return d
}
