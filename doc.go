/*
Package main implements androidartifacts, a tool that wires Maven publications
for every build variant of an Android library.

For each variant it derives the archive file name, the assemble task the
archive depends on, the publication name and the artifact classifiers.
It then registers tasks and publications with the build engine's task
registry and publication sink. Storage, transport and execution stay
with the build engine.

# Name Derivation

A variant name is a camelCase identifier such as "paidRelease":

	SplitWords("paidRelease")                // ["paid", "Release"]
	ArchiveFileName("paidRelease", "mylib")  // "mylib-paid-release.aar"
	AssembleTaskName("paidRelease")          // "assemblePaidRelease"
	PublicationName("paidRelease")           // "paidReleaseAar"
	ClassifierFor(KindSources, "paidRelease") // "sources"

Classifiers are always the bare artifact kind (sources, javadoc, dokka).

# Configuration

The tool reads artifacts.yaml from the working directory:

	vars:
	  VERSION: "1.0.0"

	project:
	  name: mylib
	  group: guru.stefma
	  version: $VERSION
	  kotlin: true

	artifact:
	  artifact_id: mylib
	  sources: true
	  javadoc: true

	variants: [debug, release, paidRelease]

	dependencies:
	  api: ["com.squareup.okhttp3:okhttp:4.12.0"]

Variables are substituted with $VAR or ${VAR} and fall back to the
environment. Other files can be merged in with include.

# CLI Commands

  - publications: list the publication of every variant
  - tasks: list the registered task graph
  - describe: show the names derived from one variant
  - plan: show the tasks the build engine runs for a task
  - pom: print the POM of a publication
  - validate: check the configuration and report suspicious versions
  - init: write a starter artifacts.yaml

# Usage Examples

	androidartifacts publications --format json
	androidartifacts plan androidArtifactPaidRelease
	androidartifacts pom paidReleaseAar
*/
package main
