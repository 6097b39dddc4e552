package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ===== INTEGRATION TESTS =====

func TestE2EPublishingWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tempDir := t.TempDir()

	projectConfig := `include:
  - flavors.yaml

vars:
  VERSION: "2.0.0"

project:
  name: mylib
  group: guru.stefma
  version: $VERSION
  kotlin: true

artifact:
  artifact_id: androidartifacts

variants:
  - debug
  - release

dependencies:
  api:
    - "org.jetbrains.kotlin:kotlin-stdlib:1.9.22"
  implementation:
    - "androidx.annotation:annotation:1.7.0"
  compileOnly:
    - "com.google.code.findbugs:jsr305:3.0.2"
`
	flavors := `variants:
  - paidRelease
  - freeDebug
`
	if err := os.WriteFile(filepath.Join(tempDir, DefaultConfigFile), []byte(projectConfig), 0600); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tempDir, "flavors.yaml"), []byte(flavors), 0600); err != nil {
		t.Fatalf("Failed to create include: %v", err)
	}

	t.Run("Publications", func(t *testing.T) {
		out, err := runApp(t, "publications", "--directory", tempDir, "--format", "json")
		if err != nil {
			t.Fatalf("publications unexpected error: %v", err)
		}

		var listing struct {
			Publications []Publication `json:"publications"`
			Total        int           `json:"total"`
		}
		if err := json.Unmarshal([]byte(out), &listing); err != nil {
			t.Fatalf("publications output is not JSON: %v\n%s", err, out)
		}
		if listing.Total != 4 {
			t.Fatalf("Total = %d, want 4", listing.Total)
		}

		names := make([]string, 0, listing.Total)
		for _, p := range listing.Publications {
			names = append(names, p.Name)
		}
		if strings.Join(names, ",") != "debugAar,releaseAar,paidReleaseAar,freeDebugAar" {
			t.Errorf("publications = %v, want declaration order", names)
		}

		paid := listing.Publications[2]
		if paid.Artifacts[0].File != "build/outputs/aar/mylib-paid-release.aar" {
			t.Errorf("archive = %q", paid.Artifacts[0].File)
		}
		if len(paid.Artifacts) != 4 {
			t.Errorf("paidRelease artifacts = %d, want aar, sources, javadoc and dokka", len(paid.Artifacts))
		}
		if len(paid.Dependencies) != 2 {
			t.Errorf("dependencies = %+v, compileOnly should not be published", paid.Dependencies)
		}
		if paid.Coordinates.Version != "2.0.0" {
			t.Errorf("version = %q", paid.Coordinates.Version)
		}
	})

	t.Run("Plan", func(t *testing.T) {
		out, err := runApp(t, "plan", "--directory", tempDir, "androidArtifactFreeDebug")
		if err != nil {
			t.Fatalf("plan unexpected error: %v", err)
		}
		expectedLogs := []string{
			"assembleFreeDebug",
			"generateSourcesJarForFreeDebug",
			"generateJavadocJarForFreeDebug",
			"generateDokkaJarForFreeDebug",
			"publishFreeDebugAarPublicationToMavenLocal",
			"androidArtifactFreeDebug",
		}
		last := -1
		for _, expected := range expectedLogs {
			idx := strings.Index(out, expected)
			if idx <= last {
				t.Errorf("plan output should list %q after the previous task, got:\n%s", expected, out)
			}
			last = idx
		}
	})

	t.Run("Listing task", func(t *testing.T) {
		out, err := runApp(t, "tasks", "--directory", tempDir)
		if err != nil {
			t.Fatalf("tasks unexpected error: %v", err)
		}
		if !strings.Contains(out, "Available publication tasks: androidArtifactDebug, androidArtifactRelease, androidArtifactPaidRelease, androidArtifactFreeDebug") {
			t.Errorf("tasks output missing listing task, got:\n%s", out)
		}
	})

	t.Run("POM", func(t *testing.T) {
		out, err := runApp(t, "pom", "--directory", tempDir, "releaseAar")
		if err != nil {
			t.Fatalf("pom unexpected error: %v", err)
		}
		for _, should := range []string{
			"<groupId>guru.stefma</groupId>",
			"<artifactId>androidartifacts</artifactId>",
			"<version>2.0.0</version>",
			"<artifactId>kotlin-stdlib</artifactId>",
			"<scope>runtime</scope>",
		} {
			if !strings.Contains(out, should) {
				t.Errorf("pom should contain %q, got:\n%s", should, out)
			}
		}
		if strings.Contains(out, "jsr305") {
			t.Error("compileOnly dependencies must not reach the POM")
		}
	})
}

func TestE2EErrorHandling(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tests := []struct {
		name   string
		config string
		args   []string
	}{
		{
			name:   "Duplicate variants",
			config: "project:\n  name: mylib\nvariants: [debug, debug]\n",
			args:   []string{"publications"},
		},
		{
			name:   "Malformed dependency",
			config: "project:\n  name: mylib\nvariants: [debug]\ndependencies:\n  api: [\"okhttp\"]\n",
			args:   []string{"tasks"},
		},
		{
			name:   "Unknown task",
			config: "project:\n  name: mylib\nvariants: [debug]\n",
			args:   []string{"plan", "assembleRelease"},
		},
		{
			name:   "Unknown publication",
			config: "project:\n  name: mylib\nvariants: [debug]\n",
			args:   []string{"pom", "releaseAar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfigFile(t, dir, DefaultConfigFile, tt.config)

			args := append([]string{tt.args[0], "--directory", dir}, tt.args[1:]...)
			if _, err := runApp(t, args...); err == nil {
				t.Errorf("%v expected error but got none", tt.args)
			}
		})
	}
}
