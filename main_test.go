package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

const testProjectConfig = `vars:
  VERSION: "1.0.0"
project:
  name: mylib
  group: guru.stefma
  version: $VERSION
artifact:
  artifact_id: mylib-android
variants: [debug, paidRelease]
dependencies:
  api: ["com.squareup.okhttp3:okhttp:4.12.0"]
`

// runApp runs the CLI with args and returns what the command printed.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	original := stdout
	stdout = &buf
	defer func() { stdout = original }()

	err := newApp().Run(args)
	return buf.String(), err
}

// ===== COMMAND HANDLER TESTS =====

func TestPublicationsCommand(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), DefaultConfigFile, testProjectConfig)

	out, err := runApp(t, "publications", "--config", path)
	if err != nil {
		t.Fatalf("publications unexpected error: %v", err)
	}
	for _, should := range []string{"debugAar", "paidReleaseAar", "guru.stefma:mylib-android:1.0.0"} {
		if !strings.Contains(out, should) {
			t.Errorf("publications output should contain %q, got:\n%s", should, out)
		}
	}
}

func TestTasksCommand(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), DefaultConfigFile, testProjectConfig)

	out, err := runApp(t, "tasks", "--config", path, "--format", "json")
	if err != nil {
		t.Fatalf("tasks unexpected error: %v", err)
	}
	if !strings.Contains(out, `"name": "androidArtifactPaidRelease"`) {
		t.Errorf("tasks output should list androidArtifactPaidRelease, got:\n%s", out)
	}
}

func TestDescribeCommand(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), DefaultConfigFile, testProjectConfig)

	out, err := runApp(t, "describe", "--config", path, "paidRelease")
	if err != nil {
		t.Fatalf("describe unexpected error: %v", err)
	}
	if !strings.Contains(out, "mylib-paid-release.aar") {
		t.Errorf("describe output = %q", out)
	}

	if _, err := runApp(t, "describe", "--config", path, "freeDebug"); err == nil {
		t.Error("describe should fail for an unknown variant")
	}
}

func TestPlanCommand(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), DefaultConfigFile, testProjectConfig)

	out, err := runApp(t, "plan", "--config", path, "androidArtifactDebug")
	if err != nil {
		t.Fatalf("plan unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 || !strings.HasSuffix(lines[0], "assembleDebug") || !strings.HasSuffix(lines[4], "androidArtifactDebug") {
		t.Errorf("plan output = %q", out)
	}

	if _, err := runApp(t, "plan", "--config", path, "assembleFree"); err == nil {
		t.Error("plan should fail for an unknown task")
	}
}

func TestPomCommand(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), DefaultConfigFile, testProjectConfig)

	out, err := runApp(t, "pom", "--config", path, "debugAar")
	if err != nil {
		t.Fatalf("pom unexpected error: %v", err)
	}
	for _, should := range []string{"<artifactId>mylib-android</artifactId>", "<packaging>aar</packaging>", "<scope>compile</scope>"} {
		if !strings.Contains(out, should) {
			t.Errorf("pom output should contain %q, got:\n%s", should, out)
		}
	}

	if _, err := runApp(t, "pom", "--config", path, "missingAar"); err == nil {
		t.Error("pom should fail for an unknown publication")
	}
}

func TestValidateCommandLogic(t *testing.T) {
	dir := t.TempDir()
	valid := writeConfigFile(t, dir, "valid.yaml", testProjectConfig)
	invalid := writeConfigFile(t, dir, "invalid.yaml", "project:\n  name: mylib\nvariants: [debug, debug]\n")

	out, err := runApp(t, "validate", "--config", valid)
	if err != nil {
		t.Fatalf("validate unexpected error: %v", err)
	}
	if !strings.Contains(out, "Configuration is valid: 2 variants, 2 publications") {
		t.Errorf("validate output = %q", out)
	}

	if _, err := runApp(t, "validate", "--config", invalid); err == nil {
		t.Error("validate should reject duplicate variants")
	}

	if _, err := runApp(t, "validate", "--config", filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("validate should fail for a missing file")
	}
}

func TestConfigPathUsesDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, DefaultConfigFile, testProjectConfig)

	out, err := runApp(t, "publications", "--directory", dir)
	if err != nil {
		t.Fatalf("publications unexpected error: %v", err)
	}
	if !strings.Contains(out, "Total: 2 publications") {
		t.Errorf("publications output = %q", out)
	}
}

func TestInitCommandLogic(t *testing.T) {
	dir := t.TempDir()

	if _, err := runApp(t, "init", "--directory", dir, "--name", "corelib"); err != nil {
		t.Fatalf("init unexpected error: %v", err)
	}

	cfg, err := LoadConfig(filepath.Join(dir, DefaultConfigFile), discardLogger())
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Project.Name != "corelib" || cfg.Project.Version != "0.1.0" {
		t.Errorf("generated config = %+v", cfg.Project)
	}

	if _, err := runApp(t, "init", "--directory", dir); err == nil {
		t.Error("init should refuse to overwrite an existing config")
	}
}

func TestGenerateTemplate(t *testing.T) {
	tests := []struct {
		name          string
		projectName   string
		shouldContain []string
	}{
		{"Named project", "mylib", []string{"name: mylib", "artifact_id: mylib", "- debug", "- release"}},
		{"Empty name falls back", "", []string{"name: mylib"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := generateTemplate(tt.projectName)
			for _, should := range tt.shouldContain {
				if !strings.Contains(result, should) {
					t.Errorf("generateTemplate(%q) should contain %q", tt.projectName, should)
				}
			}
		})
	}
}

func TestCliError(t *testing.T) {
	if cliError("pom", nil) != nil {
		t.Error("cliError(nil) should be nil")
	}

	_, notFound := NewTaskGraph().Plan("assembleFree")
	err := cliError("plan", notFound)
	if err == nil || !strings.Contains(err.Error(), "assembleFree") {
		t.Errorf("cliError() = %v, should keep the task name", err)
	}
}

func TestCommandsRequireOneArgument(t *testing.T) {
	path := writeConfigFile(t, t.TempDir(), DefaultConfigFile, testProjectConfig)

	tests := []struct {
		name string
		args []string
	}{
		{"describe without variant", []string{"describe", "--config", path}},
		{"describe with two variants", []string{"describe", "--config", path, "debug", "paidRelease"}},
		{"plan without task", []string{"plan", "--config", path}},
		{"pom without publication", []string{"pom", "--config", path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runApp(t, tt.args...); err == nil {
				t.Errorf("%v should fail", tt.args)
			}
		})
	}
}

func TestCommandsAcceptFlagsBeforeArgument(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, DefaultConfigFile, testProjectConfig)

	tests := []struct {
		name   string
		args   []string
		should string
	}{
		{"describe with config", []string{"describe", "--config", path, "paidRelease"}, "mylib-paid-release.aar"},
		{"describe with short directory", []string{"describe", "-D", dir, "paidRelease"}, "mylib-paid-release.aar"},
		{"describe as json", []string{"describe", "-D", dir, "--format", "json", "debug"}, `"publication": "debugAar"`},
		{"plan with short directory", []string{"plan", "-D", dir, "androidArtifactDebug"}, "assembleDebug"},
		{"pom with short config", []string{"pom", "-c", path, "paidReleaseAar"}, "<packaging>aar</packaging>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			if err != nil {
				t.Fatalf("%v unexpected error: %v", tt.args, err)
			}
			if !strings.Contains(out, tt.should) {
				t.Errorf("%v output should contain %q, got:\n%s", tt.args, tt.should, out)
			}
		})
	}
}
