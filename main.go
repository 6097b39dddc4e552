package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/agilira/orpheus/pkg/orpheus"
)

var version = "dev"

// stdout is where command output goes; tests replace it.
var stdout io.Writer = os.Stdout

func main() {
	app := newApp()
	if err := app.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *orpheus.App {
	app := orpheus.New("androidartifacts").
		SetDescription("Wires Maven publications for every variant of an Android library").
		SetVersion(version)

	app.AddCommand(withProjectFlags(orpheus.NewCommand("publications", "List the publication of every variant").
		SetHandler(publicationsCommand).
		AddFlag("format", "f", "table", "Output format: table, json or yaml")))

	app.AddCommand(withProjectFlags(orpheus.NewCommand("tasks", "List the registered task graph").
		SetHandler(tasksCommand).
		AddFlag("format", "f", "table", "Output format: table, json or yaml")))

	app.AddCommand(withProjectFlags(orpheus.NewCommand("describe", "Show the names derived from a variant").
		SetHandler(describeCommand).
		AddFlag("format", "f", "table", "Output format: table, json or yaml")))

	app.AddCommand(withProjectFlags(orpheus.NewCommand("plan", "Show the tasks the build engine runs for a task").
		SetHandler(planCommand)))

	app.AddCommand(withProjectFlags(orpheus.NewCommand("pom", "Print the POM of a publication").
		SetHandler(pomCommand)))

	app.AddCommand(withProjectFlags(orpheus.NewCommand("validate", "Validate the configuration file").
		SetHandler(validateCommand)))

	app.AddCommand(orpheus.NewCommand("init", "Write a starter "+DefaultConfigFile).
		SetHandler(initCommand).
		AddFlag("directory", "D", ".", "Working directory").
		AddFlag("name", "n", "mylib", "Project name"))

	return app
}

func withProjectFlags(cmd *orpheus.Command) *orpheus.Command {
	return cmd.
		AddFlag("config", "c", DefaultConfigFile, "Configuration file").
		AddFlag("directory", "D", ".", "Working directory").
		AddBoolFlag("verbose", "v", false, "Verbose output")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func configPath(ctx *orpheus.Context) string {
	file := ctx.GetFlagString("config")
	if file == "" {
		file = DefaultConfigFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(ctx.GetFlagString("directory"), file)
}

// positionalArgs returns the arguments left after flag parsing.
func positionalArgs(ctx *orpheus.Context) []string {
	if ctx.Flags == nil {
		return nil
	}
	return ctx.Flags.Args()
}

func configure(ctx *orpheus.Context) (*Workspace, *slog.Logger, error) {
	logger := newLogger(os.Stderr, ctx.GetFlagBool("verbose"))
	ws, err := Configure(configPath(ctx), logger)
	return ws, logger, err
}

func publicationsCommand(ctx *orpheus.Context) error {
	ws, _, err := configure(ctx)
	if err != nil {
		return cliError("publications", err)
	}
	return listPublications(stdout, ws.Publications.Publications(), ctx.GetFlagString("format"))
}

func tasksCommand(ctx *orpheus.Context) error {
	ws, _, err := configure(ctx)
	if err != nil {
		return cliError("tasks", err)
	}
	return listTasks(stdout, ws.Tasks.Tasks(), ctx.GetFlagString("format"))
}

func describeCommand(ctx *orpheus.Context) error {
	args := positionalArgs(ctx)
	if len(args) != 1 {
		return orpheus.ValidationError("describe", "expected exactly one variant name")
	}
	ws, _, err := configure(ctx)
	if err != nil {
		return cliError("describe", err)
	}

	variant := args[0]
	for _, v := range ws.Config.Variants {
		if v == variant {
			d := Describe(variant, ws.Config.Project.Name, ws.Config.Options())
			return printDescriptor(stdout, d, ctx.GetFlagString("format"))
		}
	}
	return orpheus.NotFoundError("describe", fmt.Sprintf("variant '%s' not found (available: %s)",
		variant, strings.Join(ws.Config.Variants, ", ")))
}

func planCommand(ctx *orpheus.Context) error {
	args := positionalArgs(ctx)
	if len(args) != 1 {
		return orpheus.ValidationError("plan", "expected exactly one task name")
	}
	ws, _, err := configure(ctx)
	if err != nil {
		return cliError("plan", err)
	}
	order, err := ws.Tasks.Plan(args[0])
	if err != nil {
		return cliError("plan", err)
	}
	printPlan(stdout, order)
	return nil
}

func pomCommand(ctx *orpheus.Context) error {
	args := positionalArgs(ctx)
	if len(args) != 1 {
		return orpheus.ValidationError("pom", "expected exactly one publication name")
	}
	ws, _, err := configure(ctx)
	if err != nil {
		return cliError("pom", err)
	}
	pub, err := ws.Publications.Get(args[0])
	if err != nil {
		return cliError("pom", err)
	}
	out, err := RenderPOM(pub)
	if err != nil {
		return orpheus.ExecutionError("pom", err.Error())
	}
	_, err = stdout.Write(out)
	return err
}

func validateCommand(ctx *orpheus.Context) error {
	ws, logger, err := configure(ctx)
	if err != nil {
		return cliError("validate", err)
	}
	for _, w := range ws.Config.VersionWarnings() {
		logger.Warn(w)
	}
	fmt.Fprintf(stdout, "Configuration is valid: %d variants, %d publications, %d tasks\n",
		len(ws.Config.Variants), len(ws.Publications.Publications()), len(ws.Tasks.Tasks()))
	return nil
}

func initCommand(ctx *orpheus.Context) error {
	path := filepath.Join(ctx.GetFlagString("directory"), DefaultConfigFile)
	if _, err := os.Stat(path); err == nil {
		return orpheus.ValidationError("init", path+" already exists")
	}
	if err := os.WriteFile(path, []byte(generateTemplate(ctx.GetFlagString("name"))), 0600); err != nil {
		return orpheus.ExecutionError("init", err.Error())
	}
	fmt.Fprintf(stdout, "Created %s\n", path)
	return nil
}

func generateTemplate(name string) string {
	if strings.TrimSpace(name) == "" {
		name = "mylib"
	}
	return fmt.Sprintf(`vars:
  VERSION: "0.1.0"

project:
  name: %[1]s
  group: com.example
  version: $VERSION
  build_dir: build
  kotlin: false

artifact:
  artifact_id: %[1]s
  sources: true
  javadoc: true

variants:
  - debug
  - release

dependencies:
  implementation: []
`, name)
}
