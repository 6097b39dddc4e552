package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Workspace is the result of one configuration pass.
type Workspace struct {
	Config       Config
	Tasks        *TaskGraph
	Publications *PublicationContainer
}

// Configure loads the config at path and applies it to fresh collaborators.
func Configure(path string, logger *slog.Logger) (*Workspace, error) {
	cfg, err := LoadConfig(path, logger)
	if err != nil {
		return nil, err
	}
	ws := &Workspace{
		Config:       cfg,
		Tasks:        NewTaskGraph(),
		Publications: NewPublicationContainer(),
	}
	if err := Apply(cfg, ws.Tasks, ws.Publications, logger); err != nil {
		return nil, err
	}
	return ws, nil
}

func encodeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func encodeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(v)
}

func listPublications(w io.Writer, pubs []Publication, format string) error {
	switch format {
	case "json":
		return encodeJSON(w, map[string]interface{}{
			"publications": pubs,
			"total":        len(pubs),
		})
	case "yaml":
		return encodeYAML(w, map[string]interface{}{
			"publications": pubs,
			"total":        len(pubs),
		})
	default: // table
		return listPublicationsTable(w, pubs)
	}
}

func listPublicationsTable(w io.Writer, pubs []Publication) error {
	fmt.Fprintln(w, "Publications:")
	fmt.Fprintln(w, "-------------")

	if len(pubs) == 0 {
		fmt.Fprintln(w, "No publications found")
		return nil
	}

	maxNameLen := 0
	for _, p := range pubs {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	for _, p := range pubs {
		padding := strings.Repeat(" ", maxNameLen-len(p.Name)+2)
		c := p.Coordinates
		fmt.Fprintf(w, "  %s%s%s:%s:%s (%d artifacts)\n",
			p.Name, padding, c.GroupID, c.ArtifactID, c.Version, len(p.Artifacts))
		for _, a := range p.Artifacts {
			classifier := a.Classifier
			if classifier == "" {
				classifier = "-"
			}
			fmt.Fprintf(w, "  %s  %-8s %s (built by %s)\n",
				strings.Repeat(" ", maxNameLen), classifier, a.File, a.BuiltBy)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d publications\n", len(pubs))
	return nil
}

func listTasks(w io.Writer, tasks []Task, format string) error {
	switch format {
	case "json":
		return encodeJSON(w, map[string]interface{}{
			"tasks": tasks,
			"total": len(tasks),
		})
	case "yaml":
		return encodeYAML(w, map[string]interface{}{
			"tasks": tasks,
			"total": len(tasks),
		})
	default: // table
		return listTasksTable(w, tasks)
	}
}

func listTasksTable(w io.Writer, tasks []Task) error {
	fmt.Fprintln(w, "Available tasks:")
	fmt.Fprintln(w, "----------------")

	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return nil
	}

	// group the listing the way the host does
	byGroup := make(map[string][]Task)
	for _, t := range tasks {
		byGroup[t.Group] = append(byGroup[t.Group], t)
	}
	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	maxNameLen := 0
	for _, t := range tasks {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	for _, g := range groups {
		fmt.Fprintf(w, "\n%s tasks\n", Capitalize(g))
		for _, t := range byGroup[g] {
			padding := strings.Repeat(" ", maxNameLen-len(t.Name)+2)
			deps := ""
			if len(t.Deps) > 0 {
				deps = fmt.Sprintf(" (depends: %s)", strings.Join(t.Deps, ", "))
			}
			fmt.Fprintf(w, "  %s%s%s%s\n", t.Name, padding, t.Description, deps)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d tasks\n", len(tasks))
	return nil
}

func printDescriptor(w io.Writer, d Descriptor, format string) error {
	switch format {
	case "json":
		return encodeJSON(w, d)
	case "yaml":
		return encodeYAML(w, d)
	}

	fmt.Fprintf(w, "Variant:     %s\n", d.Variant)
	fmt.Fprintf(w, "Publication: %s\n", d.PublicationName)
	fmt.Fprintf(w, "Archive:     %s\n", d.ArchiveFileName)
	fmt.Fprintf(w, "Build task:  %s\n", d.BuildTaskName)

	kinds := make([]string, 0, len(d.Classifiers))
	for k := range d.Classifiers {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "Classifier:  %s -> %s\n", k, d.Classifiers[k])
	}
	return nil
}

func printPlan(w io.Writer, order []string) {
	for i, name := range order {
		fmt.Fprintf(w, "%2d. %s\n", i+1, name)
	}
}
