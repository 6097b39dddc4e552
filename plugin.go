package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	goerrors "github.com/agilira/go-errors"
)

const (
	groupBuild      = "build"
	groupPublishing = "publishing"

	// ListPublicationsTask prints every generated publication task.
	ListPublicationsTask = artifactsPrefix
)

// Apply registers the tasks and publications of every variant in cfg.
// Variants are processed in declaration order; the first collaborator
// error stops the pass.
func Apply(cfg Config, tasks TaskRegistry, pubs PublicationSink, logger *slog.Logger) error {
	opts := cfg.Options()
	deps, err := cfg.PomDependencies()
	if err != nil {
		return err
	}

	var generated []string
	for _, variant := range cfg.Variants {
		if err := applyVariant(cfg, opts, deps, variant, tasks, pubs); err != nil {
			return wrapVariant(variant, err)
		}
		generated = append(generated, ArtifactsTaskName(variant))
		logger.Debug("publication wired",
			"variant", variant,
			"publication", PublicationName(variant),
			"archive", ArchiveFileName(variant, cfg.Project.Name))
	}

	return tasks.Register(Task{
		Name:        ListPublicationsTask,
		Group:       groupPublishing,
		Description: "Available publication tasks: " + strings.Join(generated, ", "),
	})
}

func applyVariant(cfg Config, opts PublishOptions, deps []Dependency, variant string,
	tasks TaskRegistry, pubs PublicationSink) error {
	p := cfg.Project

	assemble := AssembleTaskName(variant)
	if err := ensureTask(tasks, Task{
		Name:        assemble,
		Group:       groupBuild,
		Description: "Assembles the " + variant + " archive",
		Output:      ArchivePath(p.BuildDir, variant, p.Name),
	}); err != nil {
		return err
	}

	for _, kind := range opts.Kinds() {
		if err := tasks.Register(Task{
			Name:        JarTaskName(kind, variant),
			Group:       groupPublishing,
			Description: fmt.Sprintf("Packages the %s jar of %s", kind, variant),
			Deps:        []string{assemble},
			Output:      JarPath(p.BuildDir, p.Name, variant, ClassifierFor(kind, variant)),
		}); err != nil {
			return err
		}
	}

	pub := newPublication(cfg, opts, deps, variant)
	if err := pubs.Create(pub); err != nil {
		return err
	}

	builtBy := make([]string, 0, len(pub.Artifacts))
	for _, a := range pub.Artifacts {
		builtBy = append(builtBy, a.BuiltBy)
	}
	publish := PublishTaskName(variant)
	if err := ensureTask(tasks, Task{
		Name:        publish,
		Group:       groupPublishing,
		Description: "Publishes " + pub.Name + " to the local Maven repository",
		Deps:        builtBy,
	}); err != nil {
		return err
	}

	return tasks.Register(Task{
		Name:        ArtifactsTaskName(variant),
		Group:       groupPublishing,
		Description: "Creates all artifacts of " + variant + " and publishes them to maven local",
		Deps:        []string{publish},
	})
}

// ensureTask registers task unless the host already provides it.
func ensureTask(tasks TaskRegistry, task Task) error {
	if _, ok := tasks.Lookup(task.Name); ok {
		return nil
	}
	return tasks.Register(task)
}

// wrapVariant names the failing variant. The message repeats the cause's
// own message once, without its code.
func wrapVariant(variant string, err error) error {
	msg := err.Error()
	var coded *goerrors.Error
	if errors.As(err, &coded) {
		msg = coded.Message
	}
	return goerrors.Wrap(err, codeOf(err), "variant "+variant+": "+msg)
}

// codeOf keeps the code of a coded error when wrapping it.
func codeOf(err error) goerrors.ErrorCode {
	for _, code := range []goerrors.ErrorCode{
		ErrCodeDuplicateTask,
		ErrCodeDuplicatePublication,
		ErrCodeTaskNotFound,
		ErrCodeInvalidConfig,
		ErrCodeInvalidCoordinate,
	} {
		if goerrors.HasCode(err, code) {
			return code
		}
	}
	return ErrCodeInvalidConfig
}
