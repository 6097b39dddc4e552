package main

import (
	"fmt"
	"strings"

	goerrors "github.com/agilira/go-errors"
)

// TaskRegistry is the host task container.
type TaskRegistry interface {
	Register(task Task) error
	Lookup(name string) (Task, bool)
	Tasks() []Task
}

// TaskGraph is an in-memory TaskRegistry keeping registration order.
type TaskGraph struct {
	byName map[string]int
	tasks  []Task
}

func NewTaskGraph() *TaskGraph {
	return &TaskGraph{byName: make(map[string]int)}
}

func (g *TaskGraph) Register(task Task) error {
	if strings.TrimSpace(task.Name) == "" {
		return goerrors.New(ErrCodeInvalidConfig, "task name is required")
	}
	if _, exists := g.byName[task.Name]; exists {
		return goerrors.New(ErrCodeDuplicateTask, fmt.Sprintf("task %q already registered", task.Name))
	}
	g.byName[task.Name] = len(g.tasks)
	g.tasks = append(g.tasks, task)
	return nil
}

func (g *TaskGraph) Lookup(name string) (Task, bool) {
	i, ok := g.byName[name]
	if !ok {
		return Task{}, false
	}
	return g.tasks[i], true
}

func (g *TaskGraph) Tasks() []Task {
	out := make([]Task, len(g.tasks))
	copy(out, g.tasks)
	return out
}

// Plan returns the tasks the host would execute for name, dependencies
// first. Each task appears once.
func (g *TaskGraph) Plan(name string) ([]string, error) {
	var (
		order   []string
		done    = make(map[string]bool)
		onStack = make(map[string]bool)
		stack   []string
	)

	var visit func(string) error
	visit = func(n string) error {
		if done[n] {
			return nil
		}
		if onStack[n] {
			return goerrors.New(ErrCodeDependencyCycle,
				"dependency cycle: "+strings.Join(append(stack, n), " -> "))
		}
		task, ok := g.Lookup(n)
		if !ok {
			msg := fmt.Sprintf("task %q not found", n)
			if len(stack) > 0 {
				msg += fmt.Sprintf(" (required by %q)", stack[len(stack)-1])
			}
			return goerrors.New(ErrCodeTaskNotFound, msg)
		}

		onStack[n] = true
		stack = append(stack, n)
		for _, dep := range task.Deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		onStack[n] = false

		done[n] = true
		order = append(order, n)
		return nil
	}

	if err := visit(name); err != nil {
		return nil, err
	}
	return order, nil
}
