package plugin

import (
	"sort"
	"strings"

	"go.trai.ch/grails/internal/core/domain"
)

// DynamicTaskPrefix is the naming-convention prefix recognized by the
// dynamic rule: "grails-run-app" invokes the "run-app" subcommand.
const DynamicTaskPrefix = "grails-"

// TaskFactory resolves task names to command tasks. Lookup first consults the
// statically declared tasks, then falls back to the dynamic rule that
// synthesizes a task from a prefix-matching name. The rule is evaluated per
// requested name: the set of valid names is unbounded.
type TaskFactory struct {
	prefix string
	tasks  map[string]*domain.CommandTask

	// layer applies the generic convention suppliers to every task this
	// factory creates; task-specific suppliers are registered afterwards and
	// shadow the generic ones.
	layer func(*domain.CommandTask)

	// projectArgs and projectEnv are the two optional project-level
	// properties forwarded verbatim into synthesized tasks.
	projectArgs string
	projectEnv  string
}

// NewTaskFactory creates a factory recognizing the given dynamic prefix.
func NewTaskFactory(prefix string, layer func(*domain.CommandTask)) *TaskFactory {
	if layer == nil {
		layer = func(*domain.CommandTask) {}
	}
	return &TaskFactory{
		prefix: prefix,
		tasks:  make(map[string]*domain.CommandTask),
		layer:  layer,
	}
}

// SetProjectProperties sets the optional extra-arguments and
// environment-selector inputs applied to synthesized tasks.
func (f *TaskFactory) SetProjectProperties(args, env string) {
	f.projectArgs = args
	f.projectEnv = env
}

// Declare registers a static task for name invoking command, layering the
// generic convention suppliers onto it. It returns the task so callers can
// register task-specific suppliers on top.
func (f *TaskFactory) Declare(name, command string) *domain.CommandTask {
	t := domain.NewCommandTask(name, command)
	f.layer(t)
	f.tasks[name] = t
	return t
}

// Lookup returns the task registered under name, or synthesizes one when the
// name carries the dynamic prefix. Unmatched names fail with ErrUnknownTask.
func (f *TaskFactory) Lookup(name string) (*domain.CommandTask, error) {
	if t, ok := f.tasks[name]; ok {
		return t, nil
	}

	if command, ok := strings.CutPrefix(name, f.prefix); ok && command != "" {
		t := f.Declare(name, command)
		if f.projectArgs != "" {
			t.Args = strings.Fields(f.projectArgs)
		}
		if f.projectEnv != "" {
			t.Env = f.projectEnv
		}
		return t, nil
	}

	return nil, domain.Detail(domain.ErrUnknownTask, "task", name)
}

// Names returns the names of all currently registered tasks, sorted.
func (f *TaskFactory) Names() []string {
	names := make([]string, 0, len(f.tasks))
	for name := range f.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
