package domain

// CommandTask is a build task that invokes exactly one grails subcommand.
// Its runtime properties live in the attached Conventions bag and are only
// computed when the task is prepared for execution, so build-script
// configuration that happens after task creation is still observed.
type CommandTask struct {
	Name    string
	Command string
	Args    []string
	// Env selects the grails environment (e.g. "dev", "prod"); empty means
	// the command's own default.
	Env string

	Conventions *Conventions
}

// NewCommandTask creates a task with an empty conventions bag.
func NewCommandTask(name, command string) *CommandTask {
	return &CommandTask{
		Name:        name,
		Command:     command,
		Conventions: NewConventions(),
	}
}

// Invocation is the fully resolved input handed to the execution collaborator.
type Invocation struct {
	Command       string
	Args          []string
	Env           string
	GrailsVersion string
	GrailsHome    string
	ProjectDir    string
	WorkDir       string
	Classpath     []string
}
