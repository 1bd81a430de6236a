// Package shell provides the grails process executor adapter.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/grails/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.GrailsExecutor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the grails launcher from the invocation's framework home.
// The environment selector is passed as a -Dgrails.env system property ahead
// of the subcommand; the resolved classpath is exported via CLASSPATH.
// Output streams go to the telemetry vertex when the context carries one,
// otherwise to the logger.
func (e *Executor) Execute(ctx context.Context, inv *domain.Invocation) error {
	launcher := filepath.Join(inv.GrailsHome, "bin", "grails")

	args := make([]string, 0, len(inv.Args)+2)
	if inv.Env != "" {
		args = append(args, "-Dgrails.env="+inv.Env)
	}
	args = append(args, inv.Command)
	args = append(args, inv.Args...)

	cmd := exec.CommandContext(ctx, launcher, args...) //nolint:gosec // launcher path derives from the installed home
	cmd.Dir = inv.ProjectDir
	cmd.Env = buildEnvironment(os.Environ(), inv)
	cmd.Stdout, cmd.Stderr = e.outputs(ctx)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		wrapped := domain.Detail(domain.ErrTaskExecutionFailed, "command", inv.Command)
		return zerr.With(wrapped, "exit_code", exitCode)
	}
	return nil
}

// outputs selects the destination for the process streams.
func (e *Executor) outputs(ctx context.Context) (io.Writer, io.Writer) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		return v.Stdout(), v.Stderr()
	}
	return &logWriter{logger: e.logger}, &logWriter{logger: e.logger, warn: true}
}

// buildEnvironment merges the system environment with the invocation's
// framework settings. GRAILS_HOME, GRAILS_WORK_DIR and CLASSPATH always
// reflect the invocation, overriding any inherited value.
func buildEnvironment(sysEnv []string, inv *domain.Invocation) []string {
	overrides := map[string]string{
		"GRAILS_HOME":     inv.GrailsHome,
		"GRAILS_WORK_DIR": inv.WorkDir,
		"CLASSPATH":       strings.Join(inv.Classpath, string(os.PathListSeparator)),
	}

	env := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, overridden := overrides[k]; overridden {
			continue
		}
		env = append(env, entry)
	}
	for _, k := range []string{"GRAILS_HOME", "GRAILS_WORK_DIR", "CLASSPATH"} {
		env = append(env, k+"="+overrides[k])
	}
	return env
}

type logWriter struct {
	logger ports.Logger
	warn   bool
}

// Write splits the chunk into lines and forwards each to the logger.
func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.warn {
			w.logger.Warn(line)
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
