package shell_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grails/internal/adapters/shell"
	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/zerr"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// stubHome builds a fake framework home whose bin/grails script dumps its
// arguments and selected environment variables to a capture file, then exits
// with the given code.
func stubHome(t *testing.T, exitCode string) (home, capture string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub launcher requires a POSIX shell")
	}

	home = t.TempDir()
	capture = filepath.Join(t.TempDir(), "capture.txt")
	binDir := filepath.Join(home, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o750))

	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > " + capture + "\n" +
		"printf 'GRAILS_HOME=%s\\n' \"$GRAILS_HOME\" >> " + capture + "\n" +
		"printf 'CLASSPATH=%s\\n' \"$CLASSPATH\" >> " + capture + "\n" +
		"exit " + exitCode + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "grails"), []byte(script), 0o700)) //nolint:gosec // test launcher must be executable
	return home, capture
}

func TestExecutor_Execute_PassesCommandAndEnvironment(t *testing.T) {
	home, capture := stubHome(t, "0")

	inv := &domain.Invocation{
		Command:    "test-app",
		Args:       []string{"unit:"},
		Env:        "development",
		GrailsHome: home,
		ProjectDir: t.TempDir(),
		WorkDir:    t.TempDir(),
		Classpath:  []string{"/cache/a.jar", "/cache/b.jar"},
	}

	err := shell.NewExecutor(nopLogger{}).Execute(context.Background(), inv)
	require.NoError(t, err)

	data, err := os.ReadFile(capture)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	assert.Equal(t, []string{
		"-Dgrails.env=development",
		"test-app",
		"unit:",
		"GRAILS_HOME=" + home,
		"CLASSPATH=/cache/a.jar" + string(os.PathListSeparator) + "/cache/b.jar",
	}, lines)
}

func TestExecutor_Execute_OmitsEnvFlagWithoutSelector(t *testing.T) {
	home, capture := stubHome(t, "0")

	inv := &domain.Invocation{
		Command:    "clean",
		GrailsHome: home,
		ProjectDir: t.TempDir(),
	}

	err := shell.NewExecutor(nopLogger{}).Execute(context.Background(), inv)
	require.NoError(t, err)

	data, err := os.ReadFile(capture)
	require.NoError(t, err)
	assert.Equal(t, "clean", strings.Split(string(data), "\n")[0])
}

func TestExecutor_Execute_ReportsExitCode(t *testing.T) {
	home, _ := stubHome(t, "3")

	inv := &domain.Invocation{
		Command:    "war",
		GrailsHome: home,
		ProjectDir: t.TempDir(),
	}

	err := shell.NewExecutor(nopLogger{}).Execute(context.Background(), inv)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaskExecutionFailed))

	var zerrErr *zerr.Error
	require.True(t, errors.As(err, &zerrErr))
	assert.Equal(t, 3, zerrErr.Metadata()["exit_code"])
	assert.Equal(t, "war", zerrErr.Metadata()["command"])
}

func TestBuildEnvironment_OverridesInherited(t *testing.T) {
	inv := &domain.Invocation{
		GrailsHome: "/opt/grails",
		WorkDir:    "/tmp/work",
		Classpath:  []string{"/cache/a.jar"},
	}

	env := shell.BuildEnvironment([]string{"PATH=/usr/bin", "GRAILS_HOME=/stale", "CLASSPATH=/stale.jar"}, inv)

	assert.Contains(t, env, "PATH=/usr/bin")
	assert.Contains(t, env, "GRAILS_HOME=/opt/grails")
	assert.Contains(t, env, "GRAILS_WORK_DIR=/tmp/work")
	assert.Contains(t, env, "CLASSPATH=/cache/a.jar")
	assert.NotContains(t, env, "GRAILS_HOME=/stale")
	assert.NotContains(t, env, "CLASSPATH=/stale.jar")
}
