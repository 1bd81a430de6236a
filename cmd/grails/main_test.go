package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_TasksWithValidDescriptor(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	tmpDir := t.TempDir()
	descriptor := `grailsVersion: "2.4"
`
	require.NoError(t, os.WriteFile(tmpDir+"/grails.yaml", []byte(descriptor), 0o600))
	t.Chdir(tmpDir)

	os.Args = []string{"grails", "tasks"}
	assert.Equal(t, 0, run())
}

func TestRun_FailsWithoutDescriptor(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	t.Chdir(t.TempDir())

	os.Args = []string{"grails", "run", "clean"}
	assert.Equal(t, 1, run())
}
