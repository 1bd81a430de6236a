package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/grails/internal/core/domain"
	"go.trai.ch/zerr"
)

type fakeLayout struct {
	projectDir string
	buildDir   string
}

func (l *fakeLayout) ProjectDir() string { return l.projectDir }
func (l *fakeLayout) BuildDir() string   { return l.buildDir }

func TestExtension_SetGrailsVersion_FiresOncePerDistinctValue(t *testing.T) {
	ext := domain.NewExtension(&fakeLayout{})

	var seen []string
	ext.OnSetGrailsVersion(func(v string) error {
		seen = append(seen, v)
		return nil
	})

	require.NoError(t, ext.SetGrailsVersion("3.0"))
	require.NoError(t, ext.SetGrailsVersion("3.0"))
	require.NoError(t, ext.SetGrailsVersion("3.1"))

	assert.Equal(t, []string{"3.0", "3.1"}, seen)
	assert.Equal(t, "3.1", ext.GrailsVersion())
}

func TestExtension_Callbacks_FireInRegistrationOrder(t *testing.T) {
	ext := domain.NewExtension(&fakeLayout{})

	var order []string
	ext.OnSetGrailsVersion(func(string) error {
		order = append(order, "first")
		return nil
	})
	ext.OnSetGrailsVersion(func(string) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, ext.SetGrailsVersion("2.4"))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestExtension_CallbackError_Propagates(t *testing.T) {
	ext := domain.NewExtension(&fakeLayout{})

	ranFirst := false
	boom := zerr.New("callback failed")
	ext.OnSetGrailsVersion(func(string) error {
		ranFirst = true
		return boom
	})
	ranSecond := false
	ext.OnSetGrailsVersion(func(string) error {
		ranSecond = true
		return nil
	})

	err := ext.SetGrailsVersion("2.4")
	require.Error(t, err)
	assert.True(t, ranFirst)
	assert.False(t, ranSecond, "callback after the failing one must not fire")
	// The value stays stored: already-run callbacks are not rolled back.
	assert.Equal(t, "2.4", ext.GrailsVersion())
}

func TestExtension_Dirs_LazyDefaults(t *testing.T) {
	layout := &fakeLayout{projectDir: "/proj", buildDir: "/proj/build"}
	ext := domain.NewExtension(layout)

	// A layout change before the first read is observed.
	layout.buildDir = "/proj/out"

	assert.Equal(t, "/proj", ext.ProjectDir())
	assert.Equal(t, "/proj/out/grails", ext.WorkDir())

	ext.SetProjectDir("/elsewhere")
	ext.SetWorkDir("/tmp/work")
	assert.Equal(t, "/elsewhere", ext.ProjectDir())
	assert.Equal(t, "/tmp/work", ext.WorkDir())
}
