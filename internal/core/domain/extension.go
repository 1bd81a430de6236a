package domain

import "path/filepath"

// DefaultSpringloadedVersion is the reload agent version declared into the
// springloaded scope when the build script declares nothing itself.
const DefaultSpringloadedVersion = "1.2.8.RELEASE"

// ProjectLayout supplies the owning project's default locations. The
// extension reads them lazily, so changes made to the layout before the first
// read are observed.
type ProjectLayout interface {
	// ProjectDir returns the project's root directory.
	ProjectDir() string
	// BuildDir returns the project's build output directory.
	BuildDir() string
}

// VersionCallback is invoked after the grails version transitions to a new value.
type VersionCallback func(version string) error

// Extension is the mutable per-project settings object attached by the
// plugin. Setting the grails version is observable: registered callbacks fire
// exactly once per distinct value assignment, in registration order.
type Extension struct {
	layout ProjectLayout

	version             string
	projectDir          string
	workDir             string
	springloadedVersion string

	callbacks []VersionCallback
}

// NewExtension creates an Extension whose directory defaults delegate to layout.
func NewExtension(layout ProjectLayout) *Extension {
	return &Extension{
		layout:              layout,
		springloadedVersion: DefaultSpringloadedVersion,
	}
}

// GrailsVersion returns the configured grails version, or "" when unset.
func (e *Extension) GrailsVersion() string {
	return e.version
}

// SetGrailsVersion stores the version and fires every registered callback
// with the new value, in registration order. Re-setting the current value is
// a no-op and fires nothing. A callback error propagates to the caller;
// callbacks that already ran are not rolled back.
func (e *Extension) SetGrailsVersion(version string) error {
	if version == e.version {
		return nil
	}
	e.version = version
	for _, cb := range e.callbacks {
		if err := cb(version); err != nil {
			return err
		}
	}
	return nil
}

// OnSetGrailsVersion appends a callback fired on every version change.
func (e *Extension) OnSetGrailsVersion(cb VersionCallback) {
	e.callbacks = append(e.callbacks, cb)
}

// ProjectDir returns the explicit project dir if one was set, otherwise the
// layout's current project dir.
func (e *Extension) ProjectDir() string {
	if e.projectDir != "" {
		return e.projectDir
	}
	return e.layout.ProjectDir()
}

// SetProjectDir overrides the lazy project dir default.
func (e *Extension) SetProjectDir(dir string) {
	e.projectDir = dir
}

// WorkDir returns the explicit work dir if one was set, otherwise a "grails"
// directory under the layout's current build dir.
func (e *Extension) WorkDir() string {
	if e.workDir != "" {
		return e.workDir
	}
	return filepath.Join(e.layout.BuildDir(), "grails")
}

// SetWorkDir overrides the lazy work dir default.
func (e *Extension) SetWorkDir(dir string) {
	e.workDir = dir
}

// SpringloadedVersion returns the reload agent version used for the default
// springloaded declaration.
func (e *Extension) SpringloadedVersion() string {
	return e.springloadedVersion
}

// SetSpringloadedVersion overrides the default reload agent version.
func (e *Extension) SetSpringloadedVersion(v string) {
	e.springloadedVersion = v
}
