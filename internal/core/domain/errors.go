package domain

import "go.trai.ch/zerr"

var (
	// ErrVersionNotSet is returned when a task reaches execution time without a grails version configured.
	ErrVersionNotSet = zerr.New("grails version not set")

	// ErrUnknownProperty is returned when resolving a convention property that has no registered supplier.
	ErrUnknownProperty = zerr.New("unknown convention property")

	// ErrUnknownTask is returned when a requested task name matches neither a declared task nor the dynamic prefix.
	ErrUnknownTask = zerr.New("unknown task")

	// ErrScopeCycle is returned when an inheritance edge would create a cycle in the scope graph.
	ErrScopeCycle = zerr.New("scope inheritance cycle")

	// ErrInvalidDependency is returned when a dependency coordinate cannot be parsed.
	ErrInvalidDependency = zerr.New("invalid dependency coordinate")

	// ErrInvalidVersion is returned when the configured grails version is not a parseable version string.
	ErrInvalidVersion = zerr.New("invalid grails version")

	// ErrUnsupportedVersion is returned when the configured grails version predates the oldest supported release.
	ErrUnsupportedVersion = zerr.New("unsupported grails version")

	// ErrProjectVersionRequired is returned when packaging requires a project version and none is configured.
	ErrProjectVersionRequired = zerr.New("project version required")

	// ErrNoTasksSpecified is returned when a run is requested without any task names.
	ErrNoTasksSpecified = zerr.New("no tasks specified")

	// ErrTaskExecutionFailed is returned when the grails process reports a non-zero exit status.
	ErrTaskExecutionFailed = zerr.New("task execution failed")
)

// Detail attaches a metadata pair to err. Unlike attaching metadata to a
// sentinel directly (which yields a detached copy), the wrap keeps err itself
// in the unwrap chain, so errors.Is against the sentinel still matches.
// Further pairs can be attached to the result with zerr.With.
func Detail(err error, key string, value any) error {
	return zerr.With(zerr.Wrap(err, ""), key, value)
}
