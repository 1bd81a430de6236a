package shell

// BuildEnvironment exposes buildEnvironment for tests.
var BuildEnvironment = buildEnvironment
