package progrock_test

import (
	"context"
	"testing"

	"go.trai.ch/grails/internal/adapters/telemetry/progrock"
	"go.trai.ch/grails/internal/core/ports"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx, vertex := recorder.Record(context.Background(), "grails-test-app")

	// The returned context carries the vertex for downstream writers.
	if _, ok := ports.VertexFromContext(ctx); !ok {
		t.Error("expected context to carry the vertex")
	}

	if _, err := vertex.Stdout().Write([]byte("Standard Output\n")); err != nil {
		t.Errorf("failed to write to stdout: %v", err)
	}
	if _, err := vertex.Stderr().Write([]byte("Error Output\n")); err != nil {
		t.Errorf("failed to write to stderr: %v", err)
	}

	vertex.Complete(nil)

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}
