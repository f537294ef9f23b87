package progrock_test

import (
	"context"
	"testing"

	"go.trai.ch/kiln/internal/adapters/telemetry/progrock"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	vctx, vertex := recorder.Record(ctx, "Client Dev")

	if _, ok := ports.VertexFromContext(vctx); !ok {
		t.Fatal("expected vertex in returned context")
	}

	if _, err := vertex.Stdout().Write([]byte("compiling scripts\n")); err != nil {
		t.Errorf("failed to write to stdout: %v", err)
	}

	vertex.Log(domain.LogLevelInfo, "symbols: FOO;GAME_CLIENT;")
	vertex.Complete(nil)

	// Same display name again must not reuse the vertex.
	_, second := recorder.Record(ctx, "Client Dev")
	if second == vertex {
		t.Error("expected a new vertex for a repeated name")
	}
	second.Complete(nil)

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}
