package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Daru13/reactrust/internal/config"
)

type recordStage struct {
	name  string
	calls *[]string
	err   error
}

func (s *recordStage) Name() string { return s.name }

func (s *recordStage) Execute(ctx context.Context, bc *BuildContext) error {
	*s.calls = append(*s.calls, s.name)
	return s.err
}

func newTestContext() *BuildContext {
	return NewBuildContext("example.rml", "example", "", config.Default())
}

func TestRun_ExecutesStagesInOrder(t *testing.T) {
	var calls []string
	p := New(
		&recordStage{name: "a", calls: &calls},
		&recordStage{name: "b", calls: &calls},
		&recordStage{name: "c", calls: &calls},
	)

	if err := p.Run(context.Background(), newTestContext()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := strings.Join(calls, ","); got != "a,b,c" {
		t.Errorf("stage order: got %q, want %q", got, "a,b,c")
	}
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	p := New(
		&recordStage{name: "a", calls: &calls},
		&recordStage{name: "b", calls: &calls, err: boom},
		&recordStage{name: "c", calls: &calls},
	)

	err := p.Run(context.Background(), newTestContext())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped stage error, got %v", err)
	}
	if !strings.Contains(err.Error(), "stage b") {
		t.Errorf("error should name the failing stage: %v", err)
	}
	if got := strings.Join(calls, ","); got != "a,b" {
		t.Errorf("stages run: got %q, want %q", got, "a,b")
	}
}

func TestRun_CancelledContext(t *testing.T) {
	var calls []string
	p := New(&recordStage{name: "a", calls: &calls})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Run(ctx, newTestContext()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("no stage should run after cancellation, got %v", calls)
	}
}

func TestBuildContext_AddFile(t *testing.T) {
	bc := newTestContext()
	bc.AddFile("example.ml")
	bc.AddFile("example")

	if len(bc.GeneratedFiles) != 2 {
		t.Fatalf("generated files: got %d, want 2", len(bc.GeneratedFiles))
	}
	if bc.GeneratedFiles[0] != "example.ml" {
		t.Errorf("first generated file: got %q", bc.GeneratedFiles[0])
	}
}
