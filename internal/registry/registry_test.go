package registry

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func stub(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	r := New()
	if err := r.Register("b", stub("b", "Bravo")); err != nil {
		t.Fatalf("Register(b): %v", err)
	}
	if err := r.Register("a", stub("a", "Alpha")); err != nil {
		t.Fatalf("Register(a): %v", err)
	}

	if !r.Exists("a") || r.Exists("missing") {
		t.Error("Exists reported wrong membership")
	}

	g, err := r.Create("b")
	if err != nil {
		t.Fatalf("Create(b): %v", err)
	}
	if g.ID() != "b" {
		t.Errorf("Create(b).ID() = %q", g.ID())
	}

	list := r.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].Title != "Bravo" {
		t.Errorf("List() = %+v, want sorted a, b", list)
	}

	if got := r.Title("a"); got != "Alpha" {
		t.Errorf("Title(a) = %q", got)
	}
	if got := r.Title("zzz"); got != "zzz" {
		t.Errorf("Title(zzz) = %q, want fallback to id", got)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	r := New()
	if err := r.Register("x", stub("x", "X")); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "x", stub("x", "X")},
		{"empty id", "", stub("", "")},
		{"nil factory", "y", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Register(tt.id, tt.f); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := New().Create("nope"); err == nil {
		t.Error("expected error for unknown id")
	}
}
