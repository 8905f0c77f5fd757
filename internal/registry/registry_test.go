package registry

import (
	"testing"

	"github.com/vovakirdan/floodit/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub" }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "stub-b", Title: "Stub B"}, func() Game { return stubGame{id: "stub-b"} })
	Register(GameInfo{ID: "stub-a"}, func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered games not found")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true")
	}

	title, ok := Title("stub-b")
	if !ok || title != "Stub B" {
		t.Errorf("Title(stub-b) = %q, %v", title, ok)
	}
	if title, _ := Title("stub-a"); title != "stub-a" {
		t.Errorf("empty title should default to the ID, got %q", title)
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("Create returned %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestListSorted(t *testing.T) {
	Register(GameInfo{ID: "zz-last"}, func() Game { return stubGame{id: "zz-last"} })
	Register(GameInfo{ID: "aa-first"}, func() Game { return stubGame{id: "aa-first"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List not sorted: %v", list)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "dup"}, func() Game { return stubGame{id: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate ID")
		}
	}()
	Register(GameInfo{ID: "dup"}, func() Game { return stubGame{id: "dup"} })
}
