package registry

import (
	"testing"

	"github.com/vovakirdan/tui-picross/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                         { return g.id }
func (g stubGame) Title() string                      { return "Stub " + g.id }
func (g stubGame) Description() string                { return "a stub" }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("stub not registered")
	}
	g, err := Create("zz_stub")
	if err != nil {
		t.Fatal(err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID = %q", g.ID())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = true
			if info.Title != "Stub zz_stub" || info.Description != "a stub" {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List missing stub")
	}

	if _, err := Create("nope"); err == nil {
		t.Error("Create(nope) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}
