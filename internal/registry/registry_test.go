package registry

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist")
	}
	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List missing stub-a")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no-such-game") {
		t.Error("unknown game reported as existing")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z"} })
	Register("stub-m", func() Game { return &stubGame{id: "stub-m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCatalogAdd(t *testing.T) {
	stub := func() Game { return &stubGame{id: "x"} }
	tests := []struct {
		name    string
		id      string
		f       Factory
		wantErr bool
	}{
		{"ok", "x", stub, false},
		{"duplicate", "x", stub, true},
		{"empty id", "", stub, true},
		{"nil factory", "y", nil, true},
	}

	var c Catalog
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Add(tt.id, tt.f)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
	if got := len(c.List()); got != 1 {
		t.Errorf("List has %d entries, want 1", got)
	}
}

func TestCatalogCreateFreshInstances(t *testing.T) {
	var c Catalog
	if err := c.Add("x", func() Game { return &stubGame{id: "x"} }); err != nil {
		t.Fatal(err)
	}
	a, _ := c.Create("x")
	b, _ := c.Create("x")
	if a == b {
		t.Error("Create returned the same instance twice")
	}
	info, ok := c.Info("x")
	if !ok || info.Title != "Stub x" {
		t.Errorf("Info = %+v, %v", info, ok)
	}
}

func TestTitleFallback(t *testing.T) {
	Register("stub-title", func() Game { return &stubGame{id: "stub-title"} })
	if got := Title("stub-title"); got != "Stub stub-title" {
		t.Errorf("Title = %q", got)
	}
	if got := Title("missing"); got != "missing" {
		t.Errorf("Title(missing) = %q", got)
	}
}
